package usecases

import (
	"context"
	"fmt"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/domain/user"
)

type mockInquiryRepository struct {
	CreateFunc           func(ctx context.Context, inq *inquiry.Inquiry) error
	UpdateFunc           func(ctx context.Context, inq *inquiry.Inquiry) error
	UpdateLastReadAtFunc func(ctx context.Context, id uint, readAt time.Time) error
	GetByIDFunc          func(ctx context.Context, id uint) (*inquiry.Inquiry, error)
	GetBySIDFunc         func(ctx context.Context, sid string) (*inquiry.Inquiry, error)
	ListFunc             func(ctx context.Context, filter inquiry.InquiryFilter) ([]*inquiry.Inquiry, int64, error)
}

func (m *mockInquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inq)
	}
	return inq.SetID(1)
}

func (m *mockInquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inq)
	}
	return nil
}

func (m *mockInquiryRepository) UpdateLastReadAt(ctx context.Context, id uint, readAt time.Time) error {
	if m.UpdateLastReadAtFunc != nil {
		return m.UpdateLastReadAtFunc(ctx, id, readAt)
	}
	return nil
}

func (m *mockInquiryRepository) GetByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockInquiryRepository) GetBySID(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockInquiryRepository) List(ctx context.Context, filter inquiry.InquiryFilter) ([]*inquiry.Inquiry, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockAssignmentRepository struct {
	UpsertFunc                   func(ctx context.Context, a *inquiry.Assignment) error
	UpdateFunc                   func(ctx context.Context, a *inquiry.Assignment) error
	UpdateLastReadAtFunc         func(ctx context.Context, id uint, readAt time.Time) error
	GetByInquiryAndModeratorFunc func(ctx context.Context, inquiryID, moderatorID uint) (*inquiry.Assignment, error)
	ListByInquiryFunc            func(ctx context.Context, inquiryID uint) ([]*inquiry.Assignment, error)
	HasInChargeFunc              func(ctx context.Context, inquiryID uint) (bool, error)
}

func (m *mockAssignmentRepository) Upsert(ctx context.Context, a *inquiry.Assignment) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *inquiry.Assignment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) UpdateLastReadAt(ctx context.Context, id uint, readAt time.Time) error {
	if m.UpdateLastReadAtFunc != nil {
		return m.UpdateLastReadAtFunc(ctx, id, readAt)
	}
	return nil
}

func (m *mockAssignmentRepository) GetByInquiryAndModerator(ctx context.Context, inquiryID, moderatorID uint) (*inquiry.Assignment, error) {
	if m.GetByInquiryAndModeratorFunc != nil {
		return m.GetByInquiryAndModeratorFunc(ctx, inquiryID, moderatorID)
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockAssignmentRepository) ListByInquiry(ctx context.Context, inquiryID uint) ([]*inquiry.Assignment, error) {
	if m.ListByInquiryFunc != nil {
		return m.ListByInquiryFunc(ctx, inquiryID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) HasInCharge(ctx context.Context, inquiryID uint) (bool, error) {
	if m.HasInChargeFunc != nil {
		return m.HasInChargeFunc(ctx, inquiryID)
	}
	return false, nil
}

type mockMessageRepository struct {
	CreateOwnerMessageFunc                func(ctx context.Context, msg *inquiry.OwnerMessage) error
	CreateAssignmentMessageFunc           func(ctx context.Context, msg *inquiry.AssignmentMessage) error
	ListOwnerMessagesBeforeFunc           func(ctx context.Context, inquiryID uint, before *time.Time, limit int) ([]*inquiry.OwnerMessage, error)
	ListAssignmentMessagesBeforeFunc      func(ctx context.Context, inquiryID uint, before *time.Time, limit int) ([]*inquiry.AssignmentMessage, error)
	CountOwnerMessagesAfterFunc           func(ctx context.Context, inquiryID uint, after time.Time) (int64, error)
	CountAssignmentMessagesAfterFunc      func(ctx context.Context, inquiryID uint, after time.Time) (int64, error)
	CountOtherAssignmentMessagesAfterFunc func(ctx context.Context, inquiryID, excludeAssignmentID uint, after time.Time) (int64, error)
}

func (m *mockMessageRepository) CreateOwnerMessage(ctx context.Context, msg *inquiry.OwnerMessage) error {
	if m.CreateOwnerMessageFunc != nil {
		return m.CreateOwnerMessageFunc(ctx, msg)
	}
	return msg.SetID(1)
}

func (m *mockMessageRepository) CreateAssignmentMessage(ctx context.Context, msg *inquiry.AssignmentMessage) error {
	if m.CreateAssignmentMessageFunc != nil {
		return m.CreateAssignmentMessageFunc(ctx, msg)
	}
	return msg.SetID(1)
}

func (m *mockMessageRepository) ListOwnerMessagesBefore(ctx context.Context, inquiryID uint, before *time.Time, limit int) ([]*inquiry.OwnerMessage, error) {
	if m.ListOwnerMessagesBeforeFunc != nil {
		return m.ListOwnerMessagesBeforeFunc(ctx, inquiryID, before, limit)
	}
	return nil, nil
}

func (m *mockMessageRepository) ListAssignmentMessagesBefore(ctx context.Context, inquiryID uint, before *time.Time, limit int) ([]*inquiry.AssignmentMessage, error) {
	if m.ListAssignmentMessagesBeforeFunc != nil {
		return m.ListAssignmentMessagesBeforeFunc(ctx, inquiryID, before, limit)
	}
	return nil, nil
}

func (m *mockMessageRepository) CountOwnerMessagesAfter(ctx context.Context, inquiryID uint, after time.Time) (int64, error) {
	if m.CountOwnerMessagesAfterFunc != nil {
		return m.CountOwnerMessagesAfterFunc(ctx, inquiryID, after)
	}
	return 0, nil
}

func (m *mockMessageRepository) CountAssignmentMessagesAfter(ctx context.Context, inquiryID uint, after time.Time) (int64, error) {
	if m.CountAssignmentMessagesAfterFunc != nil {
		return m.CountAssignmentMessagesAfterFunc(ctx, inquiryID, after)
	}
	return 0, nil
}

func (m *mockMessageRepository) CountOtherAssignmentMessagesAfter(ctx context.Context, inquiryID, excludeAssignmentID uint, after time.Time) (int64, error) {
	if m.CountOtherAssignmentMessagesAfterFunc != nil {
		return m.CountOtherAssignmentMessagesAfterFunc(ctx, inquiryID, excludeAssignmentID, after)
	}
	return 0, nil
}

type mockCategoryRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*inquiry.Category, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *inquiry.Category) error { return nil }

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*inquiry.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return inquiry.ReconstructCategory(id, "general", "")
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*inquiry.Category, error) {
	return nil, fmt.Errorf("not found")
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*inquiry.Category, error) {
	return nil, nil
}

func (m *mockCategoryRepository) CreateDisplayName(ctx context.Context, d *inquiry.CategoryDisplayName) error {
	return nil
}

func (m *mockCategoryRepository) ListDisplayNames(ctx context.Context, categoryID uint) ([]*inquiry.CategoryDisplayName, error) {
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return user.ReconstructUser(id, fmt.Sprintf("usr_%d", id), fmt.Sprintf("user%d", id), "", id >= 20)
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	users := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		u, err := m.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepository) GetBySID(ctx context.Context, sid string) (*user.User, error) {
	return nil, fmt.Errorf("not found")
}

// mockTxManager runs the function directly, without a real transaction.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

// mockDispatcher records dispatched events in order.
type mockDispatcher struct {
	events []any
}

func (m *mockDispatcher) Dispatch(event any) {
	m.events = append(m.events, event)
}
