package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"courtside/internal/domain/inquiry"
	"courtside/internal/infrastructure/persistence/mappers"
	"courtside/internal/infrastructure/persistence/models"
	"courtside/internal/shared/db"
)

// InquiryMessageRepository serves both append-only message streams. The
// cursor queries use an exclusive created_at bound ordered (created_at, id)
// descending so each stream can be walked page by page without offsets.
type InquiryMessageRepository struct {
	db     *gorm.DB
	mapper mappers.InquiryMapper
}

func NewInquiryMessageRepository(db *gorm.DB) *InquiryMessageRepository {
	return &InquiryMessageRepository{
		db:     db,
		mapper: mappers.NewInquiryMapper(),
	}
}

func (r *InquiryMessageRepository) CreateOwnerMessage(ctx context.Context, m *inquiry.OwnerMessage) error {
	model := r.mapper.OwnerMessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create owner message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *InquiryMessageRepository) CreateAssignmentMessage(ctx context.Context, m *inquiry.AssignmentMessage) error {
	model := r.mapper.AssignmentMessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *InquiryMessageRepository) ListOwnerMessagesBefore(
	ctx context.Context,
	inquiryID uint,
	before *time.Time,
	limit int,
) ([]*inquiry.OwnerMessage, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.OwnerMessageModel{}).
		Where("inquiry_id = ?", inquiryID)

	if before != nil {
		query = query.Where("created_at < ?", before.UnixMilli())
	}

	var messageModels []models.OwnerMessageModel
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list owner messages: %w", err)
	}

	messages := make([]*inquiry.OwnerMessage, len(messageModels))
	for i, model := range messageModels {
		msg, err := r.mapper.OwnerMessageToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = msg
	}

	return messages, nil
}

func (r *InquiryMessageRepository) ListAssignmentMessagesBefore(
	ctx context.Context,
	inquiryID uint,
	before *time.Time,
	limit int,
) ([]*inquiry.AssignmentMessage, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.assignmentMessagesOfInquiry(tx, inquiryID)

	if before != nil {
		query = query.Where("inquiry_assignment_messages.created_at < ?", before.UnixMilli())
	}

	var messageModels []models.AssignmentMessageModel
	if err := query.
		Order("inquiry_assignment_messages.created_at DESC, inquiry_assignment_messages.id DESC").
		Limit(limit).
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignment messages: %w", err)
	}

	messages := make([]*inquiry.AssignmentMessage, len(messageModels))
	for i, model := range messageModels {
		msg, err := r.mapper.AssignmentMessageToDomain(&model)
		if err != nil {
			return nil, err
		}
		messages[i] = msg
	}

	return messages, nil
}

func (r *InquiryMessageRepository) CountOwnerMessagesAfter(ctx context.Context, inquiryID uint, after time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.OwnerMessageModel{}).
		Where("inquiry_id = ? AND created_at > ?", inquiryID, after.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count owner messages: %w", err)
	}

	return count, nil
}

func (r *InquiryMessageRepository) CountAssignmentMessagesAfter(ctx context.Context, inquiryID uint, after time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := r.assignmentMessagesOfInquiry(tx, inquiryID).
		Where("inquiry_assignment_messages.created_at > ?", after.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assignment messages: %w", err)
	}

	return count, nil
}

func (r *InquiryMessageRepository) CountOtherAssignmentMessagesAfter(ctx context.Context, inquiryID, excludeAssignmentID uint, after time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := r.assignmentMessagesOfInquiry(tx, inquiryID).
		Where("inquiry_assignment_messages.assignment_id <> ?", excludeAssignmentID).
		Where("inquiry_assignment_messages.created_at > ?", after.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count assignment messages: %w", err)
	}

	return count, nil
}

// assignmentMessagesOfInquiry scopes moderator messages to one inquiry via
// their assignment row, so streams never cross inquiries.
func (r *InquiryMessageRepository) assignmentMessagesOfInquiry(tx *gorm.DB, inquiryID uint) *gorm.DB {
	return tx.
		Model(&models.AssignmentMessageModel{}).
		Joins("JOIN inquiry_assignments ON inquiry_assignments.id = inquiry_assignment_messages.assignment_id").
		Where("inquiry_assignments.inquiry_id = ?", inquiryID)
}
