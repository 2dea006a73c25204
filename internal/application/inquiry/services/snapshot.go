package services

import (
	"context"
	"fmt"

	"courtside/internal/application/inquiry/dto"
	"courtside/internal/domain/inquiry"
	"courtside/internal/domain/user"
	"courtside/internal/shared/services/markdown"
)

// SnapshotBundle is the enriched view of one inquiry used to shape every
// recipient class: the entities plus the ready-made shared snapshot.
type SnapshotBundle struct {
	Inquiry     *inquiry.Inquiry
	Assignments []*inquiry.Assignment
	Owner       *user.User
	Moderators  map[uint]*user.User
	Snapshot    dto.InquirySnapshotDTO
}

// Assigned reports whether any assignment is currently in charge.
func (b *SnapshotBundle) Assigned() bool {
	for _, a := range b.Assignments {
		if a.InCharge() {
			return true
		}
	}
	return false
}

// SnapshotBuilder assembles inquiry snapshots for fan-out payloads and
// detail reads.
type SnapshotBuilder struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	messageRepo    inquiry.MessageRepository
	categoryRepo   inquiry.CategoryRepository
	userRepo       user.Repository
	renderer       markdown.MarkdownService
}

func NewSnapshotBuilder(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	messageRepo inquiry.MessageRepository,
	categoryRepo inquiry.CategoryRepository,
	userRepo user.Repository,
	renderer markdown.MarkdownService,
) *SnapshotBuilder {
	return &SnapshotBuilder{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		messageRepo:    messageRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		renderer:       renderer,
	}
}

func (s *SnapshotBuilder) Build(ctx context.Context, inquiryID uint) (*SnapshotBundle, error) {
	inq, err := s.inquiryRepo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("load inquiry: %w", err)
	}
	return s.BuildFrom(ctx, inq)
}

// BuildFrom assembles the bundle around an already-loaded inquiry.
func (s *SnapshotBuilder) BuildFrom(ctx context.Context, inq *inquiry.Inquiry) (*SnapshotBundle, error) {
	assignments, err := s.assignmentRepo.ListByInquiry(ctx, inq.ID())
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}

	userIDs := []uint{inq.OwnerID()}
	for _, a := range assignments {
		userIDs = append(userIDs, a.ModeratorID())
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}

	categoryName := ""
	if cat, err := s.categoryRepo.GetByID(ctx, inq.CategoryID()); err == nil && cat != nil {
		categoryName = cat.Name()
	}

	moderators := make([]dto.ModeratorDTO, 0, len(assignments))
	modUsers := make(map[uint]*user.User, len(assignments))
	for _, a := range assignments {
		u := byID[a.ModeratorID()]
		modUsers[a.ModeratorID()] = u
		moderators = append(moderators, dto.ToModeratorDTO(a, u))
	}

	lastMessage, err := s.lastMessage(ctx, inq)
	if err != nil {
		return nil, err
	}

	return &SnapshotBundle{
		Inquiry:     inq,
		Assignments: assignments,
		Owner:       byID[inq.OwnerID()],
		Moderators:  modUsers,
		Snapshot: dto.InquirySnapshotDTO{
			SID:         inq.SID(),
			Title:       inq.Title(),
			Category:    categoryName,
			Solved:      inq.Solved(),
			Owner:       dto.ToUserDTO(byID[inq.OwnerID()]),
			Moderators:  moderators,
			LastMessage: lastMessage,
			CreatedAt:   inq.CreatedAt(),
			UpdatedAt:   inq.UpdatedAt(),
		},
	}, nil
}

// lastMessage merges the head of both streams to find the newest entry.
func (s *SnapshotBuilder) lastMessage(ctx context.Context, inq *inquiry.Inquiry) (*dto.MessageDTO, error) {
	ownerMsgs, err := s.messageRepo.ListOwnerMessagesBefore(ctx, inq.ID(), nil, 1)
	if err != nil {
		return nil, fmt.Errorf("load last owner message: %w", err)
	}
	modMsgs, err := s.messageRepo.ListAssignmentMessagesBefore(ctx, inq.ID(), nil, 1)
	if err != nil {
		return nil, fmt.Errorf("load last moderator message: %w", err)
	}

	var ownerEntries, modEntries []inquiry.TimelineEntry
	for _, m := range ownerMsgs {
		ownerEntries = append(ownerEntries, inquiry.OwnerEntry(m, inq.OwnerID()))
	}
	for _, m := range modMsgs {
		modEntries = append(modEntries, inquiry.ModeratorEntry(m))
	}

	merged, _ := inquiry.MergeTimeline(ownerEntries, modEntries, 1)
	if len(merged) == 0 {
		return nil, nil
	}

	author, err := s.userRepo.GetByID(ctx, merged[0].AuthorID)
	if err != nil {
		author = nil
	}
	msg := dto.ToMessageDTO(merged[0], author)
	if html, err := s.renderer.ToHTMLSanitized(msg.Body); err == nil {
		msg.BodyHTML = html
	}
	return &msg, nil
}

// ModeratorUnread computes one assignment's unread counters.
func (s *SnapshotBuilder) ModeratorUnread(ctx context.Context, a *inquiry.Assignment) (inquiry.ModeratorUnread, error) {
	own, err := s.messageRepo.CountOwnerMessagesAfter(ctx, a.InquiryID(), a.LastReadAt())
	if err != nil {
		return inquiry.ModeratorUnread{}, fmt.Errorf("count unread owner messages: %w", err)
	}
	cross, err := s.messageRepo.CountOtherAssignmentMessagesAfter(ctx, a.InquiryID(), a.ID(), a.LastReadAt())
	if err != nil {
		return inquiry.ModeratorUnread{}, fmt.Errorf("count cross-moderator unread: %w", err)
	}
	return inquiry.ModeratorUnread{Own: own, CrossOthers: cross}, nil
}
