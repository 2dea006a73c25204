package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type MarkReadCommand struct {
	InquirySID  string
	RequesterID uint
	IsModerator bool
}

type MarkReadResult struct {
	LastReadAt string `json:"last_read_at"`
}

// MarkReadUseCase advances the caller's read marker. Markers only move
// forward, the call is idempotent, and it deliberately triggers no fan-out
// and no updated_at bump: reading must not look like a change to other
// viewers.
type MarkReadUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	logger         logger.Interface
}

func NewMarkReadUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	logger logger.Interface,
) *MarkReadUseCase {
	return &MarkReadUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error) {
	inq, err := uc.inquiryRepo.GetBySID(ctx, cmd.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	now := time.Now().UTC()

	if cmd.IsModerator {
		assignment, err := uc.assignmentRepo.GetByInquiryAndModerator(ctx, inq.ID(), cmd.RequesterID)
		if err != nil {
			return nil, errors.NewHiddenNotFoundError("inquiry not found")
		}
		if assignment.MarkRead(now) {
			if err := uc.assignmentRepo.UpdateLastReadAt(ctx, assignment.ID(), assignment.LastReadAt()); err != nil {
				uc.logger.Errorw("failed to persist read marker", "sid", cmd.InquirySID, "error", err)
				return nil, errors.NewInternalError("failed to mark as read")
			}
		}
		return &MarkReadResult{LastReadAt: assignment.LastReadAt().Format(time.RFC3339Nano)}, nil
	}

	if !inq.IsOwnedBy(cmd.RequesterID) {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}
	if inq.MarkRead(now) {
		if err := uc.inquiryRepo.UpdateLastReadAt(ctx, inq.ID(), inq.LastReadAt()); err != nil {
			uc.logger.Errorw("failed to persist read marker", "sid", cmd.InquirySID, "error", err)
			return nil, errors.NewInternalError("failed to mark as read")
		}
	}
	return &MarkReadResult{LastReadAt: inq.LastReadAt().Format(time.RFC3339Nano)}, nil
}
