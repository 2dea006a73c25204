package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/domain/user"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type AssignModeratorCommand struct {
	InquirySID  string
	ModeratorID uint
}

type AssignModeratorResult struct {
	InquirySID  string `json:"inquiry_sid"`
	ModeratorID uint   `json:"moderator_id"`
	InCharge    bool   `json:"in_charge"`
	UpdatedAt   string `json:"updated_at"`
}

type AssignModeratorUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	userRepo       user.Repository
	txManager      TransactionManager
	dispatcher     EventDispatcher
	logger         logger.Interface
}

func NewAssignModeratorUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	logger logger.Interface,
) *AssignModeratorUseCase {
	return &AssignModeratorUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		txManager:      txManager,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// Execute is idempotent: assigning an already-assigned moderator flips the
// existing row back to in_charge=true instead of inserting a duplicate, and
// concurrent double-assigns are absorbed by the repository upsert.
func (uc *AssignModeratorUseCase) Execute(ctx context.Context, cmd AssignModeratorCommand) (*AssignModeratorResult, error) {
	uc.logger.Infow("executing assign moderator use case",
		"inquiry_sid", cmd.InquirySID,
		"moderator_id", cmd.ModeratorID)

	if cmd.ModeratorID == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}

	moderator, err := uc.userRepo.GetByID(ctx, cmd.ModeratorID)
	if err != nil {
		return nil, errors.NewNotFoundError("moderator not found")
	}
	if !moderator.IsModerator() {
		return nil, errors.NewValidationError("user is not a moderator")
	}

	inq, err := uc.inquiryRepo.GetBySID(ctx, cmd.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	assignment, err := inquiry.NewAssignment(inq.ID(), cmd.ModeratorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.Upsert(txCtx, assignment); err != nil {
			return err
		}
		inq.Touch()
		return uc.inquiryRepo.Update(txCtx, inq)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign moderator", "inquiry_sid", cmd.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to assign moderator")
	}

	uc.dispatcher.Dispatch(inquiry.NewModeratorAssignedEvent(inq.ID(), cmd.ModeratorID, time.Now().UTC()))

	uc.logger.Infow("moderator assigned",
		"inquiry_sid", inq.SID(),
		"moderator_id", cmd.ModeratorID)

	return &AssignModeratorResult{
		InquirySID:  inq.SID(),
		ModeratorID: cmd.ModeratorID,
		InCharge:    true,
		UpdatedAt:   inq.UpdatedAt().Format(time.RFC3339Nano),
	}, nil
}
