package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type UnassignModeratorCommand struct {
	InquirySID  string
	ModeratorID uint
}

type UnassignModeratorResult struct {
	InquirySID  string `json:"inquiry_sid"`
	ModeratorID uint   `json:"moderator_id"`
	InCharge    bool   `json:"in_charge"`
}

type UnassignModeratorUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	txManager      TransactionManager
	dispatcher     EventDispatcher
	logger         logger.Interface
}

func NewUnassignModeratorUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	logger logger.Interface,
) *UnassignModeratorUseCase {
	return &UnassignModeratorUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// Execute deactivates an assignment. The row is kept: moderator messages
// reference it, so history must stay addressable.
func (uc *UnassignModeratorUseCase) Execute(ctx context.Context, cmd UnassignModeratorCommand) (*UnassignModeratorResult, error) {
	if cmd.ModeratorID == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}

	inq, err := uc.inquiryRepo.GetBySID(ctx, cmd.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	assignment, err := uc.assignmentRepo.GetByInquiryAndModerator(ctx, inq.ID(), cmd.ModeratorID)
	if err != nil {
		return nil, errors.NewNotFoundError("assignment not found")
	}

	assignment.StepDown()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.Update(txCtx, assignment); err != nil {
			return err
		}
		inq.Touch()
		return uc.inquiryRepo.Update(txCtx, inq)
	})
	if err != nil {
		uc.logger.Errorw("failed to unassign moderator", "inquiry_sid", cmd.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to unassign moderator")
	}

	uc.dispatcher.Dispatch(inquiry.NewModeratorUnassignedEvent(inq.ID(), cmd.ModeratorID, time.Now().UTC()))

	return &UnassignModeratorResult{
		InquirySID:  inq.SID(),
		ModeratorID: cmd.ModeratorID,
		InCharge:    false,
	}, nil
}
