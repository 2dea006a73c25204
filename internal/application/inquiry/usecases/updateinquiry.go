package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type UpdateInquiryCommand struct {
	InquirySID  string
	ModeratorID uint
	Solved      *bool
	Title       *string
	CategoryID  *uint
}

type UpdateInquiryResult struct {
	InquirySID string `json:"inquiry_sid"`
	Title      string `json:"title"`
	Solved     bool   `json:"solved"`
	UpdatedAt  string `json:"updated_at"`
}

type UpdateInquiryUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	categoryRepo   inquiry.CategoryRepository
	txManager      TransactionManager
	dispatcher     EventDispatcher
	logger         logger.Interface
}

func NewUpdateInquiryUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	categoryRepo inquiry.CategoryRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	logger logger.Interface,
) *UpdateInquiryUseCase {
	return &UpdateInquiryUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		categoryRepo:   categoryRepo,
		txManager:      txManager,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// Execute applies a solved toggle, retitle, or reclassify. The calling
// moderator must currently hold in_charge on the inquiry; any gating
// failure reports not-found so unassigned moderators cannot probe which
// inquiries exist.
func (uc *UpdateInquiryUseCase) Execute(ctx context.Context, cmd UpdateInquiryCommand) (*UpdateInquiryResult, error) {
	if cmd.ModeratorID == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}
	if cmd.Solved == nil && cmd.Title == nil && cmd.CategoryID == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	inq, err := uc.inquiryRepo.GetBySID(ctx, cmd.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	assignment, err := uc.assignmentRepo.GetByInquiryAndModerator(ctx, inq.ID(), cmd.ModeratorID)
	if err != nil || !assignment.InCharge() {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	if cmd.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *cmd.CategoryID); err != nil {
			return nil, errors.NewValidationError("unknown category")
		}
		if err := inq.Reclassify(*cmd.CategoryID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Title != nil {
		if err := inq.Retitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Solved != nil {
		inq.SetSolved(*cmd.Solved)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.inquiryRepo.Update(txCtx, inq)
	})
	if err != nil {
		uc.logger.Errorw("failed to update inquiry", "inquiry_sid", cmd.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to update inquiry")
	}

	uc.dispatcher.Dispatch(inquiry.NewInquiryStateUpdatedEvent(inq.ID(), inq.Solved(), time.Now().UTC()))

	uc.logger.Infow("inquiry updated",
		"inquiry_sid", inq.SID(),
		"moderator_id", cmd.ModeratorID,
		"solved", inq.Solved())

	return &UpdateInquiryResult{
		InquirySID: inq.SID(),
		Title:      inq.Title(),
		Solved:     inq.Solved(),
		UpdatedAt:  inq.UpdatedAt().Format(time.RFC3339Nano),
	}, nil
}
