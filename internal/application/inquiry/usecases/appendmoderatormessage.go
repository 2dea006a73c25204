package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/services/markdown"
)

type AppendModeratorMessageCommand struct {
	InquirySID  string
	ModeratorID uint
	Body        string
}

type AppendModeratorMessageUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	messageRepo    inquiry.MessageRepository
	txManager      TransactionManager
	dispatcher     EventDispatcher
	sanitizer      markdown.MarkdownService
	logger         logger.Interface
}

func NewAppendModeratorMessageUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	messageRepo inquiry.MessageRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	sanitizer markdown.MarkdownService,
	logger logger.Interface,
) *AppendModeratorMessageUseCase {
	return &AppendModeratorMessageUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		messageRepo:    messageRepo,
		txManager:      txManager,
		dispatcher:     dispatcher,
		sanitizer:      sanitizer,
		logger:         logger,
	}
}

func (uc *AppendModeratorMessageUseCase) Execute(ctx context.Context, cmd AppendModeratorMessageCommand) (*AppendMessageResult, error) {
	if cmd.ModeratorID == 0 {
		return nil, errors.NewValidationError("moderator ID is required")
	}

	inq, err := uc.inquiryRepo.GetBySID(ctx, cmd.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	assignment, err := uc.assignmentRepo.GetByInquiryAndModerator(ctx, inq.ID(), cmd.ModeratorID)
	if err != nil {
		// no engagement on this inquiry: its existence stays hidden
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	if inq.Solved() {
		return nil, errors.NewClosedError("inquiry is solved and accepts no new messages")
	}

	body := uc.sanitizer.Sanitize(cmd.Body)
	msg, err := inquiry.NewAssignmentMessage(assignment.ID(), cmd.ModeratorID, body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.CreateAssignmentMessage(txCtx, msg); err != nil {
			return err
		}
		inq.Touch()
		return uc.inquiryRepo.Update(txCtx, inq)
	})
	if err != nil {
		uc.logger.Errorw("failed to append moderator message",
			"sid", cmd.InquirySID,
			"moderator_id", cmd.ModeratorID,
			"error", err)
		return nil, errors.NewInternalError("failed to append message")
	}

	uc.dispatcher.Dispatch(inquiry.NewModeratorMessageCreatedEvent(
		inq.ID(), assignment.ID(), msg.ID(), cmd.ModeratorID, msg.Body(), msg.CreatedAt(),
	))

	return &AppendMessageResult{
		MessageID: msg.ID(),
		CreatedAt: msg.CreatedAt().Format(time.RFC3339Nano),
	}, nil
}
