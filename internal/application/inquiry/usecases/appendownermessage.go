package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/services/markdown"
)

type AppendOwnerMessageCommand struct {
	InquirySID string
	OwnerID    uint
	Body       string
}

type AppendMessageResult struct {
	MessageID uint   `json:"message_id"`
	CreatedAt string `json:"created_at"`
}

type AppendOwnerMessageUseCase struct {
	inquiryRepo inquiry.InquiryRepository
	messageRepo inquiry.MessageRepository
	txManager   TransactionManager
	dispatcher  EventDispatcher
	sanitizer   markdown.MarkdownService
	logger      logger.Interface
}

func NewAppendOwnerMessageUseCase(
	inquiryRepo inquiry.InquiryRepository,
	messageRepo inquiry.MessageRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	sanitizer markdown.MarkdownService,
	logger logger.Interface,
) *AppendOwnerMessageUseCase {
	return &AppendOwnerMessageUseCase{
		inquiryRepo: inquiryRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		dispatcher:  dispatcher,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *AppendOwnerMessageUseCase) Execute(ctx context.Context, cmd AppendOwnerMessageCommand) (*AppendMessageResult, error) {
	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	inq, err := uc.inquiryRepo.GetBySID(ctx, cmd.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}
	if !inq.IsOwnedBy(cmd.OwnerID) {
		// existence is not revealed to non-owners
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}
	if inq.Solved() {
		return nil, errors.NewClosedError("inquiry is solved and accepts no new messages")
	}

	body := uc.sanitizer.Sanitize(cmd.Body)
	msg, err := inquiry.NewOwnerMessage(inq.ID(), body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.CreateOwnerMessage(txCtx, msg); err != nil {
			return err
		}
		inq.Touch()
		return uc.inquiryRepo.Update(txCtx, inq)
	})
	if err != nil {
		uc.logger.Errorw("failed to append owner message", "sid", cmd.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to append message")
	}

	uc.dispatcher.Dispatch(inquiry.NewOwnerMessageCreatedEvent(
		inq.ID(), msg.ID(), inq.OwnerID(), msg.Body(), msg.CreatedAt(),
	))

	return &AppendMessageResult{
		MessageID: msg.ID(),
		CreatedAt: msg.CreatedAt().Format(time.RFC3339Nano),
	}, nil
}
