package usecases

import (
	"context"
	"time"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/id"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/services/markdown"
)

const inquirySIDLength = 16

type OpenInquiryCommand struct {
	OwnerID    uint
	CategoryID uint
	Title      string
	Body       string
}

type OpenInquiryResult struct {
	SID       string `json:"sid"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

type OpenInquiryUseCase struct {
	inquiryRepo  inquiry.InquiryRepository
	messageRepo  inquiry.MessageRepository
	categoryRepo inquiry.CategoryRepository
	txManager    TransactionManager
	dispatcher   EventDispatcher
	sanitizer    markdown.MarkdownService
	logger       logger.Interface
}

func NewOpenInquiryUseCase(
	inquiryRepo inquiry.InquiryRepository,
	messageRepo inquiry.MessageRepository,
	categoryRepo inquiry.CategoryRepository,
	txManager TransactionManager,
	dispatcher EventDispatcher,
	sanitizer markdown.MarkdownService,
	logger logger.Interface,
) *OpenInquiryUseCase {
	return &OpenInquiryUseCase{
		inquiryRepo:  inquiryRepo,
		messageRepo:  messageRepo,
		categoryRepo: categoryRepo,
		txManager:    txManager,
		dispatcher:   dispatcher,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *OpenInquiryUseCase) Execute(ctx context.Context, cmd OpenInquiryCommand) (*OpenInquiryResult, error) {
	uc.logger.Infow("executing open inquiry use case",
		"owner_id", cmd.OwnerID,
		"category_id", cmd.CategoryID)

	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		uc.logger.Warnw("unknown inquiry category", "category_id", cmd.CategoryID)
		return nil, errors.NewValidationError("unknown category")
	}

	sid := id.MustGenerateWithPrefix(id.PrefixInquiry, inquirySIDLength)
	inq, err := inquiry.NewInquiry(sid, cmd.CategoryID, cmd.Title, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	body := uc.sanitizer.Sanitize(cmd.Body)
	if err := inquiry.ValidateBody(body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.inquiryRepo.Create(txCtx, inq); err != nil {
			return err
		}
		msg, err := inquiry.NewOwnerMessage(inq.ID(), body)
		if err != nil {
			return err
		}
		return uc.messageRepo.CreateOwnerMessage(txCtx, msg)
	})
	if err != nil {
		uc.logger.Errorw("failed to create inquiry", "error", err)
		return nil, errors.NewInternalError("failed to create inquiry")
	}

	uc.dispatcher.Dispatch(inquiry.NewInquiryOpenedEvent(
		inq.ID(), inq.SID(), inq.OwnerID(), inq.Title(), inq.CreatedAt(),
	))

	uc.logger.Infow("inquiry opened", "sid", inq.SID(), "owner_id", inq.OwnerID())

	return &OpenInquiryResult{
		SID:       inq.SID(),
		Title:     inq.Title(),
		CreatedAt: inq.CreatedAt().Format(time.RFC3339Nano),
	}, nil
}
