package usecases

import (
	"context"

	"courtside/internal/application/inquiry/dto"
	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type GetUnreadCountsQuery struct {
	InquirySID  string
	RequesterID uint
	IsModerator bool
}

// GetUnreadCountsUseCase recomputes unread counters on read. Counts are a
// point-in-time derivation from the participant's read marker, not an
// incrementally maintained counter.
type GetUnreadCountsUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	messageRepo    inquiry.MessageRepository
	logger         logger.Interface
}

func NewGetUnreadCountsUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	messageRepo inquiry.MessageRepository,
	logger logger.Interface,
) *GetUnreadCountsUseCase {
	return &GetUnreadCountsUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		messageRepo:    messageRepo,
		logger:         logger,
	}
}

func (uc *GetUnreadCountsUseCase) Execute(ctx context.Context, query GetUnreadCountsQuery) (*dto.UnreadCountsDTO, error) {
	inq, err := uc.inquiryRepo.GetBySID(ctx, query.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	if query.IsModerator {
		assignment, err := uc.assignmentRepo.GetByInquiryAndModerator(ctx, inq.ID(), query.RequesterID)
		if err != nil {
			return nil, errors.NewHiddenNotFoundError("inquiry not found")
		}

		own, err := uc.messageRepo.CountOwnerMessagesAfter(ctx, inq.ID(), assignment.LastReadAt())
		if err != nil {
			uc.logger.Errorw("failed to count unread owner messages", "sid", query.InquirySID, "error", err)
			return nil, errors.NewInternalError("failed to compute unread counts")
		}
		cross, err := uc.messageRepo.CountOtherAssignmentMessagesAfter(ctx, inq.ID(), assignment.ID(), assignment.LastReadAt())
		if err != nil {
			uc.logger.Errorw("failed to count cross-moderator unread", "sid", query.InquirySID, "error", err)
			return nil, errors.NewInternalError("failed to compute unread counts")
		}

		return &dto.UnreadCountsDTO{Own: own, CrossOthers: &cross}, nil
	}

	if !inq.IsOwnedBy(query.RequesterID) {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	own, err := uc.messageRepo.CountAssignmentMessagesAfter(ctx, inq.ID(), inq.LastReadAt())
	if err != nil {
		uc.logger.Errorw("failed to count unread moderator messages", "sid", query.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to compute unread counts")
	}

	return &dto.UnreadCountsDTO{Own: own}, nil
}
