package usecases

import (
	"context"

	"courtside/internal/application/inquiry/dto"
	"courtside/internal/application/inquiry/services"
	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type GetInquiryQuery struct {
	InquirySID  string
	RequesterID uint
	IsModerator bool
}

type GetInquiryResult struct {
	Inquiry dto.InquirySnapshotDTO `json:"inquiry"`
	Unread  *dto.UnreadCountsDTO   `json:"unread,omitempty"`
}

type GetInquiryUseCase struct {
	inquiryRepo    inquiry.InquiryRepository
	assignmentRepo inquiry.AssignmentRepository
	snapshots      *services.SnapshotBuilder
	logger         logger.Interface
}

func NewGetInquiryUseCase(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	snapshots *services.SnapshotBuilder,
	logger logger.Interface,
) *GetInquiryUseCase {
	return &GetInquiryUseCase{
		inquiryRepo:    inquiryRepo,
		assignmentRepo: assignmentRepo,
		snapshots:      snapshots,
		logger:         logger,
	}
}

func (uc *GetInquiryUseCase) Execute(ctx context.Context, query GetInquiryQuery) (*GetInquiryResult, error) {
	inq, err := uc.inquiryRepo.GetBySID(ctx, query.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}
	if !query.IsModerator && !inq.IsOwnedBy(query.RequesterID) {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	bundle, err := uc.snapshots.BuildFrom(ctx, inq)
	if err != nil {
		uc.logger.Errorw("failed to build inquiry snapshot", "sid", query.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to load inquiry")
	}

	result := &GetInquiryResult{Inquiry: bundle.Snapshot}

	// moderators with an engagement also get their unread counters
	if query.IsModerator {
		assignment, err := uc.assignmentRepo.GetByInquiryAndModerator(ctx, inq.ID(), query.RequesterID)
		if err == nil {
			unread, err := uc.snapshots.ModeratorUnread(ctx, assignment)
			if err != nil {
				uc.logger.Errorw("failed to compute unread counts", "sid", query.InquirySID, "error", err)
				return nil, errors.NewInternalError("failed to load inquiry")
			}
			result.Unread = &dto.UnreadCountsDTO{Own: unread.Own, CrossOthers: &unread.CrossOthers}
		}
	}

	return result, nil
}
