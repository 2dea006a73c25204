package usecases

import (
	"context"

	"courtside/internal/application/inquiry/dto"
	"courtside/internal/application/inquiry/services"
	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/constants"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type ListInquiriesQuery struct {
	Segment     string
	RequesterID uint
	IsModerator bool
	Mine        bool
	Page        int
	PageSize    int
}

type ListInquiriesResult struct {
	Items    []dto.InquirySnapshotDTO `json:"items"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// ListInquiriesUseCase serves both surfaces: the owner's "mine" list and
// the moderator dashboards segmented by derived state. Lists are ordered
// by updated_at descending so the most recently active inquiry leads.
type ListInquiriesUseCase struct {
	inquiryRepo inquiry.InquiryRepository
	snapshots   *services.SnapshotBuilder
	logger      logger.Interface
}

func NewListInquiriesUseCase(
	inquiryRepo inquiry.InquiryRepository,
	snapshots *services.SnapshotBuilder,
	logger logger.Interface,
) *ListInquiriesUseCase {
	return &ListInquiriesUseCase{
		inquiryRepo: inquiryRepo,
		snapshots:   snapshots,
		logger:      logger,
	}
}

func (uc *ListInquiriesUseCase) Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}

	filter := inquiry.InquiryFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	switch {
	case query.Mine:
		if query.RequesterID == 0 {
			return nil, errors.NewValidationError("requester ID is required")
		}
		ownerID := query.RequesterID
		filter.OwnerID = &ownerID
	case query.IsModerator:
		segment := inquiry.Segment(query.Segment)
		if segment == "" {
			segment = inquiry.SegmentAll
		}
		if !segment.IsValid() {
			return nil, errors.NewValidationError("unknown segment")
		}
		filter.Segment = segment
	default:
		// non-moderators only ever see their own inquiries
		if query.RequesterID == 0 {
			return nil, errors.NewValidationError("requester ID is required")
		}
		ownerID := query.RequesterID
		filter.OwnerID = &ownerID
	}

	inquiries, total, err := uc.inquiryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list inquiries", "segment", query.Segment, "error", err)
		return nil, errors.NewInternalError("failed to list inquiries")
	}

	items := make([]dto.InquirySnapshotDTO, 0, len(inquiries))
	for _, inq := range inquiries {
		bundle, err := uc.snapshots.BuildFrom(ctx, inq)
		if err != nil {
			uc.logger.Errorw("failed to build inquiry snapshot", "sid", inq.SID(), "error", err)
			return nil, errors.NewInternalError("failed to list inquiries")
		}
		items = append(items, bundle.Snapshot)
	}

	return &ListInquiriesResult{
		Items:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
