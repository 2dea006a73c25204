package usecases

import (
	"context"
	"time"

	"courtside/internal/application/inquiry/dto"
	"courtside/internal/domain/inquiry"
	"courtside/internal/domain/user"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/logger"
)

type GetTimelineQuery struct {
	InquirySID  string
	RequesterID uint
	IsModerator bool
	Before      *time.Time
}

// GetTimelineUseCase merges the two message streams of one inquiry into a
// single cursor-paginated page. Each stream is queried with its own bounded
// limit under the cursor, so a page never scans the full history.
type GetTimelineUseCase struct {
	inquiryRepo inquiry.InquiryRepository
	messageRepo inquiry.MessageRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetTimelineUseCase(
	inquiryRepo inquiry.InquiryRepository,
	messageRepo inquiry.MessageRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		inquiryRepo: inquiryRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *GetTimelineUseCase) Execute(ctx context.Context, query GetTimelineQuery) (*dto.TimelineDTO, error) {
	inq, err := uc.inquiryRepo.GetBySID(ctx, query.InquirySID)
	if err != nil {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}
	if !query.IsModerator && !inq.IsOwnedBy(query.RequesterID) {
		return nil, errors.NewHiddenNotFoundError("inquiry not found")
	}

	// One extra row per stream so the merge can tell a stream that ended
	// from one that merely hit its limit; without it a single-stream page
	// of exactly page-size rows would terminate the feed early.
	fetchLimit := inquiry.TimelinePageSize + 1
	ownerMsgs, err := uc.messageRepo.ListOwnerMessagesBefore(ctx, inq.ID(), query.Before, fetchLimit)
	if err != nil {
		uc.logger.Errorw("failed to load owner messages", "sid", query.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to load timeline")
	}
	modMsgs, err := uc.messageRepo.ListAssignmentMessagesBefore(ctx, inq.ID(), query.Before, fetchLimit)
	if err != nil {
		uc.logger.Errorw("failed to load moderator messages", "sid", query.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to load timeline")
	}

	ownerEntries := make([]inquiry.TimelineEntry, 0, len(ownerMsgs))
	for _, m := range ownerMsgs {
		ownerEntries = append(ownerEntries, inquiry.OwnerEntry(m, inq.OwnerID()))
	}
	modEntries := make([]inquiry.TimelineEntry, 0, len(modMsgs))
	for _, m := range modMsgs {
		modEntries = append(modEntries, inquiry.ModeratorEntry(m))
	}

	merged, nextCursor := inquiry.MergeTimeline(ownerEntries, modEntries, inquiry.TimelinePageSize)

	authors, err := uc.loadAuthors(ctx, merged)
	if err != nil {
		uc.logger.Errorw("failed to load message authors", "sid", query.InquirySID, "error", err)
		return nil, errors.NewInternalError("failed to load timeline")
	}

	items := make([]dto.MessageDTO, 0, len(merged))
	for _, e := range merged {
		items = append(items, dto.ToMessageDTO(e, authors[e.AuthorID]))
	}

	result := &dto.TimelineDTO{Items: items}
	if nextCursor != nil {
		result.NextCursor = nextCursor.Format(time.RFC3339Nano)
	}
	return result, nil
}

func (uc *GetTimelineUseCase) loadAuthors(ctx context.Context, entries []inquiry.TimelineEntry) (map[uint]*user.User, error) {
	seen := make(map[uint]struct{}, len(entries))
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AuthorID]; ok {
			continue
		}
		seen[e.AuthorID] = struct{}{}
		ids = append(ids, e.AuthorID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return byID, nil
}
