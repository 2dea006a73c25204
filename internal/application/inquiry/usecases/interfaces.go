package usecases

import (
	"context"

	"courtside/internal/application/inquiry/dto"
)

// TransactionManager scopes a function to one database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventDispatcher hands a committed mutation to the fan-out layer.
// Satisfied by services.Dispatcher.
type EventDispatcher interface {
	Dispatch(event any)
}

type OpenInquiryExecutor interface {
	Execute(ctx context.Context, cmd OpenInquiryCommand) (*OpenInquiryResult, error)
}

type AppendOwnerMessageExecutor interface {
	Execute(ctx context.Context, cmd AppendOwnerMessageCommand) (*AppendMessageResult, error)
}

type AppendModeratorMessageExecutor interface {
	Execute(ctx context.Context, cmd AppendModeratorMessageCommand) (*AppendMessageResult, error)
}

type AssignModeratorExecutor interface {
	Execute(ctx context.Context, cmd AssignModeratorCommand) (*AssignModeratorResult, error)
}

type UnassignModeratorExecutor interface {
	Execute(ctx context.Context, cmd UnassignModeratorCommand) (*UnassignModeratorResult, error)
}

type UpdateInquiryExecutor interface {
	Execute(ctx context.Context, cmd UpdateInquiryCommand) (*UpdateInquiryResult, error)
}

type GetTimelineExecutor interface {
	Execute(ctx context.Context, query GetTimelineQuery) (*dto.TimelineDTO, error)
}

type GetUnreadCountsExecutor interface {
	Execute(ctx context.Context, query GetUnreadCountsQuery) (*dto.UnreadCountsDTO, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error)
}

type GetInquiryExecutor interface {
	Execute(ctx context.Context, query GetInquiryQuery) (*GetInquiryResult, error)
}

type ListInquiriesExecutor interface {
	Execute(ctx context.Context, query ListInquiriesQuery) (*ListInquiriesResult, error)
}
