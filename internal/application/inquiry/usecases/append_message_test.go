package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/domain/inquiry"
	"courtside/internal/shared/errors"
)

func TestAppendOwnerMessage_Success(t *testing.T) {
	inq := storedInquiry(t, false)
	updatedBefore := inq.UpdatedAt()
	inquiryRepo := &mockInquiryRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
			return inq, nil
		},
	}
	dispatcher := &mockDispatcher{}
	uc := NewAppendOwnerMessageUseCase(
		inquiryRepo, &mockMessageRepository{}, &mockTxManager{}, dispatcher, testSanitizer(), testLogger(),
	)

	result, err := uc.Execute(context.Background(), AppendOwnerMessageCommand{
		InquirySID: testInquirySID, OwnerID: testOwnerID, Body: "anything new?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.MessageID)
	assert.True(t, inq.UpdatedAt().After(updatedBefore), "new message bumps updated_at")

	require.Len(t, dispatcher.events, 1)
	ev, ok := dispatcher.events[0].(inquiry.OwnerMessageCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "anything new?", ev.Body)
}

func TestAppendOwnerMessage_SolvedInquiryIsClosed(t *testing.T) {
	inq := storedInquiry(t, true)
	inquiryRepo := &mockInquiryRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
			return inq, nil
		},
	}
	dispatcher := &mockDispatcher{}
	uc := NewAppendOwnerMessageUseCase(
		inquiryRepo, &mockMessageRepository{}, &mockTxManager{}, dispatcher, testSanitizer(), testLogger(),
	)

	_, err := uc.Execute(context.Background(), AppendOwnerMessageCommand{
		InquirySID: testInquirySID, OwnerID: testOwnerID, Body: "thanks",
	})

	require.Error(t, err)
	assert.True(t, errors.IsClosedError(err))
	assert.Empty(t, dispatcher.events)
}

func TestAppendOwnerMessage_NonOwnerSeesNotFound(t *testing.T) {
	inq := storedInquiry(t, false)
	inquiryRepo := &mockInquiryRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
			return inq, nil
		},
	}
	uc := NewAppendOwnerMessageUseCase(
		inquiryRepo, &mockMessageRepository{}, &mockTxManager{}, &mockDispatcher{}, testSanitizer(), testLogger(),
	)

	_, err := uc.Execute(context.Background(), AppendOwnerMessageCommand{
		InquirySID: testInquirySID, OwnerID: 999, Body: "hi",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err), "existence must not be revealed as forbidden")
}

func TestAppendModeratorMessage_Success(t *testing.T) {
	inq := storedInquiry(t, false)
	assignment := storedAssignment(t, true)
	inquiryRepo := &mockInquiryRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
			return inq, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		GetByInquiryAndModeratorFunc: func(ctx context.Context, inquiryID, moderatorID uint) (*inquiry.Assignment, error) {
			return assignment, nil
		},
	}
	dispatcher := &mockDispatcher{}
	uc := NewAppendModeratorMessageUseCase(
		inquiryRepo, assignmentRepo, &mockMessageRepository{}, &mockTxManager{}, dispatcher, testSanitizer(), testLogger(),
	)

	result, err := uc.Execute(context.Background(), AppendModeratorMessageCommand{
		InquirySID: testInquirySID, ModeratorID: testModeratorID, Body: "on it",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.MessageID)

	require.Len(t, dispatcher.events, 1)
	ev, ok := dispatcher.events[0].(inquiry.ModeratorMessageCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, assignment.ID(), ev.AssignmentID)
	assert.Equal(t, testModeratorID, ev.ModeratorID)
}

func TestAppendModeratorMessage_NoAssignmentHidesInquiry(t *testing.T) {
	inq := storedInquiry(t, false)
	inquiryRepo := &mockInquiryRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
			return inq, nil
		},
	}
	uc := NewAppendModeratorMessageUseCase(
		inquiryRepo, &mockAssignmentRepository{}, &mockMessageRepository{}, &mockTxManager{}, &mockDispatcher{}, testSanitizer(), testLogger(),
	)

	_, err := uc.Execute(context.Background(), AppendModeratorMessageCommand{
		InquirySID: testInquirySID, ModeratorID: testModeratorID, Body: "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAppendModeratorMessage_SolvedInquiryIsClosed(t *testing.T) {
	inq := storedInquiry(t, true)
	assignment := storedAssignment(t, true)
	inquiryRepo := &mockInquiryRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*inquiry.Inquiry, error) {
			return inq, nil
		},
	}
	assignmentRepo := &mockAssignmentRepository{
		GetByInquiryAndModeratorFunc: func(ctx context.Context, inquiryID, moderatorID uint) (*inquiry.Assignment, error) {
			return assignment, nil
		},
	}
	uc := NewAppendModeratorMessageUseCase(
		inquiryRepo, assignmentRepo, &mockMessageRepository{}, &mockTxManager{}, &mockDispatcher{}, testSanitizer(), testLogger(),
	)

	_, err := uc.Execute(context.Background(), AppendModeratorMessageCommand{
		InquirySID: testInquirySID, ModeratorID: testModeratorID, Body: "late reply",
	})

	require.Error(t, err)
	assert.True(t, errors.IsClosedError(err))
}
