package inquiry

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inquirydto "courtside/internal/application/inquiry/dto"
	"courtside/internal/application/inquiry/usecases"
	"courtside/internal/interfaces/http/handlers/testutil"
	"courtside/internal/shared/errors"
)

const testInquirySID = "inq_AbCdEf123456"

// =====================================================================
// Mock use cases
// =====================================================================

type mockOpenInquiryUC struct {
	result *usecases.OpenInquiryResult
	err    error
}

func (m *mockOpenInquiryUC) Execute(_ context.Context, _ usecases.OpenInquiryCommand) (*usecases.OpenInquiryResult, error) {
	return m.result, m.err
}

type mockAppendOwnerMessageUC struct {
	result *usecases.AppendMessageResult
	err    error
	gotCmd usecases.AppendOwnerMessageCommand
}

func (m *mockAppendOwnerMessageUC) Execute(_ context.Context, cmd usecases.AppendOwnerMessageCommand) (*usecases.AppendMessageResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAppendModeratorMessageUC struct {
	result *usecases.AppendMessageResult
	err    error
	gotCmd usecases.AppendModeratorMessageCommand
}

func (m *mockAppendModeratorMessageUC) Execute(_ context.Context, cmd usecases.AppendModeratorMessageCommand) (*usecases.AppendMessageResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockAssignModeratorUC struct {
	result *usecases.AssignModeratorResult
	err    error
	gotCmd usecases.AssignModeratorCommand
}

func (m *mockAssignModeratorUC) Execute(_ context.Context, cmd usecases.AssignModeratorCommand) (*usecases.AssignModeratorResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockUnassignModeratorUC struct {
	result *usecases.UnassignModeratorResult
	err    error
	gotCmd usecases.UnassignModeratorCommand
}

func (m *mockUnassignModeratorUC) Execute(_ context.Context, cmd usecases.UnassignModeratorCommand) (*usecases.UnassignModeratorResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockUpdateInquiryUC struct {
	result *usecases.UpdateInquiryResult
	err    error
	gotCmd usecases.UpdateInquiryCommand
}

func (m *mockUpdateInquiryUC) Execute(_ context.Context, cmd usecases.UpdateInquiryCommand) (*usecases.UpdateInquiryResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTimelineUC struct {
	result   *inquirydto.TimelineDTO
	err      error
	gotQuery usecases.GetTimelineQuery
}

func (m *mockGetTimelineUC) Execute(_ context.Context, query usecases.GetTimelineQuery) (*inquirydto.TimelineDTO, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockGetUnreadCountsUC struct {
	result *inquirydto.UnreadCountsDTO
	err    error
}

func (m *mockGetUnreadCountsUC) Execute(_ context.Context, _ usecases.GetUnreadCountsQuery) (*inquirydto.UnreadCountsDTO, error) {
	return m.result, m.err
}

type mockMarkReadUC struct {
	result *usecases.MarkReadResult
	err    error
}

func (m *mockMarkReadUC) Execute(_ context.Context, _ usecases.MarkReadCommand) (*usecases.MarkReadResult, error) {
	return m.result, m.err
}

type mockGetInquiryUC struct {
	result *usecases.GetInquiryResult
	err    error
}

func (m *mockGetInquiryUC) Execute(_ context.Context, _ usecases.GetInquiryQuery) (*usecases.GetInquiryResult, error) {
	return m.result, m.err
}

type mockListInquiriesUC struct {
	result   *usecases.ListInquiriesResult
	err      error
	gotQuery usecases.ListInquiriesQuery
}

func (m *mockListInquiriesUC) Execute(_ context.Context, query usecases.ListInquiriesQuery) (*usecases.ListInquiriesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	openInquiryUC       usecases.OpenInquiryExecutor
	appendOwnerMsgUC    usecases.AppendOwnerMessageExecutor
	appendModeratorUC   usecases.AppendModeratorMessageExecutor
	assignModeratorUC   usecases.AssignModeratorExecutor
	unassignModeratorUC usecases.UnassignModeratorExecutor
	updateInquiryUC     usecases.UpdateInquiryExecutor
	getTimelineUC       usecases.GetTimelineExecutor
	getUnreadCountsUC   usecases.GetUnreadCountsExecutor
	markReadUC          usecases.MarkReadExecutor
	getInquiryUC        usecases.GetInquiryExecutor
	listInquiriesUC     usecases.ListInquiriesExecutor
}

func newTestInquiryHandler(deps testDeps) *InquiryHandler {
	return NewInquiryHandler(
		deps.openInquiryUC,
		deps.appendOwnerMsgUC,
		deps.appendModeratorUC,
		deps.assignModeratorUC,
		deps.unassignModeratorUC,
		deps.updateInquiryUC,
		deps.getTimelineUC,
		deps.getUnreadCountsUC,
		deps.markReadUC,
		deps.getInquiryUC,
		deps.listInquiriesUC,
		testutil.NewMockLogger(),
	)
}

// =====================================================================
// TestInquiryHandler_OpenInquiry
// =====================================================================

func TestInquiryHandler_OpenInquiry_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockOpenInquiryUC{
		result: &usecases.OpenInquiryResult{
			SID:       testInquirySID,
			Title:     "Broken court lights",
			CreatedAt: now.Format(time.RFC3339Nano),
		},
	}
	handler := newTestInquiryHandler(testDeps{openInquiryUC: mockUC})

	reqBody := OpenInquiryRequest{
		CategoryID: 1,
		Title:      "Broken court lights",
		Body:       "The lights at court 3 have been out for a week.",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", reqBody)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")

	handler.OpenInquiry(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestInquiryHandler_OpenInquiry_BindError(t *testing.T) {
	handler := newTestInquiryHandler(testDeps{})

	// Missing required category_id and body
	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", reqBody)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")

	handler.OpenInquiry(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestInquiryHandler_OpenInquiry_UseCaseError(t *testing.T) {
	mockUC := &mockOpenInquiryUC{
		err: errors.NewNotFoundError("category not found"),
	}
	handler := newTestInquiryHandler(testDeps{openInquiryUC: mockUC})

	reqBody := OpenInquiryRequest{
		CategoryID: 999,
		Title:      "Broken court lights",
		Body:       "The lights at court 3 have been out for a week.",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", reqBody)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")

	handler.OpenInquiry(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestInquiryHandler_GetInquiry
// =====================================================================

func TestInquiryHandler_GetInquiry_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockGetInquiryUC{
		result: &usecases.GetInquiryResult{
			Inquiry: inquirydto.InquirySnapshotDTO{
				SID:       testInquirySID,
				Title:     "Broken court lights",
				Category:  "facilities",
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}
	handler := newTestInquiryHandler(testDeps{getInquiryUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/"+testInquirySID, nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.GetInquiry(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestInquiryHandler_GetInquiry_InvalidSID(t *testing.T) {
	handler := newTestInquiryHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/not-a-sid", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", "not-a-sid")

	handler.GetInquiry(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestInquiryHandler_GetInquiry_NotFound(t *testing.T) {
	mockUC := &mockGetInquiryUC{
		err: errors.NewNotFoundError("inquiry not found"),
	}
	handler := newTestInquiryHandler(testDeps{getInquiryUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/"+testInquirySID, nil)
	testutil.SetAuthContext(c, 99, "usr_stranger0001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.GetInquiry(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestInquiryHandler_ListMine / ListDashboard
// =====================================================================

func TestInquiryHandler_ListMine_Success(t *testing.T) {
	mockUC := &mockListInquiriesUC{
		result: &usecases.ListInquiriesResult{
			Items:    []inquirydto.InquirySnapshotDTO{{SID: testInquirySID, Title: "Broken court lights"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestInquiryHandler(testDeps{listInquiriesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")

	handler.ListMine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.gotQuery.Mine, "owner listing must be scoped to the requester")

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestInquiryHandler_ListDashboard_PassesSegment(t *testing.T) {
	mockUC := &mockListInquiriesUC{
		result: &usecases.ListInquiriesResult{
			Items:    []inquirydto.InquirySnapshotDTO{},
			Total:    0,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestInquiryHandler(testDeps{listInquiriesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/moderation/inquiries", nil)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetQueryParams(c, map[string]string{"segment": "unassigned"})

	handler.ListDashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unassigned", mockUC.gotQuery.Segment)
	assert.True(t, mockUC.gotQuery.IsModerator)
	assert.False(t, mockUC.gotQuery.Mine)
}

func TestInquiryHandler_ListDashboard_UnknownSegment(t *testing.T) {
	mockUC := &mockListInquiriesUC{
		err: errors.NewValidationError("unknown segment"),
	}
	handler := newTestInquiryHandler(testDeps{listInquiriesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/moderation/inquiries", nil)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetQueryParams(c, map[string]string{"segment": "bogus"})

	handler.ListDashboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestInquiryHandler_GetTimeline
// =====================================================================

func TestInquiryHandler_GetTimeline_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockGetTimelineUC{
		result: &inquirydto.TimelineDTO{
			Items: []inquirydto.MessageDTO{
				{ID: 2, Origin: "owner", Body: "Any update?", CreatedAt: now},
				{ID: 1, Origin: "owner", Body: "The lights are out.", CreatedAt: now.Add(-time.Hour)},
			},
		},
	}
	handler := newTestInquiryHandler(testDeps{getTimelineUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/"+testInquirySID+"/messages", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.GetTimeline(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, mockUC.gotQuery.Before, "no cursor means latest page")

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestInquiryHandler_GetTimeline_WithCursor(t *testing.T) {
	cursor := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	mockUC := &mockGetTimelineUC{
		result: &inquirydto.TimelineDTO{Items: []inquirydto.MessageDTO{}},
	}
	handler := newTestInquiryHandler(testDeps{getTimelineUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/"+testInquirySID+"/messages", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)
	testutil.SetQueryParams(c, map[string]string{"before": cursor.Format(time.RFC3339Nano)})

	handler.GetTimeline(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotQuery.Before)
	assert.True(t, cursor.Equal(*mockUC.gotQuery.Before))
}

func TestInquiryHandler_GetTimeline_MalformedCursor(t *testing.T) {
	handler := newTestInquiryHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/"+testInquirySID+"/messages", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)
	testutil.SetQueryParams(c, map[string]string{"before": "yesterday"})

	handler.GetTimeline(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

// =====================================================================
// TestInquiryHandler_AppendOwnerMessage
// =====================================================================

func TestInquiryHandler_AppendOwnerMessage_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockAppendOwnerMessageUC{
		result: &usecases.AppendMessageResult{MessageID: 10, CreatedAt: now.Format(time.RFC3339Nano)},
	}
	handler := newTestInquiryHandler(testDeps{appendOwnerMsgUC: mockUC})

	reqBody := AppendMessageRequest{Body: "Any update on this?"}
	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/"+testInquirySID+"/messages", reqBody)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AppendOwnerMessage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), mockUC.gotCmd.OwnerID)
	assert.Equal(t, testInquirySID, mockUC.gotCmd.InquirySID)
}

func TestInquiryHandler_AppendOwnerMessage_BindError(t *testing.T) {
	handler := newTestInquiryHandler(testDeps{})

	// Missing required "body"
	reqBody := map[string]interface{}{}
	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/"+testInquirySID+"/messages", reqBody)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AppendOwnerMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInquiryHandler_AppendOwnerMessage_NotOwner(t *testing.T) {
	mockUC := &mockAppendOwnerMessageUC{
		err: errors.NewNotFoundError("inquiry not found"),
	}
	handler := newTestInquiryHandler(testDeps{appendOwnerMsgUC: mockUC})

	reqBody := AppendMessageRequest{Body: "Not my inquiry"}
	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/"+testInquirySID+"/messages", reqBody)
	testutil.SetAuthContext(c, 42, "usr_stranger0001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AppendOwnerMessage(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestInquiryHandler_AppendModeratorMessage
// =====================================================================

func TestInquiryHandler_AppendModeratorMessage_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockAppendModeratorMessageUC{
		result: &usecases.AppendMessageResult{MessageID: 11, CreatedAt: now.Format(time.RFC3339Nano)},
	}
	handler := newTestInquiryHandler(testDeps{appendModeratorUC: mockUC})

	reqBody := AppendMessageRequest{Body: "We are looking into it."}
	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/inquiries/"+testInquirySID+"/messages", reqBody)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AppendModeratorMessage(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.ModeratorID)
}

func TestInquiryHandler_AppendModeratorMessage_NotAssigned(t *testing.T) {
	// Unassigned moderators get a plain not-found so they cannot probe
	// which inquiries exist.
	mockUC := &mockAppendModeratorMessageUC{
		err: errors.NewHiddenNotFoundError("inquiry not found"),
	}
	handler := newTestInquiryHandler(testDeps{appendModeratorUC: mockUC})

	reqBody := AppendMessageRequest{Body: "Trying to reply unassigned"}
	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/inquiries/"+testInquirySID+"/messages", reqBody)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AppendModeratorMessage(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInquiryHandler_AppendModeratorMessage_SolvedInquiry(t *testing.T) {
	mockUC := &mockAppendModeratorMessageUC{
		err: errors.NewClosedError("inquiry is solved and accepts no new messages"),
	}
	handler := newTestInquiryHandler(testDeps{appendModeratorUC: mockUC})

	reqBody := AppendMessageRequest{Body: "Too late"}
	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/inquiries/"+testInquirySID+"/messages", reqBody)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AppendModeratorMessage(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestInquiryHandler_AssignSelf / UnassignSelf
// =====================================================================

func TestInquiryHandler_AssignSelf_Success(t *testing.T) {
	mockUC := &mockAssignModeratorUC{
		result: &usecases.AssignModeratorResult{
			InquirySID:  testInquirySID,
			ModeratorID: 7,
			InCharge:    true,
			UpdatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
		},
	}
	handler := newTestInquiryHandler(testDeps{assignModeratorUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/inquiries/"+testInquirySID+"/moderators", nil)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AssignSelf(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.ModeratorID, "assignment always targets the caller")
}

func TestInquiryHandler_AssignSelf_InquiryNotFound(t *testing.T) {
	mockUC := &mockAssignModeratorUC{
		err: errors.NewNotFoundError("inquiry not found"),
	}
	handler := newTestInquiryHandler(testDeps{assignModeratorUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/moderation/inquiries/"+testInquirySID+"/moderators", nil)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.AssignSelf(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInquiryHandler_UnassignSelf_Success(t *testing.T) {
	mockUC := &mockUnassignModeratorUC{
		result: &usecases.UnassignModeratorResult{
			InquirySID:  testInquirySID,
			ModeratorID: 7,
			InCharge:    false,
		},
	}
	handler := newTestInquiryHandler(testDeps{unassignModeratorUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/moderation/inquiries/"+testInquirySID+"/moderators", nil)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.UnassignSelf(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.ModeratorID)
}

// =====================================================================
// TestInquiryHandler_UpdateInquiry
// =====================================================================

func TestInquiryHandler_UpdateInquiry_Solved(t *testing.T) {
	mockUC := &mockUpdateInquiryUC{
		result: &usecases.UpdateInquiryResult{
			InquirySID: testInquirySID,
			Title:      "Broken court lights",
			Solved:     true,
			UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
		},
	}
	handler := newTestInquiryHandler(testDeps{updateInquiryUC: mockUC})

	solved := true
	reqBody := UpdateInquiryRequest{Solved: &solved}
	c, w := testutil.NewTestContext(http.MethodPatch, "/moderation/inquiries/"+testInquirySID, reqBody)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.UpdateInquiry(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd.Solved)
	assert.True(t, *mockUC.gotCmd.Solved)
	assert.Nil(t, mockUC.gotCmd.Title, "absent fields stay untouched")
}

func TestInquiryHandler_UpdateInquiry_UseCaseError(t *testing.T) {
	mockUC := &mockUpdateInquiryUC{
		err: errors.NewHiddenNotFoundError("inquiry not found"),
	}
	handler := newTestInquiryHandler(testDeps{updateInquiryUC: mockUC})

	solved := true
	reqBody := UpdateInquiryRequest{Solved: &solved}
	c, w := testutil.NewTestContext(http.MethodPatch, "/moderation/inquiries/"+testInquirySID, reqBody)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.UpdateInquiry(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestInquiryHandler_UnreadAndRead
// =====================================================================

func TestInquiryHandler_GetUnreadCounts_Success(t *testing.T) {
	crossOthers := int64(2)
	mockUC := &mockGetUnreadCountsUC{
		result: &inquirydto.UnreadCountsDTO{Own: 3, CrossOthers: &crossOthers},
	}
	handler := newTestInquiryHandler(testDeps{getUnreadCountsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/"+testInquirySID+"/unread", nil)
	testutil.SetModeratorContext(c, 7, "usr_moderator001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.GetUnreadCounts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestInquiryHandler_MarkRead_Success(t *testing.T) {
	mockUC := &mockMarkReadUC{
		result: &usecases.MarkReadResult{LastReadAt: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	handler := newTestInquiryHandler(testDeps{markReadUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/"+testInquirySID+"/read", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", testInquirySID)

	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestInquiryHandler_MarkRead_InvalidSID(t *testing.T) {
	handler := newTestInquiryHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/usr_wrongprefix/read", nil)
	testutil.SetAuthContext(c, 1, "usr_owner0000001")
	testutil.SetURLParam(c, "sid", "usr_wrongprefix")

	handler.MarkRead(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
