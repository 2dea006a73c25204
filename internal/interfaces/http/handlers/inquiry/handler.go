package inquiry

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"courtside/internal/application/inquiry/usecases"
	"courtside/internal/shared/constants"
	"courtside/internal/shared/errors"
	"courtside/internal/shared/id"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/utils"
)

type InquiryHandler struct {
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
	logger              logger.Interface
}

func NewInquiryHandler(
	openInquiryUC usecases.OpenInquiryExecutor,
	appendOwnerMsgUC usecases.AppendOwnerMessageExecutor,
	appendModeratorUC usecases.AppendModeratorMessageExecutor,
	assignModeratorUC usecases.AssignModeratorExecutor,
	unassignModeratorUC usecases.UnassignModeratorExecutor,
	updateInquiryUC usecases.UpdateInquiryExecutor,
	getTimelineUC usecases.GetTimelineExecutor,
	getUnreadCountsUC usecases.GetUnreadCountsExecutor,
	markReadUC usecases.MarkReadExecutor,
	getInquiryUC usecases.GetInquiryExecutor,
	listInquiriesUC usecases.ListInquiriesExecutor,
	log logger.Interface,
) *InquiryHandler {
	return &InquiryHandler{
		openInquiryUC:       openInquiryUC,
		appendOwnerMsgUC:    appendOwnerMsgUC,
		appendModeratorUC:   appendModeratorUC,
		assignModeratorUC:   assignModeratorUC,
		unassignModeratorUC: unassignModeratorUC,
		updateInquiryUC:     updateInquiryUC,
		getTimelineUC:       getTimelineUC,
		getUnreadCountsUC:   getUnreadCountsUC,
		markReadUC:          markReadUC,
		getInquiryUC:        getInquiryUC,
		listInquiriesUC:     listInquiriesUC,
		logger:              log,
	}
}

// OpenInquiry handles POST /inquiries
func (h *InquiryHandler) OpenInquiry(c *gin.Context) {
	var req OpenInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for open inquiry", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.openInquiryUC.Execute(c.Request.Context(), req.ToCommand(currentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inquiry opened successfully")
}

// ListMine handles GET /inquiries
func (h *InquiryHandler) ListMine(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listInquiriesUC.Execute(c.Request.Context(), usecases.ListInquiriesQuery{
		RequesterID: currentUserID(c),
		IsModerator: currentIsModerator(c),
		Mine:        true,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListDashboard handles GET /moderation/inquiries
func (h *InquiryHandler) ListDashboard(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listInquiriesUC.Execute(c.Request.Context(), usecases.ListInquiriesQuery{
		Segment:     c.Query("segment"),
		RequesterID: currentUserID(c),
		IsModerator: true,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetInquiry handles GET /inquiries/:sid
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getInquiryUC.Execute(c.Request.Context(), usecases.GetInquiryQuery{
		InquirySID:  sid,
		RequesterID: currentUserID(c),
		IsModerator: currentIsModerator(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTimeline handles GET /inquiries/:sid/messages
func (h *InquiryHandler) GetTimeline(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	before, err := parseBeforeCursor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTimelineUC.Execute(c.Request.Context(), usecases.GetTimelineQuery{
		InquirySID:  sid,
		RequesterID: currentUserID(c),
		IsModerator: currentIsModerator(c),
		Before:      before,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CursorSuccessResponse(c, result.Items, result.NextCursor)
}

// AppendOwnerMessage handles POST /inquiries/:sid/messages
func (h *InquiryHandler) AppendOwnerMessage(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.appendOwnerMsgUC.Execute(c.Request.Context(), usecases.AppendOwnerMessageCommand{
		InquirySID: sid,
		OwnerID:    currentUserID(c),
		Body:       req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent successfully")
}

// AppendModeratorMessage handles POST /moderation/inquiries/:sid/messages
func (h *InquiryHandler) AppendModeratorMessage(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AppendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.appendModeratorUC.Execute(c.Request.Context(), usecases.AppendModeratorMessageCommand{
		InquirySID:  sid,
		ModeratorID: currentUserID(c),
		Body:        req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent successfully")
}

// AssignSelf handles POST /moderation/inquiries/:sid/moderators
func (h *InquiryHandler) AssignSelf(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignModeratorUC.Execute(c.Request.Context(), usecases.AssignModeratorCommand{
		InquirySID:  sid,
		ModeratorID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Moderator assigned successfully", result)
}

// UnassignSelf handles DELETE /moderation/inquiries/:sid/moderators
func (h *InquiryHandler) UnassignSelf(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unassignModeratorUC.Execute(c.Request.Context(), usecases.UnassignModeratorCommand{
		InquirySID:  sid,
		ModeratorID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Moderator unassigned successfully", result)
}

// UpdateInquiry handles PATCH /moderation/inquiries/:sid
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update inquiry", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateInquiryUC.Execute(c.Request.Context(), req.ToCommand(sid, currentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inquiry updated successfully", result)
}

// GetUnreadCounts handles GET /inquiries/:sid/unread
func (h *InquiryHandler) GetUnreadCounts(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUnreadCountsUC.Execute(c.Request.Context(), usecases.GetUnreadCountsQuery{
		InquirySID:  sid,
		RequesterID: currentUserID(c),
		IsModerator: currentIsModerator(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles POST /inquiries/:sid/read
func (h *InquiryHandler) MarkRead(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		InquirySID:  sid,
		RequesterID: currentUserID(c),
		IsModerator: currentIsModerator(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	uid, _ := userID.(uint)
	return uid
}

func currentIsModerator(c *gin.Context) bool {
	moderator, _ := c.Get(constants.ContextKeyIsModerator)
	flag, _ := moderator.(bool)
	return flag
}

func parseBeforeCursor(c *gin.Context) (*time.Time, error) {
	raw := utils.ParseCursorQuery(c)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid before cursor")
	}
	return &parsed, nil
}
