package inquiry

import (
	"courtside/internal/application/inquiry/usecases"
)

// OpenInquiryRequest represents a request to open a new inquiry
type OpenInquiryRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=200"`
	Body       string `json:"body" binding:"required,max=5000"`
}

func (r *OpenInquiryRequest) ToCommand(ownerID uint) usecases.OpenInquiryCommand {
	return usecases.OpenInquiryCommand{
		OwnerID:    ownerID,
		CategoryID: r.CategoryID,
		Title:      r.Title,
		Body:       r.Body,
	}
}

// AppendMessageRequest represents a request to append a message to an
// inquiry, from either side of the conversation.
type AppendMessageRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

// UpdateInquiryRequest represents a moderator state change. All fields are
// optional but at least one must be present.
type UpdateInquiryRequest struct {
	Solved     *bool   `json:"solved"`
	Title      *string `json:"title" binding:"omitempty,max=200"`
	CategoryID *uint   `json:"category_id"`
}

func (r *UpdateInquiryRequest) ToCommand(sid string, moderatorID uint) usecases.UpdateInquiryCommand {
	return usecases.UpdateInquiryCommand{
		InquirySID:  sid,
		ModeratorID: moderatorID,
		Solved:      r.Solved,
		Title:       r.Title,
		CategoryID:  r.CategoryID,
	}
}
