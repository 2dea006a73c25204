package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination for list endpoints
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeyUserSID     = "user_sid"
	ContextKeyIsModerator = "is_moderator"
	ContextKeyRequestID   = "request_id"

	// Database table names
	TableUsers              = "users"
	TableInquiries          = "inquiries"
	TableInquiryCategories  = "inquiry_categories"
	TableCategoryNames      = "inquiry_category_display_names"
	TableAssignments        = "inquiry_assignments"
	TableOwnerMessages      = "inquiry_owner_messages"
	TableAssignmentMessages = "inquiry_assignment_messages"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
)
