package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderHubSignature  = "X-Hub-Signature-256"

	// Context keys set by the auth middleware
	ContextKeyAdminID   = "admin_id"
	ContextKeyAdminRole = "admin_role"
	ContextKeyAdminName = "admin_name"
	ContextKeyRequestID = "request_id"

	// Default reassignment limit for non super admins
	DefaultReassignLimit = 3

	// Setting keys persisted in system_settings
	SettingCategoryJobCard  = "jobcard"
	SettingKeyPublicBaseURL = "public_base_url"

	ErrMsgInternalServerError = "Internal server error occurred"
)
