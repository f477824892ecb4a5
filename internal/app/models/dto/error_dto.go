package dto

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	ErrorCodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	ErrorCodeResourceNotFound      ErrorCode = "RESOURCE_NOT_FOUND"
	ErrorCodeResourceAlreadyExists ErrorCode = "RESOURCE_ALREADY_EXISTS"
	ErrorCodeUnauthorized          ErrorCode = "UNAUTHORIZED"
	ErrorCodeInternalServer        ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrorCodeBadRequest            ErrorCode = "BAD_REQUEST"
)

// ErrorDetail carries a standardized error payload
type ErrorDetail struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorDetail creates a new ErrorDetail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithDetails attaches extra context to the error detail
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// NewErrorResponse wraps an ErrorDetail into an ErrorResponse
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{Error: detail}
}
