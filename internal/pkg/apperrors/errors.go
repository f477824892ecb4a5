package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed    = errors.New("validation failed")
	ErrPasswordTooShort    = errors.New("password needs to have at least 6 chars")
	ErrInvalidMobileNumber = errors.New("mobile number must be exactly 10 digits")
	ErrBadRequest          = errors.New("bad request")
)

// Duplicate key errors
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// Authentication errors. The transport layer collapses all of these into a
// single unauthenticated response so a caller cannot tell which check failed.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenSignature     = errors.New("invalid token signature")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrSessionNotFound    = errors.New("session not found")
)

// Resource errors
var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPlacementNotFound = errors.New("placement not found")
)

// IsAuthError reports whether err belongs to the authentication error family.
func IsAuthError(err error) bool {
	for _, target := range []error{
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrTokenExpired,
		ErrTokenSignature,
		ErrTokenMalformed,
		ErrSessionNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// CustomError carries extra context for an underlying sentinel error.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
