package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding error into an ErrorDetail. Field
// level errors from the binding validator are listed per field; anything else
// becomes a generic invalid-format detail.
func HandleValidationError(err error) *ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		details := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			details[fe.Field()] = formatFieldError(fe)
		}
		return NewErrorDetail(ErrorCodeValidationFailed, "Validation failed").WithDetails(details)
	}

	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
