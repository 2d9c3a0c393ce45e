package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the uniform envelope returned by every endpoint.
// Data carries the payload on success and is null on failure; Errors
// carries user-facing failure details and is null on success.
type Response struct {
	Data       any      `json:"data"`
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(statusCode int, data any, message string) Response {
	return Response{
		Data:       data,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewErrorResponse builds a failure envelope.
func NewErrorResponse(statusCode int, message string, errs []string) Response {
	return Response{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

// FormatValidationErrors converts binding failures into the envelope's
// field-level errors list. Non-validator errors collapse to one entry.
func FormatValidationErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, formatFieldError(fe))
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
