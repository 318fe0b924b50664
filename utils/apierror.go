package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Service error codes shared by the booking, review, provider and user
// services. Handlers translate them to HTTP statuses with HTTPStatus.
const (
	CodeNotFound          = "notFound"
	CodeForbidden         = "forbidden"
	CodeInvalidTransition = "invalidTransition"
	CodeInvalidState      = "invalidState"
	CodeConflict          = "conflict"
	CodeValidation        = "validation"
	CodeStoreFailure      = "storeFailure"
)

// ServiceError is a coded, user-presentable error raised by a service.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewServiceError builds a coded service error.
func NewServiceError(code, message string) error {
	return &ServiceError{Code: code, Message: message}
}

// AsServiceError unwraps err into a ServiceError if it carries one.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// HTTPStatus maps a service error code to its HTTP status.
func HTTPStatus(code string) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidTransition, CodeInvalidState, CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
