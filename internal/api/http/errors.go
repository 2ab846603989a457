package http

import (
	"errors"
	"net/http"

	"toollending-backend/internal/domain"
)

// Error codes returned in the error envelope.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidArgument      = "INVALID_ARGUMENT"
	CodeInvalidOperation     = "INVALID_OPERATION"
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeForbidden            = "FORBIDDEN"
	CodeConfigurationMissing = "CONFIGURATION_MISSING"
	CodeInternal             = "INTERNAL"
)

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, CodeInvalidArgument
	case errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest, CodeInvalidOperation
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, CodeUnauthenticated
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, CodeUserNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrConfigurationMissing):
		return http.StatusInternalServerError, CodeConfigurationMissing
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
