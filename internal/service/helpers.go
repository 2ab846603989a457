package service

import (
	"errors"
	"strings"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/repository"
)

// notFound converts a repository miss into a domain NotFound error and passes
// anything else through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NotFound(format, args...)
	}
	return err
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
