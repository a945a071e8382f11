package validation

import (
	"errors"
	"strings"
)

// ValidateUsername validates a registration username
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return errors.New("username is required")
	}

	if len(trimmed) > 64 {
		return errors.New("username is too long (max 64 characters)")
	}

	return nil
}
