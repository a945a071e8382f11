package validation

import (
	"errors"
	"strings"
)

// ValidateTitle validates a task title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 2048 {
		return errors.New("title is too long (max 2048 characters)")
	}

	return nil
}
