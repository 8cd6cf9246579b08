package validation

import (
	"errors"
	"strings"
)

const maxTitleLength = 255

// ValidateTitle validates a goal or task title
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > maxTitleLength {
		return errors.New("title is too long (max 255 characters)")
	}

	return nil
}
