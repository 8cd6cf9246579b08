package validation

import (
	"fmt"
	"net/mail"
)

// ValidateEmail checks a notification address: RFC 5322 syntax, max 254 characters.
// Display names ("Tasks <tasks@example.com>") are accepted.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email address is required", ErrInvalid)
	}

	// RFC 5321: total max 254 with @
	if len(email) > 254 {
		return fmt.Errorf("%w: email address is too long (max 254 characters)", ErrInvalid)
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("%w: invalid email address format %q", ErrInvalid, email)
	}

	return nil
}
