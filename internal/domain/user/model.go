package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Principal is the identity asserted by the auth provider for a request.
type Principal struct {
	UserID string
	Email  string
	Name   string
}

// User is a registered BineTime member, keyed by email.
type User struct {
	ID        string
	Email     string
	Name      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("user email is invalid: %w", err)
	}
	return nil
}
