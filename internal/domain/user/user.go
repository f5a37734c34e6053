package user

import (
	"strings"

	"github.com/lendly/service-rental/internal/apperr"
)

// User is a registered account. Only its id takes part in the booking
// engine's authorization comparisons.
type User struct {
	id           int64
	name         string
	email        string
	passwordHash string
}

// NewUser creates a user with a pre-hashed password.
func NewUser(name, email, passwordHash string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.NewValidationError("user name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperr.NewValidationError("a valid email is required")
	}
	if passwordHash == "" {
		return nil, apperr.NewValidationError("password is required")
	}
	return &User{name: name, email: email, passwordHash: passwordHash}, nil
}

// ReconstructUser rebuilds a User from persistence data (no validation).
func ReconstructUser(id int64, name, email, passwordHash string) *User {
	return &User{id: id, name: name, email: email, passwordHash: passwordHash}
}

// ID returns the user's store-assigned identifier.
func (u *User) ID() int64 { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's unique email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// ApplyPatch overwrites only the fields present in the patch.
func (u *User) ApplyPatch(p Patch) error {
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return apperr.NewValidationError("user name is required")
		}
		u.name = *p.Name
	}
	if p.Email != nil {
		if !strings.Contains(*p.Email, "@") {
			return apperr.NewValidationError("a valid email is required")
		}
		u.email = *p.Email
	}
	return nil
}

// Patch holds the optional fields of a partial user update.
type Patch struct {
	Name  *string
	Email *string
}
