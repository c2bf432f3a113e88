// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity of the system, representing one registered account.
// It carries profile data only; the password hash lives in a separate credential
// record that never crosses the repository boundary.
type User struct {
	ID        uuid.UUID // The unique identifier for the user, assigned at creation and immutable.
	Name      string    // The user's display name, trimmed and never empty.
	Email     string    // The user's login email, normalized to lowercase and unique across all users.
	IsActive  bool      // Whether the account may log in. Defaults to true at registration.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// CanLogin reports whether the account is allowed to authenticate.
func (u *User) CanLogin() bool {
	return u.IsActive
}

// NormalizeEmail lowercases and trims an email address so that lookups and
// uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TrimName strips surrounding whitespace from a display name. Length rules are
// enforced on the trimmed value.
func TrimName(name string) string {
	return strings.TrimSpace(name)
}
