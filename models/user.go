package models

import "time"

// User represents an account entity used for authentication and course
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName is the user's given name. Required, non-empty.
	FirstName string `json:"firstName"`

	// LastName is the user's family name. Required, non-empty.
	LastName string `json:"lastName"`

	// EmailAddress is the unique address used as the login name during
	// Basic authentication.
	EmailAddress string `json:"emailAddress"`

	// Password carries the plaintext credential inbound on registration
	// requests only. After registration it always holds the bcrypt hash and
	// must never be serialized back to clients.
	Password string `json:"password,omitempty"`

	// CreatedAt and UpdatedAt are persistence timestamps. They are excluded
	// from all API responses.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user that is safe to embed in API responses:
// the password hash and timestamps are stripped.
func (u User) Public() User {
	u.Password = ""
	u.CreatedAt = time.Time{}
	u.UpdatedAt = time.Time{}
	return u
}

// UserInput is the inbound JSON body for user registration. Pointer fields
// distinguish an absent field from one explicitly set to an empty string;
// the two cases produce different validation messages.
type UserInput struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	EmailAddress *string `json:"emailAddress"`
	Password     *string `json:"password"`
}
