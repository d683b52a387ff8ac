package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public identifier chosen at registration.
	// Immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON and is opaque to every layer except
	// the auth service that created it.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials carries the username/password pair submitted on login and
// registration. The password is plaintext in transit only; it is hashed
// before it ever reaches the persistence layer.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
