package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password of an inbound
	// register/login/update request. It is never persisted and never
	// serialized back to the client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the Argon2id digest stored in place of the password.
	// Excluded from JSON entirely.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the payload of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
