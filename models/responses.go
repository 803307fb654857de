package models

// UserResponse is the public projection of a user account.
// It never carries credential material.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// PublicUser converts a full user record into its public projection.
func PublicUser(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// LoginResponse is returned by a successful login: the public user record
// plus the freshly issued bearer token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ErrorResponse is the JSON body of every error status the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every violated validation rule as
// field:message pairs.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// MessageResponse carries a human-readable confirmation message
// (e.g. after a delete).
type MessageResponse struct {
	Message string `json:"message"`
}
