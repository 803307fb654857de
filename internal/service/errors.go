package service

import "errors"

var (
	// ErrWrongCredentials covers both an unknown email and a wrong password.
	// The two cases are deliberately indistinguishable to the client so that
	// login responses cannot be used to probe which emails are registered.
	ErrWrongCredentials = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
