// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed HTTP client for the go-budget-keeper API.
//
// The [ServerAdapter] interface covers the account endpoints; bookkeeping
// records (budgets, transactions, income, goals) are accessed through the
// generic [RecordClient], one instance per resource path.
//
// HTTP statuses are mapped to the sentinel errors defined in errors.go by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// ServerAdapter is the account-level API surface of the go-budget-keeper
// server. Implementations manage serialisation, the Authorization header, and
// mapping HTTP statuses to the sentinel errors of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Login calls it automatically.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. Registration does not authenticate:
	// the caller still has to Login to obtain a token.
	Register(ctx context.Context, user models.User) (models.UserResponse, error)

	// Login authenticates with email and password. On success the issued
	// bearer token is stored via SetToken and returned alongside the public
	// user record.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// UpdateUser replaces the authenticated user's profile. The server only
	// permits updating one's own account.
	UpdateUser(ctx context.Context, user models.User) (models.UserResponse, error)
}
