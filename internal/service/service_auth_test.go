// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/crypto"
	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByIDFn    func(ctx context.Context, id int64) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUsersFn   func(ctx context.Context, limit uint64) ([]models.User, error)
	updateFn      func(ctx context.Context, user models.User) (models.User, error)
	deleteFn      func(ctx context.Context, id int64) (int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUsers(ctx context.Context, limit uint64) ([]models.User, error) {
	if m.findUsersFn != nil {
		return m.findUsersFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return 1, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		passwordHasher: crypto.NewPasswordHasher(),
		validator:      validators.NewRecordValidator(),
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "go-budget-keeper-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

func validRegistration() models.User {
	return models.User{
		Username: "john",
		Email:    "john@example.com",
		Password: "secret123",
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			user.ID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	created, err := svc.RegisterUser(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.EqualValues(t, 1, created.ID)
	assert.Empty(t, persisted.Password, "plaintext password must not reach the repository")
	assert.True(t, strings.HasPrefix(persisted.PasswordHash, "$argon2id$"), "expected argon2id digest, got %q", persisted.PasswordHash)
}

func TestAuthService_RegisterUser_CollectsAllViolations(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			t.Fatal("repository must not be called for an invalid payload")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Username: "jo",
		Email:    "not-an-email",
		Password: "short",
	})

	var fieldErrs validators.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := fieldErrs.Fields()
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: 1, Email: email}, nil
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			t.Fatal("a taken email must be rejected before the insert")
			return models.User{}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), validRegistration())
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_EmailTakenConcurrently(t *testing.T) {
	// the pre-check sees nothing, but a concurrent registration wins the
	// race and the unique index reports the conflict on insert
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), validRegistration())
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func registeredUser(t *testing.T, password string) models.User {
	t.Helper()
	digest, err := crypto.NewPasswordHasher().HashPassword(password)
	require.NoError(t, err)
	return models.User{
		ID:           1,
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: digest,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	stored := registeredUser(t, "secret123")
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			require.Equal(t, stored.Email, email)
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	found, err := svc.Login(context.Background(), models.Credentials{
		Email:    "john@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, found.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	stored := registeredUser(t, "secret123")
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return stored, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{
		Email:    "john@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.Credentials{
		Email:    "john@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrWrongCredentials)
}

// ─────────────────────────────────────────────
// UpdateUser
// ─────────────────────────────────────────────

func TestAuthService_UpdateUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		updateFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	user := validRegistration()
	user.ID = 42

	_, err := svc.UpdateUser(context.Background(), user)
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_UpdateUser_RehashesPassword(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		updateFn: func(ctx context.Context, user models.User) (models.User, error) {
			persisted = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user := validRegistration()
	user.ID = 1
	user.Password = "brand-new-password"

	_, err := svc.UpdateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Empty(t, persisted.Password)
	match, err := crypto.NewPasswordHasher().VerifyPassword(persisted.PasswordHash, "brand-new-password")
	require.NoError(t, err)
	assert.True(t, match)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{ID: 7, Email: "john@example.com"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.EqualValues(t, 7, userID)
	assert.Equal(t, "john@example.com", parsed.SessionClaims.Email)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	verifying := newTestAuthService(&mockUserRepository{})
	verifying.tokenSignKey = "a-different-key"

	token, err := issuing.CreateToken(context.Background(), models.User{ID: 7, Email: "john@example.com"})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.String())
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
