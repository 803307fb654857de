package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and the admin-facing list/update/
// delete operations against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. The plaintext Password field
// of the input is never touched: only PasswordHash reaches the database.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the email index → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)
		return row.Scan(&created.ID, &created.Username, &created.Email, &created.PasswordHash)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID retrieves a user record by its primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, findUserByID, id)
		return row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByEmail retrieves a user record whose email matches the one
// provided. Email is unique in the database, so at most one row can match.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, findUserByEmail, email)
		return row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUsers returns up to limit user records ordered by id. It backs the
// admin tooling; an empty result set is not an error.
func (r *userRepository) FindUsers(ctx context.Context, limit uint64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	err := r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, findUsers, limit)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUsers").Msg("error: querying users")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer func() { _ = rows.Close() }()

		users = users[:0]
		for rows.Next() {
			var u models.User
			if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash); err != nil {
				log.Err(err).Str("func", "*userRepository.FindUsers").Msg("error: scanning user row")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser overwrites the username, email and password hash of the record
// identified by user.ID and returns the stored representation.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - PostgreSQL unique_violation (23505) on the email index → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, updateUser, user.ID, user.Username, user.Email, user.PasswordHash)
		return row.Scan(&updated.ID, &updated.Username, &updated.Email, &updated.PasswordHash)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser removes the user record with the given id and returns the number
// of deleted rows. Deleting a non-existent user returns [ErrNoUserWasFound].
// Bookkeeping records referencing the user keep their rows; the foreign key
// sets their user_id to NULL.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, deleteUser, id)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: deleting user")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return 0, ErrNoUserWasFound
	}

	return affected, nil
}
