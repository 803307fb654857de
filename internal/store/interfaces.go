package store

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

// UserRepository provides persistence for user accounts. Registration,
// login and the admin tooling all go through this interface.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUsers(ctx context.Context, limit uint64) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// ResourceRepository provides owner-scoped persistence for a single
// bookkeeping record type (budgets, transactions, income, goals).
//
// Every read and write except Create carries the owner's user id and only
// touches rows whose user_id matches it: a record belonging to another user
// behaves exactly like a record that does not exist.
type ResourceRepository[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	FindByID(ctx context.Context, ownerID, id int64) (T, error)
	FindMany(ctx context.Context, ownerID int64, limit uint64) ([]T, error)
	Update(ctx context.Context, ownerID, id int64, record T) (T, error)
	Delete(ctx context.Context, ownerID, id int64) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
