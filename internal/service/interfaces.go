package service

import (
	"context"

	"github.com/MKhiriev/go-budget-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService is the business layer over one bookkeeping record type; one
// instantiation exists per type (budget, transaction, income, goal).
//
// Writes validate the record first and force its owner to ownerID, so a
// client can never plant records under another user's account.
type RecordService[T any] interface {
	Create(ctx context.Context, ownerID int64, record T) (T, error)
	Get(ctx context.Context, ownerID, id int64) (T, error)
	List(ctx context.Context, ownerID int64) ([]T, error)
	Update(ctx context.Context, ownerID, id int64, record T) (T, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
