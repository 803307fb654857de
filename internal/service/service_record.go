package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
	"github.com/MKhiriev/go-budget-keeper/internal/validators"
	"github.com/MKhiriev/go-budget-keeper/models"
)

// listLimit caps how many records a single list call returns.
const listLimit = 100

// recordService is the concrete implementation of [RecordService] shared by
// all four bookkeeping record types.
//
// The prepare hook runs after validation and before persistence on every
// write: it stamps the authenticated owner onto the record and, for
// categorised types, folds the category to its canonical spelling. Client
// supplied id and user_id fields are ignored entirely.
type recordService[T any] struct {
	repository store.ResourceRepository[T]
	validator  validators.Validator
	prepare    func(record *T, ownerID int64)
	logger     *logger.Logger
}

func newRecordService[T any](repository store.ResourceRepository[T], prepare func(record *T, ownerID int64), logger *logger.Logger) RecordService[T] {
	return &recordService[T]{
		repository: repository,
		validator:  validators.NewRecordValidator(),
		prepare:    prepare,
		logger:     logger,
	}
}

func (s *recordService[T]) Create(ctx context.Context, ownerID int64, record T) (T, error) {
	log := logger.FromContext(ctx)

	var zero T
	if err := s.validator.Validate(ctx, record); err != nil {
		log.Error().Err(err).Int64("user_id", ownerID).Msg("invalid record data provided")
		return zero, err
	}

	s.prepare(&record, ownerID)

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("record creation ended with error")
		return zero, fmt.Errorf("record creation ended with error: %w", err)
	}

	return created, nil
}

func (s *recordService[T]) Get(ctx context.Context, ownerID, id int64) (T, error) {
	return s.repository.FindByID(ctx, ownerID, id)
}

func (s *recordService[T]) List(ctx context.Context, ownerID int64) ([]T, error) {
	return s.repository.FindMany(ctx, ownerID, listLimit)
}

func (s *recordService[T]) Update(ctx context.Context, ownerID, id int64, record T) (T, error) {
	log := logger.FromContext(ctx)

	var zero T
	if err := s.validator.Validate(ctx, record); err != nil {
		log.Error().Err(err).Int64("user_id", ownerID).Int64("id", id).Msg("invalid record data provided")
		return zero, err
	}

	s.prepare(&record, ownerID)

	updated, err := s.repository.Update(ctx, ownerID, id, record)
	if err != nil {
		return zero, err
	}

	return updated, nil
}

func (s *recordService[T]) Delete(ctx context.Context, ownerID, id int64) error {
	_, err := s.repository.Delete(ctx, ownerID, id)
	return err
}

// Prepare hooks per record type. Validation has already confirmed the
// category is known; NormalizeCategory only fixes its capitalisation.

func prepareBudget(b *models.Budget, ownerID int64) {
	b.UserID = ownerID
	if canonical, ok := models.NormalizeCategory(b.Category); ok {
		b.Category = canonical
	}
}

func prepareTransaction(t *models.Transaction, ownerID int64) {
	t.UserID = ownerID
	if canonical, ok := models.NormalizeCategory(t.Category); ok {
		t.Category = canonical
	}
}

func prepareIncome(i *models.Income, ownerID int64) {
	i.UserID = ownerID
}

func prepareGoal(g *models.Goal, ownerID int64) {
	g.UserID = ownerID
}
