package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/Masterminds/squirrel"
)

// psql builds parameterised queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// entitySpec describes how one bookkeeping record type maps onto its table.
// The four resource tables share the same shape (id primary key, user_id
// owner column, a handful of value columns), so one spec per table is enough
// for [crudRepository] to build every query it needs.
//
// columns lists the full column set in select/RETURNING order and must start
// with id and user_id. insertCols/updateCols deliberately exclude both: id is
// server-assigned and user_id is fixed at creation time, so an update can
// never move a record to another owner.
type entitySpec[T any] struct {
	table      string
	columns    []string
	insertCols []string
	updateCols []string
	insertVals func(record *T) []any
	updateVals func(record *T) []any
	scanDest   func(record *T) []any
}

// crudRepository is the PostgreSQL-backed implementation of
// [ResourceRepository] for a single record type, driven by an [entitySpec].
//
// Every query except the INSERT filters on user_id, so records belonging to
// other users are indistinguishable from missing ones.
type crudRepository[T any] struct {
	logger *logger.Logger
	db     *DB
	spec   entitySpec[T]
}

func newCrudRepository[T any](db *DB, spec entitySpec[T], logger *logger.Logger) *crudRepository[T] {
	logger.Debug().Str("table", spec.table).Msg("creating record repository")
	return &crudRepository[T]{
		db:     db,
		spec:   spec,
		logger: logger,
	}
}

// Create persists a new record and returns it with the server-assigned id.
// The record's UserID must already be set by the caller; the service layer
// forces it to the authenticated user before calling.
func (r *crudRepository[T]) Create(ctx context.Context, record T) (T, error) {
	log := logger.FromContext(ctx)

	var created T
	query, args, err := psql.
		Insert(r.spec.table).
		Columns(r.spec.insertCols...).
		Values(r.spec.insertVals(&record)...).
		Suffix("RETURNING " + strings.Join(r.spec.columns, ", ")).
		ToSql()
	if err != nil {
		return created, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return row.Scan(r.spec.scanDest(&created)...)
	})
	if err != nil {
		log.Err(err).Str("func", "*crudRepository.Create").Str("table", r.spec.table).Msg("error: creating record")
		return created, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindByID retrieves the record with the given id belonging to ownerID.
// A record owned by another user yields [ErrRecordNotFound].
func (r *crudRepository[T]) FindByID(ctx context.Context, ownerID, id int64) (T, error) {
	log := logger.FromContext(ctx)

	var found T
	query, args, err := psql.
		Select(r.spec.columns...).
		From(r.spec.table).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return found, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return row.Scan(r.spec.scanDest(&found)...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return found, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*crudRepository.FindByID").Str("table", r.spec.table).Msg("error: finding record")
		return found, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindMany returns the owner's records ordered by id. A limit of zero means
// no limit. An empty result set is not an error.
func (r *crudRepository[T]) FindMany(ctx context.Context, ownerID int64, limit uint64) ([]T, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(r.spec.columns...).
		From(r.spec.table).
		Where(squirrel.Eq{"user_id": ownerID}).
		OrderBy("id")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []T
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*crudRepository.FindMany").Str("table", r.spec.table).Msg("error: querying records")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer func() { _ = rows.Close() }()

		records = records[:0]
		for rows.Next() {
			var record T
			if err := rows.Scan(r.spec.scanDest(&record)...); err != nil {
				log.Err(err).Str("func", "*crudRepository.FindMany").Str("table", r.spec.table).Msg("error: scanning record row")
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			records = append(records, record)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Update overwrites the value columns of the owner's record with the given id
// and returns the stored representation. The id and user_id columns are never
// part of the SET clause. A missing or foreign record yields
// [ErrRecordNotFound].
func (r *crudRepository[T]) Update(ctx context.Context, ownerID, id int64, record T) (T, error) {
	log := logger.FromContext(ctx)

	var updated T
	builder := psql.Update(r.spec.table)
	values := r.spec.updateVals(&record)
	for i, column := range r.spec.updateCols {
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		Suffix("RETURNING " + strings.Join(r.spec.columns, ", ")).
		ToSql()
	if err != nil {
		return updated, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return row.Scan(r.spec.scanDest(&updated)...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return updated, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*crudRepository.Update").Str("table", r.spec.table).Msg("error: updating record")
		return updated, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes the owner's record with the given id and returns the number
// of deleted rows. A missing or foreign record yields [ErrRecordNotFound].
func (r *crudRepository[T]) Delete(ctx context.Context, ownerID, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Delete(r.spec.table).
		Where(squirrel.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*crudRepository.Delete").Str("table", r.spec.table).Msg("error: deleting record")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return 0, ErrRecordNotFound
	}

	return affected, nil
}
