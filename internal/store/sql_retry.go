package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	// retryAttempts is the number of additional attempts after the first
	// failed one.
	retryAttempts = 3

	retryBaseDelay = 100 * time.Millisecond
)

// withRetry runs op, repeating it with exponential backoff when the error
// classifier reports a transient failure (connection loss, deadlock,
// serialization conflict). Non-retryable errors and nil classifiers abort
// after the first attempt.
//
// op must be safe to run more than once: every repository call re-executes
// its statement and re-scans into fresh destinations.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op()
		if err == nil {
			return nil
		}

		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}
