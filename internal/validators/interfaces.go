// Package validators implements per-entity field and cross-field validation
// rules that run before any write reaches the storage layer. Validators are
// pure: they never touch storage, and they report every violated rule of a
// record as a [FieldErrors] list rather than stopping at the first failure.
package validators

import "context"

// Validator validates domain records before persistence.
//
// Validate returns nil when obj satisfies every rule for its type,
// a [FieldErrors] value listing all violated rules, or
// [ErrUnsupportedType] when obj is not a known record type.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
