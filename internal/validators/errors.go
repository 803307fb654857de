package validators

import (
	"errors"
	"strings"
)

// ErrUnsupportedType is returned by Validate when the given object is not a
// record type the validator knows how to check.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldError is a single violated validation rule, attributed to the JSON
// field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the complete list of rules a record violated. It implements
// the error interface so validation results travel through ordinary error
// returns; handlers unwrap it with errors.As to build a 400 response with
// field:message pairs.
type FieldErrors []FieldError

// Error implements the error interface by joining every violation into a
// single "field: message" summary line.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range fe {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Fields returns the violations as a field→message map, the shape used in
// validation error responses.
func (fe FieldErrors) Fields() map[string]string {
	fields := make(map[string]string, len(fe))
	for _, f := range fe {
		fields[f.Field] = f.Message
	}
	return fields
}

// add appends a violation and returns the extended list.
func (fe FieldErrors) add(field, message string) FieldErrors {
	return append(fe, FieldError{Field: field, Message: message})
}

// orNil converts an empty list to a nil error so callers can return the
// result directly.
func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
