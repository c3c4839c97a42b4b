package apperr

import (
	"fmt"
	"sort"
	"strings"
)

// FieldCode is a stable numeric code of a field validation failure.
type FieldCode int

// Wire codes of field validation failures. The numbers are part of the API
// contract and must not be renumbered.
const (
	CodeMissingValue     FieldCode = 1
	CodeInvalidFormat    FieldCode = 2
	CodeInvalidReference FieldCode = 3
)

// FieldError describes a single field validation failure.
type FieldError struct {
	Code        FieldCode `json:"code"`
	Description string    `json:"description"`
}

// Missing reports a field that was not supplied.
func Missing() FieldError {
	return FieldError{Code: CodeMissingValue, Description: "missing value"}
}

// InvalidFormat reports a field whose value does not match the expected format.
func InvalidFormat(description string) FieldError {
	return FieldError{Code: CodeInvalidFormat, Description: description}
}

// InvalidReference reports a field referencing an entity that does not exist,
// or an id that is already taken.
func InvalidReference(description string) FieldError {
	return FieldError{Code: CodeInvalidReference, Description: description}
}

// FieldErrors collects validation failures keyed by field name. Validators
// check every field and accumulate, they never stop at the first failure.
type FieldErrors map[string]FieldError

// Error implements error so a field-error map can travel through error
// returns; handlers unwrap it with errors.As to build the response body.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Unwrap makes errors.Is(fe, ErrInvalid) hold for every field-error map.
func (fe FieldErrors) Unwrap() error { return ErrInvalid }

// EntityErrors binds a field-error map to the entity id it was reported for.
type EntityErrors struct {
	ID     int64
	Errors FieldErrors
}

// BatchErrors is the whole-batch validation failure: one entry per invalid
// member. A batch with any invalid member is rejected as a whole.
type BatchErrors []EntityErrors

func (be BatchErrors) Error() string {
	return fmt.Sprintf("validation failed for %d of the batch entities", len(be))
}

// Unwrap makes errors.Is(be, ErrInvalid) hold for every batch failure.
func (be BatchErrors) Unwrap() error { return ErrInvalid }
