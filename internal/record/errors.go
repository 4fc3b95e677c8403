package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when a lookup matches no records.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a lookup that expects at most one
	// match finds more than one.
	ErrDuplicate = errors.New("duplicate record")
)

// ValidationError reports schema violations found at the serialization
// boundary.
type ValidationError struct {
	Fields []string
	err    error
}

// NewValidationError wraps a validator error, collecting the offending
// field names when available.
func NewValidationError(err error) *ValidationError {
	ve := &ValidationError{err: err}
	var ferrs validator.ValidationErrors
	if errors.As(err, &ferrs) {
		for _, fe := range ferrs {
			ve.Fields = append(ve.Fields, fe.Field())
		}
	}
	return ve
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("invalid payload: %s", strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("invalid payload: %v", e.err)
}

func (e *ValidationError) Unwrap() error { return e.err }
