package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotApplicable reports a write the store cannot apply to the addressed
	// instance: a wrong-variant field, or a field the store does not support.
	// The converter skips these writes.
	ErrNotApplicable = errors.New("metadata: field not applicable")
	// ErrInvalidIndex reports a negative, out-of-bounds or wrong-arity index tuple.
	ErrInvalidIndex = errors.New("metadata: invalid index")
	// ErrValueType reports a value whose kind does not match the field.
	ErrValueType = errors.New("metadata: value type mismatch")
	// ErrValueRange reports a bounded numeric value outside its domain.
	ErrValueRange = errors.New("metadata: value out of range")
	// ErrUnsupportedRoot reports a SetRoot argument the store cannot adopt.
	ErrUnsupportedRoot = errors.New("metadata: unsupported root")
)

// FieldError attaches the addressed field and index tuple to a store error.
type FieldError struct {
	Field string
	Index []int
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s%v: %v", e.Field, e.Index, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// IsNotApplicable reports whether err marks a skippable write.
func IsNotApplicable(err error) bool {
	return errors.Is(err, ErrNotApplicable)
}
