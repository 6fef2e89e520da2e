package model

import "errors"

// ErrConstraint is the kind of every field validation failure. Use errors.Is to
// detect it and errors.As with *ConstraintError to get the field.
var ErrConstraint = errors.New("constraint violation")

// ConstraintError reports a value that does not satisfy the format rule of a
// field. Message is the fixed, human-readable rule of that field.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

func (e *ConstraintError) Unwrap() error { return ErrConstraint }
