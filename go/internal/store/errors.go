package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraint matches every *ConstraintError via errors.Is.
	ErrConstraint = errors.New("constraint violation")
)

// ConstraintKind classifies a rejected write.
type ConstraintKind string

const (
	KindNotNull    ConstraintKind = "not_null"
	KindTooLong    ConstraintKind = "too_long"
	KindForeignKey ConstraintKind = "foreign_key"
	KindCheck      ConstraintKind = "check"
	KindUnique     ConstraintKind = "unique"
	KindOutOfRange ConstraintKind = "out_of_range"
)

// ConstraintError is returned when the storage layer rejects a write.
type ConstraintError struct {
	Table      string
	Column     string
	Constraint string
	Kind       ConstraintKind
	Err        error
}

func (e *ConstraintError) Error() string {
	target := e.Table
	if e.Column != "" {
		target += "." + e.Column
	}
	if e.Constraint != "" {
		return fmt.Sprintf("%s violation on %s (%s)", e.Kind, target, e.Constraint)
	}
	return fmt.Sprintf("%s violation on %s", e.Kind, target)
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraint
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
