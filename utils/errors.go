package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument marks a malformed invocation: wrong arity or an unparseable number.
	ErrArgument = errors.New("invalid argument")
	// ErrData marks a missing or unreadable dataset, or one without valid rows.
	ErrData = errors.New("invalid dataset")
	// ErrShape marks a feature vector or matrix whose length does not match the model.
	ErrShape = errors.New("shape mismatch")
	// ErrIO marks a failure to read or write persisted state.
	ErrIO = errors.New("persisted state")
)

// ShapeError reports a dimension that differs from the fixed model contract.
type ShapeError struct {
	What     string
	Expected int
	Got      int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", e.What, e.Expected, e.Got)
}

func (e ShapeError) Is(target error) bool {
	return target == ErrShape
}

// CheckLen returns a ShapeError when len(v) != expected.
func CheckLen(what string, v []float64, expected int) error {
	if len(v) != expected {
		return ShapeError{What: what, Expected: expected, Got: len(v)}
	}
	return nil
}
