package coerce

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a step fell back. They are never returned
// to callers; they travel on failure signals so listeners can use errors.Is.
var (
	// ErrParse indicates text could not be parsed or decoded.
	ErrParse = errors.New("parse failed")

	// ErrTypeMismatch indicates decoding succeeded but produced the wrong shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrCallback indicates a Map or TryMap callback panicked or returned an error.
	ErrCallback = errors.New("callback failed")

	// ErrRule indicates a validation gate rejected the value.
	ErrRule = errors.New("rule failed")
)

// CoercionError wraps a sentinel error with the step that produced it.
type CoercionError struct {
	Op    string // Step name, e.g. "to_array"
	Err   error  // Underlying sentinel error (ErrParse, ErrCallback, etc.)
	Cause error  // Original error, if any
}

func (e *CoercionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func newCoercionError(sentinel error, op string, cause error) error {
	return &CoercionError{
		Op:    op,
		Err:   sentinel,
		Cause: cause,
	}
}

// guard runs fn, converting a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic: %v", r)
		}
	}()
	return fn()
}
