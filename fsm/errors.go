package fsm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Load when the input path does not exist.
	ErrNotFound = errors.New("fsm definition not found")

	// ErrParse is returned by Load when the input is not valid JSON.
	ErrParse = errors.New("fsm definition is not valid JSON")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("fsm definition failed validation")

	// ErrWrite is returned when an output file cannot be written.
	ErrWrite = errors.New("cannot write output file")
)

// ValidationError carries the problems reported by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d error(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
