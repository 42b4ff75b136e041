package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrValidationFailed indicates that validation checks have failed.
	// Every ValidationError matches it through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTypeValidation indicates that a relationship reference is not a
	// constructed entity of the expected kind (nil or zero value).
	ErrTypeValidation = fmt.Errorf("%w: wrong entity type", ErrValidationFailed)

	// ErrRangeValidation indicates that a string attribute violates its
	// length or emptiness constraint.
	ErrRangeValidation = fmt.Errorf("%w: value out of range", ErrValidationFailed)

	// ErrImmutableWrite indicates a write to an attribute that cannot change
	// after construction.
	ErrImmutableWrite = fmt.Errorf("%w: immutable attribute", ErrValidationFailed)
)

// ValidationKind classifies a ValidationError.
type ValidationKind string

const (
	KindType      ValidationKind = "type"
	KindRange     ValidationKind = "range"
	KindImmutable ValidationKind = "immutable"
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap maps the error onto the sentinel of its kind so callers can use
// errors.Is(err, ErrRangeValidation) and friends.
func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case KindType:
		return ErrTypeValidation
	case KindRange:
		return ErrRangeValidation
	case KindImmutable:
		return ErrImmutableWrite
	default:
		return ErrValidationFailed
	}
}

// KindOf returns the ValidationKind carried by err, or "" when err is not a
// ValidationError.
func KindOf(err error) ValidationKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}
