// Package errs defines the sentinel errors shared across thermcal packages.
//
// All errors are terminal for the computation that raised them: they signal
// deterministic structural or numerical faults, never transient conditions,
// so callers should surface them rather than retry. Wrapped errors preserve
// the sentinel so callers can match with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates a sample sequence with zero samples.
	ErrEmptyInput = errors.New("empty sample input")

	// ErrMissingField indicates a record lacking a required field.
	ErrMissingField = errors.New("missing required field")

	// ErrUnderdeterminedModel indicates fewer samples than model parameters.
	ErrUnderdeterminedModel = errors.New("not enough samples to determine model")

	// ErrSingularDesignMatrix indicates a rank-deficient design matrix,
	// e.g. perfectly collinear covariates.
	ErrSingularDesignMatrix = errors.New("singular design matrix")

	// ErrDegenerateRegression indicates a regression whose slope is
	// undefined, e.g. a constant covariate.
	ErrDegenerateRegression = errors.New("degenerate regression input")

	// ErrUnknownColumn indicates a log file whose header lacks a required column.
	ErrUnknownColumn = errors.New("unknown column")
)

// MissingField wraps ErrMissingField with the field name and the index of the
// offending record.
func MissingField(field string, index int) error {
	return fmt.Errorf("record %d: %w: %s", index, ErrMissingField, field)
}

// Underdetermined wraps ErrUnderdeterminedModel with the observed sample
// count and the number of model parameters.
func Underdetermined(samples, params int) error {
	return fmt.Errorf("%w: %d samples for %d parameters", ErrUnderdeterminedModel, samples, params)
}
