package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error types for the recommendation pipeline

var (
	// ErrInvalidInput indicates invalid caller input
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal fault
	ErrInternal = errors.New("internal error")

	// ErrUnavailable indicates an external provider is unavailable
	ErrUnavailable = errors.New("provider unavailable")

	// ErrTimeout indicates an outbound call timed out
	ErrTimeout = errors.New("operation timeout")
)

// MissingFieldError indicates the caller omitted a required profile field.
// Raised before any network call is made.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing input: %s", e.Field)
}

// NewMissingFieldError creates a new missing field error
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// InvalidProfileError indicates the risk or horizon label is not part of the
// trained label set. It carries both valid-label lists so the caller can
// self-correct.
type InvalidProfileError struct {
	ValidRisks    []string
	ValidHorizons []string
}

// Error implements the error interface
func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf(
		"invalid risk/horizon. Use: risk: [%s], horizon: [%s]",
		strings.Join(e.ValidRisks, ", "),
		strings.Join(e.ValidHorizons, ", "),
	)
}

// InvalidAmountError indicates the investment amount is negative or not a
// finite number.
type InvalidAmountError struct {
	Value float64
}

// Error implements the error interface
func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid investment amount: %v", e.Value)
}

// UnknownLabelError indicates a label is not part of the trained label set
// for a field. It enumerates the valid labels for that field.
type UnknownLabelError struct {
	Field string
	Label string
	Valid []string
}

// Error implements the error interface
func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown %s label %q, valid labels: [%s]",
		e.Field, e.Label, strings.Join(e.Valid, ", "))
}

// InvalidCodeError indicates a category code is outside the trained range.
// This is an internal-consistency fault and should not occur in normal
// operation.
type InvalidCodeError struct {
	Field string
	Code  int
	Size  int
}

// Error implements the error interface
func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid %s category code %d (trained range 0..%d)",
		e.Field, e.Code, e.Size-1)
}

// ModelLoadError indicates a model or encoder artifact is missing or
// corrupt. Fatal at startup: the process must not serve requests.
type ModelLoadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load model artifact %s: %v", e.Path, e.Err)
}

// Unwrap returns the wrapped error
func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// PredictionError indicates classifier inference failed. Fatal for the
// current request only.
type PredictionError struct {
	Model string
	Err   error
}

// Error implements the error interface
func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed (%s): %v", e.Model, e.Err)
}

// Unwrap returns the wrapped error
func (e *PredictionError) Unwrap() error {
	return e.Err
}

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
