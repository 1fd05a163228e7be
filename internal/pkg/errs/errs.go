package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired is the sentinel for required fields absent from raw input.
	ErrValueIsRequired = errors.New("value is required")

	// ErrTypeMismatch is the sentinel for raw values that cannot be coerced
	// to the declared primitive type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValueIsOutOfRange is the sentinel for values outside their allowed
	// numeric range or string length bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsInvalid is the sentinel for invalid values that do not fit a
	// more specific failure kind.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrInvalidEnumValue is the sentinel for values that are not members of
	// a closed set.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrInvalidTemporal is the sentinel for unparsable date/time strings.
	ErrInvalidTemporal = errors.New("invalid temporal value")
)

// sanitize strips newlines from error detail so that a single failure always
// renders as a single report line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ValueIsRequiredError indicates that a required field was absent from the
// raw input (the MissingField failure kind).
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// TypeMismatchError indicates that a raw value was present but could not be
// coerced to the field's declared primitive type.
type TypeMismatchError struct {
	ParamName string
	Expected  string
	Actual    any
	Cause     error
}

// NewTypeMismatchError creates a TypeMismatchError without a cause.
func NewTypeMismatchError(paramName string, expected string, actual any) *TypeMismatchError {
	return &TypeMismatchError{ParamName: paramName, Expected: expected, Actual: actual}
}

// NewTypeMismatchErrorWithCause creates a TypeMismatchError with an
// underlying cause.
func NewTypeMismatchErrorWithCause(paramName string, expected string, actual any, cause error) *TypeMismatchError {
	return &TypeMismatchError{ParamName: paramName, Expected: expected, Actual: actual, Cause: cause}
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("%s: %s, expected %s, got %T", ErrTypeMismatch, sanitize(e.ParamName), e.Expected, e.Actual)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// ValueIsOutOfRangeError indicates that a correctly typed value violated its
// range or length bounds (the ConstraintViolation failure kind). Min and Max
// carry the violated bounds; a nil bound means the side was unconstrained.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError with an
// underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value any, minValue any, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(fmt.Sprintf("%v", e.Value)), sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsInvalidError indicates an invalid value that does not fit a more
// specific failure kind.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// InvalidEnumValueError indicates that a value is not a member of a closed
// set. Allowed lists every accepted member, in declaration order.
type InvalidEnumValueError struct {
	ParamName string
	Value     string
	Allowed   []string
	Cause     error
}

// NewInvalidEnumValueError creates an InvalidEnumValueError without a cause.
func NewInvalidEnumValueError(paramName string, value string, allowed []string) *InvalidEnumValueError {
	return &InvalidEnumValueError{ParamName: paramName, Value: value, Allowed: allowed}
}

// NewInvalidEnumValueErrorWithCause creates an InvalidEnumValueError with an
// underlying cause.
func NewInvalidEnumValueErrorWithCause(paramName string, value string, allowed []string, cause error) *InvalidEnumValueError {
	return &InvalidEnumValueError{ParamName: paramName, Value: value, Allowed: allowed, Cause: cause}
}

func (e *InvalidEnumValueError) Error() string {
	msg := fmt.Sprintf("%s: %s is %q, allowed values are [%s]",
		ErrInvalidEnumValue, sanitize(e.ParamName), sanitize(e.Value), strings.Join(e.Allowed, ", "))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidEnumValueError) Unwrap() error {
	return ErrInvalidEnumValue
}

// InvalidTemporalError indicates that a date/time string could not be parsed
// into the field's temporal type.
type InvalidTemporalError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewInvalidTemporalError creates an InvalidTemporalError without a cause.
func NewInvalidTemporalError(paramName string, value string) *InvalidTemporalError {
	return &InvalidTemporalError{ParamName: paramName, Value: value}
}

// NewInvalidTemporalErrorWithCause creates an InvalidTemporalError with an
// underlying cause.
func NewInvalidTemporalErrorWithCause(paramName string, value string, cause error) *InvalidTemporalError {
	return &InvalidTemporalError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *InvalidTemporalError) Error() string {
	msg := fmt.Sprintf("%s: %s is %q", ErrInvalidTemporal, sanitize(e.ParamName), sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTemporalError) Unwrap() error {
	return ErrInvalidTemporal
}
