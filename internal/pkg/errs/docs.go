// Package errs provides standardized error types for the domain model's
// validation layer. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the schema engine and
// the record constructors.
//
// The package includes one error type per validation failure kind:
//   - ValueIsRequiredError: a required field is absent from the raw input
//   - TypeMismatchError: a raw value cannot be coerced to the declared type
//   - ValueIsOutOfRangeError: a value is outside its allowed range or length
//   - ValueIsInvalidError: residual invalid-value failures
//   - InvalidEnumValueError: a value is not a member of a closed set
//   - InvalidTemporalError: a date/time string cannot be parsed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach keeps error classification uniform: callers
// match failure kinds with errors.Is against the sentinels regardless of
// how deeply a failure is nested inside an aggregate validation report.
package errs
