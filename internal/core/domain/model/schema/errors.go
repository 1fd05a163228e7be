package schema

import (
	"errors"
	"strings"
)

// FieldError is a single field-level validation failure. Path locates the
// failed field inside the raw mapping that was being decoded, using dotted
// segments for nested records and bracketed indices for sequence elements
// ("pincode", "restaurant.rating", "items[0].price").
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Errors is the aggregate validation report for one construction attempt.
// Every invalid field contributes an entry; construction never stops at the
// first failing field. The report unwraps to its entries so errors.Is keeps
// matching the errs sentinels through it.
type Errors []*FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() []error {
	unwrapped := make([]error, 0, len(e))
	for _, fe := range e {
		unwrapped = append(unwrapped, fe)
	}
	return unwrapped
}

// Add records a failure for the field at path.
func (e *Errors) Add(path string, err error) {
	*e = append(*e, &FieldError{Path: path, Err: err})
}

// Check records err at path when it is non-nil. It is the typed-constructor
// counterpart of the Decoder getters: rule failures are collected instead of
// aborting on the first one.
func (e *Errors) Check(path string, err error) {
	if err == nil {
		return
	}
	e.Add(path, err)
}

// Merge appends another aggregate report's entries without re-rooting their
// paths. It supports records whose fields live flat inside an enclosing
// record's raw mapping, where the inner report's paths already are the outer
// record's paths.
func (e *Errors) Merge(err error) {
	if err == nil {
		return
	}

	var nested Errors
	if errors.As(err, &nested) {
		*e = append(*e, nested...)
		return
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		*e = append(*e, fe)
		return
	}

	e.Add("", err)
}

// Nest records the outcome of validating a nested record or sequence element
// under path. When err is itself an aggregate report, each entry is re-rooted
// as "path.childPath" so the flattened report carries full field paths; any
// other error is recorded at path as-is. A nil err records nothing.
func (e *Errors) Nest(path string, err error) {
	if err == nil {
		return
	}

	var nested Errors
	if errors.As(err, &nested) {
		for _, fe := range nested {
			e.Add(path+"."+fe.Path, fe.Err)
		}
		return
	}

	e.Add(path, err)
}

// Err returns the report as an error, or nil when no failure was recorded.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
