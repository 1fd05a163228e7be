// Package schema implements the shared validation engine every record type
// builds its construction entry point on. A Decoder wraps one raw mapping
// (unvalidated field name to value structure) and offers typed getters that
// coerce, validate and default field values while accumulating every failure
// into a single aggregate report. Decoding never stops at the first invalid
// field: a construction attempt either yields a fully valid record or the
// complete list of everything wrong with the input.
package schema

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
)

// Decoder reads typed, validated field values out of a single raw mapping.
// Getters record failures instead of returning them so that independent
// fields are all checked; Err surfaces the accumulated report once every
// declared field has been read.
//
// An explicit nil value is treated the same as an absent key: required
// getters fail, optional getters substitute their default.
type Decoder struct {
	raw    map[string]any
	report Errors
}

// NewDecoder creates a Decoder over raw. A nil mapping is valid input and
// behaves as an empty one.
func NewDecoder(raw map[string]any) *Decoder {
	return &Decoder{raw: raw}
}

// Err returns the aggregate validation report, or nil when every getter so
// far succeeded.
func (d *Decoder) Err() error {
	return d.report.Err()
}

// Nest records the outcome of constructing a nested record or sequence
// element under path, re-rooting its field paths (see Errors.Nest).
func (d *Decoder) Nest(path string, err error) {
	d.report.Nest(path, err)
}

// Merge records the outcome of constructing a record whose fields live flat
// inside this decoder's raw mapping, keeping its field paths as they are
// (see Errors.Merge).
func (d *Decoder) Merge(err error) {
	d.report.Merge(err)
}

func (d *Decoder) lookup(name string) (any, bool) {
	if d.raw == nil {
		return nil, false
	}
	v, ok := d.raw[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (d *Decoder) fail(name string, err error) {
	d.report.Add(name, err)
}

// String reads a required string field and applies rules in order.
func (d *Decoder) String(name string, rules ...StringRule) string {
	v, ok := d.lookup(name)
	if !ok {
		d.fail(name, errs.NewValueIsRequiredError(name))
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(name, errs.NewTypeMismatchError(name, "string", v))
		return ""
	}
	for _, rule := range rules {
		if err := rule(name, s); err != nil {
			d.fail(name, err)
			break
		}
	}
	return s
}

// OptionalString reads an optional string field. Absence is not a failure:
// the explicit unset marker nil is returned instead.
func (d *Decoder) OptionalString(name string, rules ...StringRule) *string {
	v, ok := d.lookup(name)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		d.fail(name, errs.NewTypeMismatchError(name, "string", v))
		return nil
	}
	for _, rule := range rules {
		if err := rule(name, s); err != nil {
			d.fail(name, err)
			break
		}
	}
	return &s
}

// Int reads a required integer field and applies rules in order. Raw values
// arriving as whole-valued floats or json.Number (both common after generic
// JSON decoding) are accepted; fractional values are not.
func (d *Decoder) Int(name string, rules ...IntRule) int {
	v, ok := d.lookup(name)
	if !ok {
		d.fail(name, errs.NewValueIsRequiredError(name))
		return 0
	}
	n, err := coerceInt(name, v)
	if err != nil {
		d.fail(name, err)
		return 0
	}
	for _, rule := range rules {
		if err := rule(name, n); err != nil {
			d.fail(name, err)
			break
		}
	}
	return n
}

// Float reads a required floating point field and applies rules in order.
func (d *Decoder) Float(name string, rules ...FloatRule) float64 {
	v, ok := d.lookup(name)
	if !ok {
		d.fail(name, errs.NewValueIsRequiredError(name))
		return 0
	}
	f, err := coerceFloat(name, v)
	if err != nil {
		d.fail(name, err)
		return 0
	}
	for _, rule := range rules {
		if err := rule(name, f); err != nil {
			d.fail(name, err)
			break
		}
	}
	return f
}

// Strings reads an ordered sequence of strings. An absent field defaults to
// a fresh empty sequence, never to an unset marker. Element failures are
// reported per index as name[i].
func (d *Decoder) Strings(name string, rules ...SequenceRule) []string {
	v, ok := d.lookup(name)
	if !ok {
		return []string{}
	}

	var out []string
	switch seq := v.(type) {
	case []string:
		out = make([]string, len(seq))
		copy(out, seq)
	case []any:
		out = make([]string, 0, len(seq))
		valid := true
		for i, elem := range seq {
			s, isString := elem.(string)
			if !isString {
				elemName := fmt.Sprintf("%s[%d]", name, i)
				d.fail(elemName, errs.NewTypeMismatchError(elemName, "string", elem))
				valid = false
				continue
			}
			out = append(out, s)
		}
		if !valid {
			return []string{}
		}
	default:
		d.fail(name, errs.NewTypeMismatchError(name, "sequence of strings", v))
		return []string{}
	}

	for _, rule := range rules {
		if err := rule(name, len(out)); err != nil {
			d.fail(name, err)
			break
		}
	}
	return out
}

// Timestamp reads a required instant-in-time field from its wire
// representation.
func (d *Decoder) Timestamp(name string) kernel.Timestamp {
	v, ok := d.lookup(name)
	if !ok {
		d.fail(name, errs.NewValueIsRequiredError(name))
		return kernel.Timestamp{}
	}
	s, ok := v.(string)
	if !ok {
		d.fail(name, errs.NewTypeMismatchError(name, "timestamp string", v))
		return kernel.Timestamp{}
	}
	ts, err := kernel.ParseTimestamp(s)
	if err != nil {
		d.fail(name, errs.NewInvalidTemporalErrorWithCause(name, s, err))
		return kernel.Timestamp{}
	}
	return ts
}

// Date reads a required calendar-date field from its wire representation.
func (d *Decoder) Date(name string) kernel.Date {
	v, ok := d.lookup(name)
	if !ok {
		d.fail(name, errs.NewValueIsRequiredError(name))
		return kernel.Date{}
	}
	s, ok := v.(string)
	if !ok {
		d.fail(name, errs.NewTypeMismatchError(name, "date string", v))
		return kernel.Date{}
	}
	date, err := kernel.ParseDate(s)
	if err != nil {
		d.fail(name, errs.NewInvalidTemporalErrorWithCause(name, s, err))
		return kernel.Date{}
	}
	return date
}

// Map reads a required nested-record field as its raw mapping. The second
// return value reports whether a mapping was obtained; when it is false a
// failure has already been recorded and the caller must skip the nested
// construction.
func (d *Decoder) Map(name string) (map[string]any, bool) {
	v, ok := d.lookup(name)
	if !ok {
		d.fail(name, errs.NewValueIsRequiredError(name))
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		d.fail(name, errs.NewTypeMismatchError(name, "object", v))
		return nil, false
	}
	return m, true
}

// Maps reads an ordered sequence of nested-record raw mappings. An absent
// field defaults to a fresh empty sequence. When any element is not a
// mapping, the mismatches are reported per index and nil is returned so the
// caller skips nested construction entirely.
func (d *Decoder) Maps(name string) []map[string]any {
	v, ok := d.lookup(name)
	if !ok {
		return []map[string]any{}
	}

	seq, ok := v.([]any)
	if !ok {
		if typed, isTyped := v.([]map[string]any); isTyped {
			out := make([]map[string]any, len(typed))
			copy(out, typed)
			return out
		}
		d.fail(name, errs.NewTypeMismatchError(name, "sequence of objects", v))
		return nil
	}

	out := make([]map[string]any, 0, len(seq))
	valid := true
	for i, elem := range seq {
		m, isMap := elem.(map[string]any)
		if !isMap {
			elemName := fmt.Sprintf("%s[%d]", name, i)
			d.fail(elemName, errs.NewTypeMismatchError(elemName, "object", elem))
			valid = false
			continue
		}
		out = append(out, m)
	}
	if !valid {
		return nil
	}
	return out
}

func coerceInt(name string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errs.NewTypeMismatchErrorWithCause(name, "integer", v,
				fmt.Errorf("%v is not a whole number", n))
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, errs.NewTypeMismatchErrorWithCause(name, "integer", v, err)
		}
		return int(i), nil
	default:
		return 0, errs.NewTypeMismatchError(name, "integer", v)
	}
}

func coerceFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, errs.NewTypeMismatchErrorWithCause(name, "number", v, err)
		}
		return f, nil
	default:
		return 0, errs.NewTypeMismatchError(name, "number", v)
	}
}
