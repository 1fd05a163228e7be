package schema

import (
	"math"
	"unicode/utf8"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"
)

// Rules are pure, stateless predicates over already-coerced values. Each rule
// receives the field's wire name for error reporting and returns a typed errs
// failure, or nil when the value is acceptable. The Decoder applies rules in
// declaration order and reports only the first failing rule per field.

// StringRule validates a coerced string value.
type StringRule func(paramName string, value string) error

// IntRule validates a coerced integer value.
type IntRule func(paramName string, value int) error

// FloatRule validates a coerced floating point value.
type FloatRule func(paramName string, value float64) error

// SequenceRule validates the length of a coerced sequence value.
type SequenceRule func(paramName string, length int) error

// MinLength requires at least minLen characters (code points, not bytes).
func MinLength(minLen int) StringRule {
	return func(paramName string, value string) error {
		if utf8.RuneCountInString(value) < minLen {
			return errs.NewValueIsOutOfRangeError(paramName, value, minLen, nil)
		}
		return nil
	}
}

// ExactLength requires exactly length characters.
func ExactLength(length int) StringRule {
	return func(paramName string, value string) error {
		if utf8.RuneCountInString(value) != length {
			return errs.NewValueIsOutOfRangeError(paramName, value, length, length)
		}
		return nil
	}
}

// NonEmptyString requires at least one character.
func NonEmptyString() StringRule {
	return MinLength(1)
}

// OneOf requires exact, case-sensitive membership in the allowed set.
func OneOf(allowed ...string) StringRule {
	return func(paramName string, value string) error {
		for _, member := range allowed {
			if value == member {
				return nil
			}
		}
		return errs.NewInvalidEnumValueError(paramName, value, allowed)
	}
}

// IntMin requires value >= minValue.
func IntMin(minValue int) IntRule {
	return func(paramName string, value int) error {
		if value < minValue {
			return errs.NewValueIsOutOfRangeError(paramName, value, minValue, nil)
		}
		return nil
	}
}

// IntRange requires minValue <= value <= maxValue, bounds inclusive.
func IntRange(minValue, maxValue int) IntRule {
	return func(paramName string, value int) error {
		if value < minValue || value > maxValue {
			return errs.NewValueIsOutOfRangeError(paramName, value, minValue, maxValue)
		}
		return nil
	}
}

// FloatMin requires value >= minValue. NaN never satisfies a bound and is
// rejected.
func FloatMin(minValue float64) FloatRule {
	return func(paramName string, value float64) error {
		if math.IsNaN(value) || value < minValue {
			return errs.NewValueIsOutOfRangeError(paramName, value, minValue, nil)
		}
		return nil
	}
}

// FloatRange requires minValue <= value <= maxValue, bounds inclusive. NaN
// never satisfies a bound and is rejected.
func FloatRange(minValue, maxValue float64) FloatRule {
	return func(paramName string, value float64) error {
		if math.IsNaN(value) || value < minValue || value > maxValue {
			return errs.NewValueIsOutOfRangeError(paramName, value, minValue, maxValue)
		}
		return nil
	}
}

// MinItems requires a sequence of at least minCount elements.
func MinItems(minCount int) SequenceRule {
	return func(paramName string, length int) error {
		if length < minCount {
			return errs.NewValueIsOutOfRangeError(paramName, length, minCount, nil)
		}
		return nil
	}
}
