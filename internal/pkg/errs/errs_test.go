package errs_test

import (
	"errors"
	"testing"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("payload truncated")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, "customerName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: payload truncated)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestTypeMismatchError(t *testing.T) {
	t.Run("NewTypeMismatchError", func(t *testing.T) {
		err := errs.NewTypeMismatchError("quantity", "integer", "two")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "integer", err.Expected)
		assert.Equal(t, "two", err.Actual)
		require.NoError(t, err.Cause)
		assert.Equal(t, "type mismatch: quantity, expected integer, got string", err.Error())
		assert.Equal(t, errs.ErrTypeMismatch, err.Unwrap())
	})

	t.Run("NewTypeMismatchErrorWithCause", func(t *testing.T) {
		cause := errors.New("coercion failed")
		err := errs.NewTypeMismatchErrorWithCause("price", "number", true, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "type mismatch: price, expected number, got bool (cause: coercion failed)", err.Error())
		assert.Equal(t, errs.ErrTypeMismatch, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 5.5, 0, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 5.5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 5.5 is rating, min value is 0, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, nil, cause)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Nil(t, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is out of range: 0 is quantity, min value is 1, max value is <nil> (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("review", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pincode")

		assert.Equal(t, "pincode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: pincode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a whole number")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: not a whole number)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestInvalidEnumValueError(t *testing.T) {
	t.Run("NewInvalidEnumValueError", func(t *testing.T) {
		err := errs.NewInvalidEnumValueError("status", "Delivered", []string{"pending", "delivered"})

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "Delivered", err.Value)
		assert.Equal(t, []string{"pending", "delivered"}, err.Allowed)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			`invalid enum value: status is "Delivered", allowed values are [pending, delivered]`,
			err.Error())
		assert.Equal(t, errs.ErrInvalidEnumValue, err.Unwrap())
	})

	t.Run("NewInvalidEnumValueErrorWithCause", func(t *testing.T) {
		cause := errors.New("case mismatch")
		err := errs.NewInvalidEnumValueErrorWithCause("spiceLevel", "mild", []string{"Mild"}, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: case mismatch)")
		assert.Equal(t, errs.ErrInvalidEnumValue, err.Unwrap())
	})
}

func TestInvalidTemporalError(t *testing.T) {
	t.Run("NewInvalidTemporalError", func(t *testing.T) {
		err := errs.NewInvalidTemporalError("orderPlaced", "yesterday")

		assert.Equal(t, "orderPlaced", err.ParamName)
		assert.Equal(t, "yesterday", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, `invalid temporal value: orderPlaced is "yesterday"`, err.Error())
		assert.Equal(t, errs.ErrInvalidTemporal, err.Unwrap())
	})

	t.Run("NewInvalidTemporalErrorWithCause", func(t *testing.T) {
		cause := errors.New("month out of range")
		err := errs.NewInvalidTemporalErrorWithCause("validUntil", "2024-13-01", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			`invalid temporal value: validUntil is "2024-13-01" (cause: month out of range)`,
			err.Error())
		assert.Equal(t, errs.ErrInvalidTemporal, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrTypeMismatch)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrInvalidEnumValue)
		require.Error(t, errs.ErrInvalidTemporal)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "type mismatch", errs.ErrTypeMismatch.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "invalid enum value", errs.ErrInvalidEnumValue.Error())
		assert.Equal(t, "invalid temporal value", errs.ErrInvalidTemporal.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		requiredErr := errs.NewValueIsRequiredError("customerName")
		require.ErrorIs(t, requiredErr, errs.ErrValueIsRequired)

		mismatchErr := errs.NewTypeMismatchError("quantity", "integer", "two")
		require.ErrorIs(t, mismatchErr, errs.ErrTypeMismatch)

		outOfRangeErr := errs.NewValueIsOutOfRangeError("rating", 5.5, 0, 5)
		require.ErrorIs(t, outOfRangeErr, errs.ErrValueIsOutOfRange)

		invalidErr := errs.NewValueIsInvalidError("pincode")
		require.ErrorIs(t, invalidErr, errs.ErrValueIsInvalid)

		enumErr := errs.NewInvalidEnumValueError("status", "Delivered", []string{"delivered"})
		require.ErrorIs(t, enumErr, errs.ErrInvalidEnumValue)

		temporalErr := errs.NewInvalidTemporalError("orderPlaced", "yesterday")
		require.ErrorIs(t, temporalErr, errs.ErrInvalidTemporal)
	})
}
