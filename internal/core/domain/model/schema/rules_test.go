package schema_test

import (
	"errors"
	"math"
	"testing"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinLength(t *testing.T) {
	rule := schema.MinLength(5)

	t.Run("should accept string at the minimum", func(t *testing.T) {
		assert.NoError(t, rule("orderId", "ORD12"))
	})

	t.Run("should accept string above the minimum", func(t *testing.T) {
		assert.NoError(t, rule("orderId", "ORD-2024-001"))
	})

	t.Run("should reject string below the minimum", func(t *testing.T) {
		err := rule("orderId", "ORD1")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should count characters, not bytes", func(t *testing.T) {
		// five code points, more than five bytes
		assert.NoError(t, rule("customerName", "приве"))
	})
}

func TestExactLength(t *testing.T) {
	rule := schema.ExactLength(6)

	t.Run("should accept exact length", func(t *testing.T) {
		assert.NoError(t, rule("pincode", "560001"))
	})

	t.Run("should reject shorter value", func(t *testing.T) {
		err := rule("pincode", "56000")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject longer value", func(t *testing.T) {
		err := rule("pincode", "5600011")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestOneOf(t *testing.T) {
	rule := schema.OneOf("pending", "preparing", "delivered")

	t.Run("should accept member values", func(t *testing.T) {
		assert.NoError(t, rule("status", "pending"))
		assert.NoError(t, rule("status", "delivered"))
	})

	t.Run("should reject non-member value", func(t *testing.T) {
		err := rule("status", "shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidEnumValue)
	})

	t.Run("should match case-sensitively", func(t *testing.T) {
		err := rule("status", "Pending")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidEnumValue)
	})

	t.Run("should carry the allowed set in the failure", func(t *testing.T) {
		err := rule("status", "shipped")

		var enumErr *errs.InvalidEnumValueError
		require.True(t, errors.As(err, &enumErr))
		assert.Equal(t, []string{"pending", "preparing", "delivered"}, enumErr.Allowed)
	})
}

func TestIntRange(t *testing.T) {
	rule := schema.IntRange(1, 5)

	t.Run("should accept both bounds inclusively", func(t *testing.T) {
		assert.NoError(t, rule("food", 1))
		assert.NoError(t, rule("food", 5))
	})

	t.Run("should reject values outside the bounds", func(t *testing.T) {
		assert.ErrorIs(t, rule("food", 0), errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, rule("food", 6), errs.ErrValueIsOutOfRange)
	})
}

func TestIntMin(t *testing.T) {
	rule := schema.IntMin(1)

	t.Run("should accept the minimum and above", func(t *testing.T) {
		assert.NoError(t, rule("quantity", 1))
		assert.NoError(t, rule("quantity", 99))
	})

	t.Run("should reject below the minimum", func(t *testing.T) {
		assert.ErrorIs(t, rule("quantity", 0), errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, rule("quantity", -1), errs.ErrValueIsOutOfRange)
	})
}

func TestFloatRange(t *testing.T) {
	rule := schema.FloatRange(0, 5)

	t.Run("should accept both bounds inclusively", func(t *testing.T) {
		assert.NoError(t, rule("rating", 0.0))
		assert.NoError(t, rule("rating", 5.0))
	})

	t.Run("should reject values just outside the bounds", func(t *testing.T) {
		assert.ErrorIs(t, rule("rating", -0.0001), errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, rule("rating", 5.0001), errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject NaN", func(t *testing.T) {
		assert.ErrorIs(t, rule("rating", math.NaN()), errs.ErrValueIsOutOfRange)
	})
}

func TestFloatMin(t *testing.T) {
	rule := schema.FloatMin(0)

	t.Run("should accept zero and positive values", func(t *testing.T) {
		assert.NoError(t, rule("price", 0.0))
		assert.NoError(t, rule("price", 249.5))
	})

	t.Run("should reject negative values", func(t *testing.T) {
		assert.ErrorIs(t, rule("price", -0.01), errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject NaN", func(t *testing.T) {
		assert.ErrorIs(t, rule("price", math.NaN()), errs.ErrValueIsOutOfRange)
	})
}

func TestNonEmptyString(t *testing.T) {
	rule := schema.NonEmptyString()

	t.Run("should accept any non-empty string", func(t *testing.T) {
		assert.NoError(t, rule("name", "a"))
	})

	t.Run("should reject empty string", func(t *testing.T) {
		assert.ErrorIs(t, rule("name", ""), errs.ErrValueIsOutOfRange)
	})
}

func TestMinItems(t *testing.T) {
	rule := schema.MinItems(1)

	t.Run("should accept sequence at the minimum", func(t *testing.T) {
		assert.NoError(t, rule("items", 1))
	})

	t.Run("should reject empty sequence", func(t *testing.T) {
		assert.ErrorIs(t, rule("items", 0), errs.ErrValueIsOutOfRange)
	})
}
