package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_String(t *testing.T) {
	t.Run("should read a present string", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"name": "Masala Dosa"})

		assert.Equal(t, "Masala Dosa", d.String("name"))
		assert.NoError(t, d.Err())
	})

	t.Run("should fail when the field is absent", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{})

		d.String("name")

		assert.ErrorIs(t, d.Err(), errs.ErrValueIsRequired)
	})

	t.Run("should treat explicit nil as absent", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"name": nil})

		d.String("name")

		assert.ErrorIs(t, d.Err(), errs.ErrValueIsRequired)
	})

	t.Run("should fail on a non-string value", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"name": 42})

		d.String("name")

		assert.ErrorIs(t, d.Err(), errs.ErrTypeMismatch)
	})

	t.Run("should report only the first failing rule", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"pincode": ""})

		d.String("pincode", schema.NonEmptyString(), schema.ExactLength(6))

		var report schema.Errors
		require.True(t, errors.As(d.Err(), &report))
		assert.Len(t, report, 1)
	})
}

func TestDecoder_OptionalString(t *testing.T) {
	t.Run("should return unset marker for absent field", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{})

		assert.Nil(t, d.OptionalString("cuisine"))
		assert.NoError(t, d.Err())
	})

	t.Run("should return unset marker for explicit nil", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"cuisine": nil})

		assert.Nil(t, d.OptionalString("cuisine"))
		assert.NoError(t, d.Err())
	})

	t.Run("should read a present string", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"cuisine": "South Indian"})

		got := d.OptionalString("cuisine")

		require.NotNil(t, got)
		assert.Equal(t, "South Indian", *got)
	})

	t.Run("should still fail on a non-string value", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"cuisine": 1})

		d.OptionalString("cuisine")

		assert.ErrorIs(t, d.Err(), errs.ErrTypeMismatch)
	})
}

func TestDecoder_Int(t *testing.T) {
	t.Run("should read a native int", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"quantity": 2})

		assert.Equal(t, 2, d.Int("quantity"))
		assert.NoError(t, d.Err())
	})

	t.Run("should accept a whole-valued float", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"quantity": 2.0})

		assert.Equal(t, 2, d.Int("quantity"))
		assert.NoError(t, d.Err())
	})

	t.Run("should accept a json.Number", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"quantity": json.Number("3")})

		assert.Equal(t, 3, d.Int("quantity"))
		assert.NoError(t, d.Err())
	})

	t.Run("should reject a fractional float", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"quantity": 2.5})

		d.Int("quantity")

		assert.ErrorIs(t, d.Err(), errs.ErrTypeMismatch)
	})

	t.Run("should reject a string", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"quantity": "2"})

		d.Int("quantity")

		assert.ErrorIs(t, d.Err(), errs.ErrTypeMismatch)
	})
}

func TestDecoder_Float(t *testing.T) {
	t.Run("should read a float", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"rating": 4.3})

		assert.Equal(t, 4.3, d.Float("rating"))
		assert.NoError(t, d.Err())
	})

	t.Run("should accept an int", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"rating": 4})

		assert.Equal(t, 4.0, d.Float("rating"))
		assert.NoError(t, d.Err())
	})

	t.Run("should apply rules after coercion", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"rating": 6.2})

		d.Float("rating", schema.FloatRange(0, 5))

		assert.ErrorIs(t, d.Err(), errs.ErrValueIsOutOfRange)
	})
}

func TestDecoder_Strings(t *testing.T) {
	t.Run("should default to a fresh empty sequence when absent", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{})

		got := d.Strings("customizations")

		require.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, d.Err())
	})

	t.Run("should read a sequence of any-typed strings", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"customizations": []any{"extra spicy", "no onion"}})

		assert.Equal(t, []string{"extra spicy", "no onion"}, d.Strings("customizations"))
		assert.NoError(t, d.Err())
	})

	t.Run("should read an already typed sequence", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"customizations": []string{"extra spicy"}})

		assert.Equal(t, []string{"extra spicy"}, d.Strings("customizations"))
		assert.NoError(t, d.Err())
	})

	t.Run("should report element mismatches per index", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"customizations": []any{"ok", 42}})

		d.Strings("customizations")

		require.Error(t, d.Err())
		assert.Contains(t, d.Err().Error(), "customizations[1]")

		var mismatch *errs.TypeMismatchError
		require.True(t, errors.As(d.Err(), &mismatch))
		assert.Equal(t, "customizations[1]", mismatch.ParamName)
	})
}

func TestDecoder_Temporal(t *testing.T) {
	t.Run("should read a timestamp from its wire form", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"orderPlaced": "2024-01-15T12:00:00Z"})

		ts := d.Timestamp("orderPlaced")

		require.NoError(t, d.Err())
		assert.Equal(t, "2024-01-15T12:00:00Z", ts.String())
	})

	t.Run("should fail on an unparsable timestamp", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"orderPlaced": "yesterday"})

		d.Timestamp("orderPlaced")

		assert.ErrorIs(t, d.Err(), errs.ErrInvalidTemporal)
	})

	t.Run("should read a date from its wire form", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"memberSince": "2022-03-10"})

		date := d.Date("memberSince")

		require.NoError(t, d.Err())
		assert.Equal(t, "2022-03-10", date.String())
	})

	t.Run("should reject a timestamp where a date is declared", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"memberSince": "2022-03-10T00:00:00Z"})

		d.Date("memberSince")

		assert.ErrorIs(t, d.Err(), errs.ErrInvalidTemporal)
	})

	t.Run("should reject a date where a timestamp is declared", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"orderPlaced": "2024-01-15"})

		d.Timestamp("orderPlaced")

		assert.ErrorIs(t, d.Err(), errs.ErrInvalidTemporal)
	})
}

func TestDecoder_Map(t *testing.T) {
	t.Run("should read a nested mapping", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"pricing": map[string]any{"gst": 26.65}})

		m, ok := d.Map("pricing")

		require.True(t, ok)
		assert.Equal(t, 26.65, m["gst"])
	})

	t.Run("should fail when absent", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{})

		_, ok := d.Map("pricing")

		assert.False(t, ok)
		assert.ErrorIs(t, d.Err(), errs.ErrValueIsRequired)
	})

	t.Run("should fail on a non-mapping value", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"pricing": "cheap"})

		_, ok := d.Map("pricing")

		assert.False(t, ok)
		assert.ErrorIs(t, d.Err(), errs.ErrTypeMismatch)
	})
}

func TestDecoder_Maps(t *testing.T) {
	t.Run("should default to a fresh empty sequence when absent", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{})

		got := d.Maps("items")

		require.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, d.Err())
	})

	t.Run("should read a sequence of mappings", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"items": []any{map[string]any{"name": "dosa"}}})

		got := d.Maps("items")

		require.Len(t, got, 1)
		assert.Equal(t, "dosa", got[0]["name"])
	})

	t.Run("should report element mismatches per index", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{"items": []any{map[string]any{}, "oops"}})

		got := d.Maps("items")

		assert.Nil(t, got)
		require.Error(t, d.Err())
		assert.Contains(t, d.Err().Error(), "items[1]")

		var mismatch *errs.TypeMismatchError
		require.True(t, errors.As(d.Err(), &mismatch))
		assert.Equal(t, "items[1]", mismatch.ParamName)
	})
}

func TestDecoder_CollectsEveryFailure(t *testing.T) {
	t.Run("should report all invalid fields, not just the first", func(t *testing.T) {
		d := schema.NewDecoder(map[string]any{
			"quantity": 0,
			"price":    -1.0,
		})

		d.String("name")
		d.Int("quantity", schema.IntMin(1))
		d.Float("price", schema.FloatMin(0))

		var report schema.Errors
		require.True(t, errors.As(d.Err(), &report))
		require.Len(t, report, 3)
		assert.Equal(t, "name", report[0].Path)
		assert.Equal(t, "quantity", report[1].Path)
		assert.Equal(t, "price", report[2].Path)
	})

	t.Run("should decode a nil mapping as empty", func(t *testing.T) {
		d := schema.NewDecoder(nil)

		d.String("name")

		assert.ErrorIs(t, d.Err(), errs.ErrValueIsRequired)
	})
}
