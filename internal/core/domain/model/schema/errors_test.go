package schema_test

import (
	"errors"
	"testing"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/schema"
	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError(t *testing.T) {
	t.Run("should prefix message with the field path", func(t *testing.T) {
		fe := &schema.FieldError{Path: "restaurant.rating", Err: errs.NewValueIsRequiredError("rating")}

		assert.Equal(t, "restaurant.rating: value is required: rating", fe.Error())
	})

	t.Run("should render bare message when path is empty", func(t *testing.T) {
		fe := &schema.FieldError{Err: errors.New("boom")}

		assert.Equal(t, "boom", fe.Error())
	})

	t.Run("should unwrap to the underlying failure", func(t *testing.T) {
		fe := &schema.FieldError{Path: "pincode", Err: errs.NewValueIsOutOfRangeError("pincode", "123", 6, 6)}

		assert.ErrorIs(t, fe, errs.ErrValueIsOutOfRange)
	})
}

func TestErrors(t *testing.T) {
	t.Run("should be nil error while empty", func(t *testing.T) {
		var report schema.Errors

		assert.NoError(t, report.Err())
	})

	t.Run("should join entries with semicolons", func(t *testing.T) {
		var report schema.Errors
		report.Add("orderId", errs.NewValueIsRequiredError("orderId"))
		report.Add("status", errs.NewValueIsRequiredError("status"))

		assert.Equal(t,
			"orderId: value is required: orderId; status: value is required: status",
			report.Err().Error())
	})

	t.Run("should keep every entry addressable via errors.Is", func(t *testing.T) {
		var report schema.Errors
		report.Add("orderId", errs.NewValueIsRequiredError("orderId"))
		report.Add("rating", errs.NewValueIsOutOfRangeError("rating", 5.5, 0, 5))

		err := report.Err()

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("Check should record only non-nil failures", func(t *testing.T) {
		var report schema.Errors
		report.Check("quantity", nil)
		report.Check("price", errs.NewValueIsOutOfRangeError("price", -1, 0, nil))

		require.Error(t, report.Err())
		assert.Len(t, report, 1)
		assert.Equal(t, "price", report[0].Path)
	})

	t.Run("Nest should re-root nested report paths", func(t *testing.T) {
		var inner schema.Errors
		inner.Add("rating", errs.NewValueIsOutOfRangeError("rating", 5.5, 0, 5))
		inner.Add("name", errs.NewValueIsRequiredError("name"))

		var outer schema.Errors
		outer.Nest("restaurant", inner.Err())

		require.Len(t, outer, 2)
		assert.Equal(t, "restaurant.rating", outer[0].Path)
		assert.Equal(t, "restaurant.name", outer[1].Path)
	})

	t.Run("Nest should record plain errors at the path itself", func(t *testing.T) {
		var outer schema.Errors
		outer.Nest("payment", errors.New("broken"))

		require.Len(t, outer, 1)
		assert.Equal(t, "payment", outer[0].Path)
	})

	t.Run("Merge should keep nested report paths as they are", func(t *testing.T) {
		var inner schema.Errors
		inner.Add("orderId", errs.NewValueIsRequiredError("orderId"))
		inner.Add("customerId", errs.NewValueIsRequiredError("customerId"))

		var outer schema.Errors
		outer.Merge(inner.Err())

		require.Len(t, outer, 2)
		assert.Equal(t, "orderId", outer[0].Path)
		assert.Equal(t, "customerId", outer[1].Path)
	})

	t.Run("Merge and Nest should ignore nil", func(t *testing.T) {
		var report schema.Errors
		report.Merge(nil)
		report.Nest("items[0]", nil)

		assert.NoError(t, report.Err())
	})
}
