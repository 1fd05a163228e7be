package kernel_test

import (
	"testing"
	"time"

	"github.com/YaswanthBabuK/Swiggy-mcp-clone/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	t.Run("should round-trip through the wire representation", func(t *testing.T) {
		ts, err := kernel.ParseTimestamp("2024-01-15T12:00:00Z")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15T12:00:00Z", ts.String())

		again, err := kernel.ParseTimestamp(ts.String())
		require.NoError(t, err)
		assert.True(t, ts.Equal(again))
	})

	t.Run("should preserve fractional seconds", func(t *testing.T) {
		ts, err := kernel.ParseTimestamp("2024-01-15T12:48:15.250Z")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15T12:48:15.25Z", ts.String())
	})

	t.Run("should preserve timezone offsets", func(t *testing.T) {
		ts, err := kernel.ParseTimestamp("2024-01-15T17:30:00+05:30")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15T17:30:00+05:30", ts.String())
	})

	t.Run("should reject a bare date", func(t *testing.T) {
		_, err := kernel.ParseTimestamp("2024-01-15")

		assert.Error(t, err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.ParseTimestamp("not a time")

		assert.Error(t, err)
	})

	t.Run("should create from a time.Time", func(t *testing.T) {
		now := time.Now()

		ts, err := kernel.NewTimestamp(now)

		require.NoError(t, err)
		require.NoError(t, ts.Validate())
		assert.True(t, ts.Time().Equal(now))
	})

	t.Run("should reject the zero instant", func(t *testing.T) {
		_, err := kernel.NewTimestamp(time.Time{})

		assert.Error(t, err)
	})

	t.Run("should fail validation as the zero value", func(t *testing.T) {
		var ts kernel.Timestamp

		assert.True(t, ts.IsZero())
		assert.ErrorIs(t, ts.Validate(), kernel.ErrTimestampIsNotConstructed)
	})
}

func TestDate(t *testing.T) {
	t.Run("should round-trip through the wire representation", func(t *testing.T) {
		date, err := kernel.ParseDate("2022-03-10")

		require.NoError(t, err)
		assert.Equal(t, "2022-03-10", date.String())
		assert.Equal(t, 2022, date.Year())
		assert.Equal(t, time.March, date.Month())
		assert.Equal(t, 10, date.Day())
	})

	t.Run("should reject a timestamp", func(t *testing.T) {
		_, err := kernel.ParseDate("2022-03-10T00:00:00Z")

		assert.Error(t, err)
	})

	t.Run("should create from calendar components", func(t *testing.T) {
		date, err := kernel.NewDate(2025, time.December, 31)

		require.NoError(t, err)
		require.NoError(t, date.Validate())
		assert.Equal(t, "2025-12-31", date.String())
	})

	t.Run("should reject impossible calendar dates", func(t *testing.T) {
		_, err := kernel.NewDate(2024, time.February, 30)

		assert.Error(t, err)
	})

	t.Run("should accept February 29 in a leap year", func(t *testing.T) {
		date, err := kernel.NewDate(2024, time.February, 29)

		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", date.String())
	})

	t.Run("should fail validation as the zero value", func(t *testing.T) {
		var date kernel.Date

		assert.True(t, date.IsZero())
		assert.ErrorIs(t, date.Validate(), kernel.ErrDateIsNotConstructed)
	})

	t.Run("should compare by calendar date", func(t *testing.T) {
		a, err := kernel.ParseDate("2022-03-10")
		require.NoError(t, err)
		b, err := kernel.NewDate(2022, time.March, 10)
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
	})
}
