//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, start, end time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(start, end)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 3, 10), date(2026, 3, 14))
		require.NoError(t, err)
		assert.Equal(t, date(2026, 3, 10), stay.Start())
		assert.Equal(t, date(2026, 3, 14), stay.End())
		assert.Equal(t, 4, stay.Nights())
	})

	t.Run("single night", func(t *testing.T) {
		stay, err := booking.NewStayRange(date(2026, 3, 10), date(2026, 3, 11))
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Nights())
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 3, 10), date(2026, 3, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := booking.NewStayRange(date(2026, 3, 14), date(2026, 3, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
		end := time.Date(2026, 3, 12, 9, 45, 0, 0, time.UTC)
		stay, err := booking.NewStayRange(start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 3, 10), stay.Start())
		assert.Equal(t, date(2026, 3, 12), stay.End())
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("same day with different times rejected", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
		_, err := booking.NewStayRange(start, end)
		assert.ErrorIs(t, err, booking.ErrInvalidStayRange)
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	base := func(t *testing.T) booking.StayRange {
		return mustStay(t, date(2026, 5, 10), date(2026, 5, 15))
	}

	cases := []struct {
		name    string
		start   time.Time
		end     time.Time
		overlap bool
	}{
		{"identical range", date(2026, 5, 10), date(2026, 5, 15), true},
		{"contained within", date(2026, 5, 11), date(2026, 5, 13), true},
		{"contains base", date(2026, 5, 8), date(2026, 5, 20), true},
		{"overlaps left edge", date(2026, 5, 8), date(2026, 5, 11), true},
		{"overlaps right edge", date(2026, 5, 14), date(2026, 5, 18), true},
		{"one shared night", date(2026, 5, 14), date(2026, 5, 15), true},
		{"checkout day is free for checkin", date(2026, 5, 15), date(2026, 5, 18), false},
		{"checkin day is free for checkout", date(2026, 5, 8), date(2026, 5, 10), false},
		{"entirely before", date(2026, 5, 1), date(2026, 5, 5), false},
		{"entirely after", date(2026, 5, 20), date(2026, 5, 25), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustStay(t, tc.start, tc.end)
			assert.Equal(t, tc.overlap, base(t).Overlaps(other))
			// overlap is symmetric
			assert.Equal(t, tc.overlap, other.Overlaps(base(t)))
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("nightly rate times nights", func(t *testing.T) {
		total := booking.NewMoney(8000).MulNights(4)
		assert.Equal(t, int64(32000), total.Cents())
	})

	t.Run("add", func(t *testing.T) {
		sum := booking.NewMoney(12000).Add(booking.NewMoney(500))
		assert.Equal(t, int64(12500), sum.Cents())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := booking.NewMoneyFromInt(-1)
		assert.Error(t, err)
	})

	t.Run("zero is allowed", func(t *testing.T) {
		m, err := booking.NewMoneyFromInt(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})
}
