package booking_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joy095/rental/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start, end time.Time) DateInterval {
	t.Helper()
	i, err := NewDateInterval(start, end)
	require.NoError(t, err)
	return i
}

func TestNewDateInterval(t *testing.T) {
	t.Run("RejectsInvertedRange", func(t *testing.T) {
		_, err := NewDateInterval(date(2025, 3, 13), date(2025, 3, 10))
		assert.ErrorIs(t, err, utils.ErrInvalidInterval)
	})

	t.Run("TruncatesToCalendarDate", func(t *testing.T) {
		// 23:00 day one to 01:00 day two is a one-day rental
		start := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)

		i, err := NewDateInterval(start, end)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 3, 10), i.Start)
		assert.Equal(t, date(2025, 3, 11), i.End)
		assert.Equal(t, 1, i.Days())
	})

	t.Run("AcceptsSameDay", func(t *testing.T) {
		i, err := NewDateInterval(date(2025, 3, 10), date(2025, 3, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, i.Days())
	})
}

func TestOverlaps(t *testing.T) {
	d1 := date(2025, 4, 1)
	d2 := date(2025, 4, 5)
	d3 := date(2025, 4, 8)
	d4 := date(2025, 4, 12)

	t.Run("SingleIdenticalDayOverlapsItself", func(t *testing.T) {
		a := mustInterval(t, d1, d1)
		assert.True(t, a.Overlaps(a))
	})

	t.Run("TouchingBoundaryCountsAsOverlap", func(t *testing.T) {
		a := mustInterval(t, d1, d2)
		b := mustInterval(t, d2, d3)
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("StrictlyDisjointDoesNotOverlap", func(t *testing.T) {
		a := mustInterval(t, d1, d2)
		b := mustInterval(t, d3, d4)
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("ContainedIntervalOverlaps", func(t *testing.T) {
		outer := mustInterval(t, d1, d4)
		inner := mustInterval(t, d2, d3)
		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})

	t.Run("ConfirmedScenario", func(t *testing.T) {
		// existing confirmed booking Apr 1 - Apr 5
		existing := mustInterval(t, date(2025, 4, 1), date(2025, 4, 5))

		conflicting := mustInterval(t, date(2025, 4, 4), date(2025, 4, 8))
		assert.True(t, existing.Overlaps(conflicting))

		free := mustInterval(t, date(2025, 4, 6), date(2025, 4, 8))
		assert.False(t, existing.Overlaps(free))
	})
}

func TestPriceCents(t *testing.T) {
	t.Run("MultiDayBooking", func(t *testing.T) {
		// 150.00/day for Mar 10 - Mar 13 is 3 billable days
		i := mustInterval(t, date(2025, 3, 10), date(2025, 3, 13))

		days, amount := i.PriceCents(15000)
		assert.Equal(t, 3, days)
		assert.Equal(t, int64(45000), amount)
	})

	t.Run("SameDayBookingChargesOneDay", func(t *testing.T) {
		i := mustInterval(t, date(2025, 3, 10), date(2025, 3, 10))

		days, amount := i.PriceCents(15000)
		assert.Equal(t, 1, days)
		assert.Equal(t, int64(15000), amount)
	})

	t.Run("DaysNeverBelowOne", func(t *testing.T) {
		for offset := 0; offset < 30; offset++ {
			i := mustInterval(t, date(2025, 5, 1), date(2025, 5, 1+offset))
			assert.GreaterOrEqual(t, i.Days(), 1)
		}
	})
}
