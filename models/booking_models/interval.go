package booking_models

import (
	"time"

	"github.com/joy095/rental/utils"
)

// DateInterval is an inclusive calendar-date range. Both bounds are compared
// at day granularity: a booking ending on the day another starts still
// overlaps it.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// NewDateInterval truncates both bounds to their calendar date and rejects
// inverted ranges.
func NewDateInterval(start, end time.Time) (DateInterval, error) {
	s := truncateToDate(start)
	e := truncateToDate(end)
	if e.Before(s) {
		return DateInterval{}, utils.ErrInvalidInterval
	}
	return DateInterval{Start: s, End: e}, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the two inclusive date ranges share at least one
// day: s1 <= e2 AND e1 >= s2.
func (i DateInterval) Overlaps(other DateInterval) bool {
	return !i.Start.After(other.End) && !i.End.Before(other.Start)
}

// Days returns the billable day count: the whole-calendar-day difference
// between the bounds, floored at one so a same-day rental is charged a full
// day.
func (i DateInterval) Days() int {
	days := int(i.End.Sub(i.Start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// PriceCents derives the billable day count and the total amount in minor
// currency units. The rate is snapshotted by the caller at booking time.
func (i DateInterval) PriceCents(ratePerDayCents int64) (int, int64) {
	days := i.Days()
	return days, int64(days) * ratePerDayCents
}
