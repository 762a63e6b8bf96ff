package report

import (
	"math"
	"time"

	"github.com/stevenmunoz/wego-sub001/internal/model"
)

const dayKeyFormat = "2006-01-02"

// dayKey returns the calendar-day bucket key for a ride date. Rides with a
// missing or zero date carry no key and are excluded from date-keyed
// aggregations.
func dayKey(t *time.Time) (string, bool) {
	if t == nil || t.IsZero() {
		return "", false
	}
	return t.Format(dayKeyFormat), true
}

// inclusiveDays counts calendar days between the range bounds, both ends
// included. A zero or inverted range yields 0. Days are taken from each
// bound's own location so they line up with dayKey's buckets.
func inclusiveDays(rng model.DateRange) int64 {
	if rng.From.IsZero() || rng.To.IsZero() {
		return 0
	}
	from := calendarDay(rng.From)
	to := calendarDay(rng.To)
	if to.Before(from) {
		return 0
	}
	return int64(to.Sub(from)/(24*time.Hour)) + 1
}

// calendarDay pins a timestamp's local calendar day onto a UTC grid so day
// arithmetic is exact.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ratio divides with a zero guard so callers never see NaN or Inf.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	value := num / den
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
