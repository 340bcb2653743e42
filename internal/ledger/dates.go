package ledger

import (
	"math"
	"time"
)

// Round2 rounds a money amount half-up to two decimal places, half
// away from zero. The epsilon absorbs float artifacts where an exact
// half cent lands just under the boundary (1249.745*100 ->
// 124974.4999...).
func Round2(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5+1e-9) / 100
	}
	return math.Floor(v*100+0.5+1e-9) / 100
}

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns midnight UTC on the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return MonthEnd(t).Day()
}

// DaysBetween returns whole days from a to b, floored, never negative.
func DaysBetween(a, b time.Time) int {
	d := int(b.Sub(a).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
