// Package period models calendar months and billing cycles anchored on a
// fixed day of the month.
package period

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

// Month is a calendar month, rendered as YYYY-MM.
type Month struct {
	Year  int
	Month time.Month
}

func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func Parse(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	return Of(t), nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Start returns midnight of the first day of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

// Add moves n months forward (or backward when n is negative).
func (m Month) Add(n int) Month {
	return Of(m.Start(time.UTC).AddDate(0, n, 0))
}

func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}

	return m.Month < o.Month
}

// Series returns the n months ending at end, oldest first.
func Series(end Month, n int) []Month {
	if n <= 0 {
		return nil
	}

	out := make([]Month, n)
	for i := range n {
		out[i] = end.Add(i - n + 1)
	}

	return out
}

// Cycle returns the billing cycle containing t: it starts at midnight of the
// most recent anchorDay at or before t and ends one month later.
func Cycle(t time.Time, anchorDay int) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), anchorDay, 0, 0, 0, 0, t.Location())
	if t.Day() < anchorDay {
		start = start.AddDate(0, -1, 0)
	}

	return start, start.AddDate(0, 1, 0)
}

// Days returns the number of whole days between a and b, rounding to absorb
// daylight saving shifts.
func Days(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
