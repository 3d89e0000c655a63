package scoring

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMonth = errors.New("invalid month")

// Month identifies one calendar month, independent of day-of-week context.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth accepts the "2006-01" form.
func ParseMonth(raw string) (Month, error) {
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, raw)
	}
	return Month{Year: parsed.Year(), Month: parsed.Month()}, nil
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Validate() error {
	if m.Year < 1 || m.Month < time.January || m.Month > time.December {
		return fmt.Errorf("%w: year=%d month=%d", ErrInvalidMonth, m.Year, int(m.Month))
	}
	return nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Days returns the number of calendar days in the month (28-31).
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns midnight UTC of the given day of the month.
func (m Month) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether the given day of the month falls on a
// Saturday or Sunday.
func (m Month) IsWeekend(day int) bool {
	switch m.Date(day).Weekday() {
	case time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}
