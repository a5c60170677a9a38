package expiry

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Accepted year window for dates read off a label.
const (
	MinYear = 2000
	MaxYear = 2100
)

// ErrInvalidDate is returned when components do not form a real calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// CalendarDate is a day on the calendar with no time-of-day and no zone.
// The zero value is not a date; construct it through NewCalendarDate or DateOf.
type CalendarDate struct {
	year  int
	month int
	day   int
}

// NewCalendarDate builds a CalendarDate, rejecting impossible combinations
// such as 31/04 or 30/02.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 || !roundTrips(year, month, day) {
		return CalendarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: int(m), day: d}
}

// IsValidDate reports whether the components name a real date inside
// [MinYear, MaxYear]. Month is 1-based.
func IsValidDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	return roundTrips(year, month, day)
}

// roundTrips builds the date with time.Date, which silently rolls
// overflowing fields into the next month, and checks nothing moved.
func roundTrips(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	return y == year && int(m) == month && d == day
}

func (c CalendarDate) Year() int  { return c.year }
func (c CalendarDate) Month() int { return c.month }
func (c CalendarDate) Day() int   { return c.day }

// IsZero reports whether c was never constructed.
func (c CalendarDate) IsZero() bool { return c.year == 0 }

// Time returns midnight UTC of the date.
func (c CalendarDate) Time() time.Time {
	return time.Date(c.year, time.Month(c.month), c.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier when n is negative).
func (c CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(c.Time().AddDate(0, 0, n))
}

// DaysUntil returns the signed number of whole days from c to other.
func (c CalendarDate) DaysUntil(other CalendarDate) int {
	diff := other.Time().Sub(c.Time())
	return int(math.Ceil(diff.Hours() / 24))
}

// String renders the date as YYYY-MM-DD.
func (c CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, c.day)
}

func (c CalendarDate) MarshalJSON() ([]byte, error) {
	if c.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + c.String() + `"`), nil
}
