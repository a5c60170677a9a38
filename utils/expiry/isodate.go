package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fallbackLayouts are tried, in order, when the input is not a plain
// YYYY-MM-DD. The date is read in whatever offset the input carries.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"02/01/2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseISOLocal reads a YYYY-MM-DD string straight into a CalendarDate.
// The components are used as written, so no time zone can move the day.
// Impossible dates such as 2025-02-30 are rejected with ErrInvalidDate
// instead of rolling over into the next month.
// Other shapes go through a best-effort list of layouts.
func ParseISOLocal(text string) (CalendarDate, error) {
	s := strings.TrimSpace(text)

	if parts := strings.Split(s, "-"); len(parts) == 3 {
		year, yErr := strconv.Atoi(parts[0])
		month, mErr := strconv.Atoi(parts[1])
		day, dErr := strconv.Atoi(parts[2])
		if yErr == nil && mErr == nil && dErr == nil {
			return NewCalendarDate(year, month, day)
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return CalendarDate{}, fmt.Errorf("%w: unrecognised date %q", ErrInvalidDate, text)
}

// FormatForDisplay renders the date as DD/MM/YYYY.
func FormatForDisplay(date CalendarDate) string {
	return fmt.Sprintf("%02d/%02d/%04d", date.day, date.month, date.year)
}
