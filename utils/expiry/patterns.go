package expiry

import (
	"regexp"
	"strconv"
)

// PatternKind identifies which textual shape produced a candidate.
type PatternKind int

const (
	DayMonthYear PatternKind = iota
	MonthYearOnly
	YearMonthDay
	TextualMonthYear
	ShortMonthSlashYear
	KeywordPrefixedDayMonthYear
	UseByYearMonth
)

var patternNames = [...]string{
	DayMonthYear:                "DD_MM_YYYY",
	MonthYearOnly:               "MM_YYYY",
	YearMonthDay:                "YYYY_MM_DD",
	TextualMonthYear:            "MONTH_YEAR",
	ShortMonthSlashYear:         "MM_YY",
	KeywordPrefixedDayMonthYear: "EXP_FORMAT",
	UseByYearMonth:              "USE_BY_FORMAT",
}

func (k PatternKind) String() string {
	if k < 0 || int(k) >= len(patternNames) {
		return "UNKNOWN"
	}
	return patternNames[k]
}

func (k PatternKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var monthNames = map[string]int{
	"JAN": 1, "JANUARY": 1,
	"FEB": 2, "FEBRUARY": 2,
	"MAR": 3, "MARCH": 3,
	"APR": 4, "APRIL": 4,
	"MAY": 5,
	"JUN": 6, "JUNE": 6,
	"JUL": 7, "JULY": 7,
	"AUG": 8, "AUGUST": 8,
	"SEP": 9, "SEPTEMBER": 9,
	"OCT": 10, "OCTOBER": 10,
	"NOV": 11, "NOVEMBER": 11,
	"DEC": 12, "DECEMBER": 12,
}

// datePattern maps the submatches of one regex onto year/month/day.
// A zero day index means the day defaults to the 1st.
type datePattern struct {
	kind  PatternKind
	re    *regexp.Regexp
	day   int
	month int
	year  int
	named bool // month group holds a month name
}

// patterns is built once and only read afterwards. Every expression runs
// against upper-cased text.
var patterns = []datePattern{
	{
		kind:  DayMonthYear,
		re:    regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})\b`),
		day:   1,
		month: 2,
		year:  3,
	},
	{
		kind:  MonthYearOnly,
		re:    regexp.MustCompile(`\b(\d{1,2})[/-](\d{4}|\d{2})\b`),
		month: 1,
		year:  2,
	},
	{
		kind:  YearMonthDay,
		re:    regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`),
		year:  1,
		month: 2,
		day:   3,
	},
	{
		kind:  TextualMonthYear,
		re:    regexp.MustCompile(`\b(JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC|JANUARY|FEBRUARY|MARCH|APRIL|JUNE|JULY|AUGUST|SEPTEMBER|OCTOBER|NOVEMBER|DECEMBER)\s+(\d{4}|\d{2})\b`),
		month: 1,
		year:  2,
		named: true,
	},
	{
		kind:  ShortMonthSlashYear,
		re:    regexp.MustCompile(`\b(\d{1,2})/(\d{2})\b`),
		month: 1,
		year:  2,
	},
	{
		kind:  KeywordPrefixedDayMonthYear,
		re:    regexp.MustCompile(`(?:EXP|EXPIRY|EXPIRES|EXPIRATION|BB|BEST\s+BEFORE|USE\s+BY)[:\s]+(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})`),
		day:   1,
		month: 2,
		year:  3,
	},
	{
		kind:  UseByYearMonth,
		re:    regexp.MustCompile(`(?:USE\s+BY|BEST\s+BEFORE)[:\s]+(\d{4})[/-](\d{1,2})`),
		year:  1,
		month: 2,
	},
}

// extract turns one submatch slice into a validated date.
func (p datePattern) extract(groups []string) (CalendarDate, bool) {
	var month int
	if p.named {
		m, ok := monthNames[groups[p.month]]
		if !ok {
			return CalendarDate{}, false
		}
		month = m
	} else {
		m, err := strconv.Atoi(groups[p.month])
		if err != nil {
			return CalendarDate{}, false
		}
		month = m
	}

	day := 1
	if p.day > 0 {
		d, err := strconv.Atoi(groups[p.day])
		if err != nil {
			return CalendarDate{}, false
		}
		day = d
	}

	year := NormalizeYear(groups[p.year])
	if !IsValidDate(year, month, day) {
		return CalendarDate{}, false
	}
	return CalendarDate{year: year, month: month, day: day}, true
}
