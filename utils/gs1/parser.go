package gs1

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Aashish23092/expiry-ocr/utils/expiry"
)

// Result holds the application identifiers read from one GS1 barcode.
type Result struct {
	GTIN           string              // (01) GTIN-14
	ProductionDate expiry.CalendarDate // (11)
	BestBefore     expiry.CalendarDate // (15)
	Expiry         expiry.CalendarDate // (17)
	Lot            string              // (10) variable, up to 20
	Serial         string              // (21) variable, up to 20
}

var (
	ErrEmptyCode = errors.New("barcode is empty")
	ErrMalformed = errors.New("malformed GS1 element string")
	ErrNoData    = errors.New("barcode carries no GTIN, date or lot")
)

// groupSeparator is FNC1 as transmitted by scanners inside an element string.
const groupSeparator = '\x1d'

const maxVariableLength = 20

// fixedLengths are the data lengths of the fixed AIs we understand.
var fixedLengths = map[string]int{
	"01": 14,
	"11": 6,
	"15": 6,
	"17": 6,
}

// symbologyPrefixes are the AIM identifiers some decoders leave in front.
var symbologyPrefixes = []string{"]C1", "]d2", "]Q3", "]e0"}

var bracketedAI = regexp.MustCompile(`\((\d{2})\)([^(]*)`)

// Parse reads a scanned code. Codes of 15 characters or more are treated
// as GS1 element strings, with or without brackets around the AIs. Shorter
// all-digit codes are GTINs and are left-padded with zeros to 14 digits.
func Parse(code string) (*Result, error) {
	code = strings.TrimSpace(code)
	for _, prefix := range symbologyPrefixes {
		code = strings.TrimPrefix(code, prefix)
	}
	if code == "" {
		return nil, ErrEmptyCode
	}

	if strings.HasPrefix(code, "(") {
		return parseBracketed(code)
	}

	if len(code) < 15 {
		if !isDigits(code) {
			return nil, fmt.Errorf("%w: %q is not a GTIN", ErrMalformed, code)
		}
		return &Result{GTIN: strings.Repeat("0", 14-len(code)) + code}, nil
	}

	return parseElementString(code)
}

func parseBracketed(code string) (*Result, error) {
	result := &Result{}
	matches := bracketedAI.FindAllStringSubmatch(code, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no application identifiers in %q", ErrMalformed, code)
	}
	for _, m := range matches {
		if err := result.set(m[1], strings.TrimSpace(m[2])); err != nil {
			return nil, err
		}
	}
	return result.checked()
}

func parseElementString(code string) (*Result, error) {
	result := &Result{}
	i := 0
	length := len(code)

	for i < length {
		if code[i] == groupSeparator {
			i++
			continue
		}
		if i+2 > length {
			break
		}
		ai := code[i : i+2]

		if n, ok := fixedLengths[ai]; ok {
			if i+2+n > length {
				return nil, fmt.Errorf("%w: AI(%s) needs %d characters", ErrMalformed, ai, n)
			}
			if err := result.set(ai, code[i+2:i+2+n]); err != nil {
				return nil, err
			}
			i += 2 + n
			continue
		}

		if ai == "10" || ai == "21" {
			start := i + 2
			end := variableEnd(code, start)
			if err := result.set(ai, code[start:end]); err != nil {
				return nil, err
			}
			i = end
			continue
		}

		// Unknown AI: its length is not known, so resume after the next
		// group separator or stop.
		next := strings.IndexByte(code[i:], groupSeparator)
		if next < 0 {
			break
		}
		i += next
	}

	return result.checked()
}

// variableEnd finds where a variable-length field ends: at a group
// separator, at the maximum length, or where a complete fixed-length AI
// begins.
func variableEnd(code string, start int) int {
	end := start
	for end < len(code) && end-start < maxVariableLength {
		if code[end] == groupSeparator {
			break
		}
		remaining := code[end:]
		if len(remaining) >= 2 {
			if n, ok := fixedLengths[remaining[:2]]; ok && len(remaining) >= 2+n && isDigits(remaining[2:2+n]) && end > start {
				break
			}
		}
		end++
	}
	return end
}

func (r *Result) set(ai, value string) error {
	switch ai {
	case "01":
		if len(value) != 14 || !isDigits(value) {
			return fmt.Errorf("%w: AI(01) %q is not a GTIN-14", ErrMalformed, value)
		}
		r.GTIN = value
	case "10":
		if r.Lot == "" {
			r.Lot = value
		}
	case "21":
		r.Serial = value
	case "11", "15", "17":
		date, err := ParseDate(value)
		if err != nil {
			return fmt.Errorf("AI(%s): %w", ai, err)
		}
		switch ai {
		case "11":
			r.ProductionDate = date
		case "15":
			r.BestBefore = date
		default:
			r.Expiry = date
		}
	}
	return nil
}

func (r *Result) checked() (*Result, error) {
	if r.GTIN == "" && r.Lot == "" && r.Expiry.IsZero() && r.BestBefore.IsZero() {
		return nil, ErrNoData
	}
	return r, nil
}

// ParseDate reads a GS1 YYMMDD date. A day of 00 means the last day of
// the month.
func ParseDate(yymmdd string) (expiry.CalendarDate, error) {
	if len(yymmdd) != 6 || !isDigits(yymmdd) {
		return expiry.CalendarDate{}, fmt.Errorf("%w: date %q is not YYMMDD", ErrMalformed, yymmdd)
	}
	yy, _ := strconv.Atoi(yymmdd[0:2])
	mm, _ := strconv.Atoi(yymmdd[2:4])
	dd, _ := strconv.Atoi(yymmdd[4:6])

	year := 2000 + yy
	if dd == 0 && mm >= 1 && mm <= 12 {
		dd = time.Date(year, time.Month(mm)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	}
	return expiry.NewCalendarDate(year, mm, dd)
}

// BestExpiry returns the expiry date, falling back to best-before.
func (r *Result) BestExpiry() (expiry.CalendarDate, bool) {
	if !r.Expiry.IsZero() {
		return r.Expiry, true
	}
	if !r.BestBefore.IsZero() {
		return r.BestBefore, true
	}
	return expiry.CalendarDate{}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
