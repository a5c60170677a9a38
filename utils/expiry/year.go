package expiry

import (
	"strconv"
	"strings"
)

// yearPivot splits two-digit years: 00-50 are 20xx, 51-99 are 19xx.
const yearPivot = 50

// NormalizeYear expands a 2-4 digit year token to a four-digit year.
// Values of 100 and above pass through unchanged. A token that is not a
// number yields 0, which every range check rejects.
func NormalizeYear(token string) int {
	year, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || year < 0 {
		return 0
	}
	if year < 100 {
		if year <= yearPivot {
			return year + 2000
		}
		return year + 1900
	}
	return year
}
