package service

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Aashish23092/expiry-ocr/dto"
	"github.com/Aashish23092/expiry-ocr/utils/expiry"
)

var manualDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ManualDateToISO converts a typed DD/MM/YYYY date to YYYY-MM-DD.
// Anything else, including dates that do not exist, is rejected.
func ManualDateToISO(input string) (string, error) {
	m := manualDateRe.FindStringSubmatch(input)
	if m == nil {
		return "", fmt.Errorf("%w: %q", dto.ErrInvalidManualDate, input)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	date, err := expiry.NewCalendarDate(year, month, day)
	if err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrInvalidManualDate, err)
	}
	return date.String(), nil
}
