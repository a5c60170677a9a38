package expiry

import (
	"regexp"
	"strings"
)

// lotLabels are tried in order; the first label that matches wins even if
// a later one would also match. Each label must start a word, so a volume
// such as "1L" is not an L label: "1L BATCH: B2" reads B2, not BATCH.
var lotLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bLOT[:\s]+([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)\bL[:\s]+([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)\bLOTE[:\s]+([A-Z0-9]+)`),
	regexp.MustCompile(`(?i)\bBATCH[:\s]+([A-Z0-9]+)`),
}

// ExtractLot returns the upper-cased lot/batch token printed after a
// LOT, L, LOTE or BATCH label.
func ExtractLot(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, re := range lotLabels {
		if m := re.FindStringSubmatch(text); len(m) > 1 && m[1] != "" {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}
