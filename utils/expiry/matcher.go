package expiry

import (
	"sort"
	"strings"
)

// DateCandidate is one date read from OCR text.
type DateCandidate struct {
	RawText    string       `json:"raw_text"`
	Date       CalendarDate `json:"date_value"`
	Pattern    PatternKind  `json:"pattern_used"`
	Confidence int          `json:"confidence"`
}

// ExtractDates runs every pattern over text and returns the dates that
// survive calendar validation, best confidence first. Patterns fire
// independently, so one span may appear more than once under different
// pattern kinds. Ties keep the order in which they were found.
func ExtractDates(text string) []DateCandidate {
	if text == "" {
		return nil
	}

	source := strings.ToUpper(text)
	var found []DateCandidate

	for _, p := range patterns {
		for _, groups := range p.re.FindAllStringSubmatch(source, -1) {
			date, ok := p.extract(groups)
			if !ok {
				continue
			}
			found = append(found, DateCandidate{
				RawText:    groups[0],
				Date:       date,
				Pattern:    p.kind,
				Confidence: scoreConfidence(groups[0], source),
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Confidence > found[j].Confidence
	})
	return found
}

// Best returns the highest ranked candidate.
func Best(candidates []DateCandidate) (DateCandidate, bool) {
	if len(candidates) == 0 {
		return DateCandidate{}, false
	}
	return candidates[0], true
}

// DetectedFormats lists the distinct pattern names in candidate order.
func DetectedFormats(candidates []DateCandidate) []string {
	seen := make(map[PatternKind]bool)
	formats := []string{}
	for _, c := range candidates {
		if seen[c.Pattern] {
			continue
		}
		seen[c.Pattern] = true
		formats = append(formats, c.Pattern.String())
	}
	return formats
}
