package expiry

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// expiryKeywords raise confidence in dates printed near them. Substring
// matches count, so "EXP" also fires inside "EXPIRY".
var expiryKeywords = []string{
	"EXP",
	"EXPIRY",
	"EXPIRES",
	"EXPIRATION",
	"BEST BEFORE",
	"BB",
	"USE BY",
	"USE BEFORE",
	"CADUCIDAD",
	"VENCE",
	"VENCIMIENTO",
	"CONSUMIR ANTES",
}

const (
	baseConfidence = 50

	nearKeywordDistance = 20
	nearKeywordBonus    = 30
	farKeywordDistance  = 50
	farKeywordBonus     = 15

	labelPrefixBonus = 10
	fullDateBonus    = 10
)

var (
	labelPrefixRe = regexp.MustCompile(`^(?:EXPIRATION|EXPIRES|EXPIRY|EXP|BEST\s+BEFORE|BB|USE\s+BY)\s*[:;]`)
	fullDateRe    = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
)

// scoreConfidence ranks a matched span against the upper-cased source.
// Keyword bonuses accumulate: every keyword present within range adds
// its own bonus.
func scoreConfidence(match, source string) int {
	score := baseConfidence

	if matchAt := charIndex(source, match); matchAt >= 0 {
		for _, keyword := range expiryKeywords {
			keywordAt := charIndex(source, keyword)
			if keywordAt < 0 {
				continue
			}
			switch distance := abs(keywordAt - matchAt); {
			case distance < nearKeywordDistance:
				score += nearKeywordBonus
			case distance < farKeywordDistance:
				score += farKeywordBonus
			}
		}
	}

	if labelPrefixRe.MatchString(match) {
		score += labelPrefixBonus
	}
	if fullDateRe.MatchString(match) {
		score += fullDateBonus
	}

	return clamp(score, 0, 100)
}

// charIndex is strings.Index counted in characters rather than bytes.
func charIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
