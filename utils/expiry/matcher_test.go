package expiry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCandidate(candidates []DateCandidate, date CalendarDate, kind PatternKind) (DateCandidate, bool) {
	for _, c := range candidates {
		if c.Date == date && c.Pattern == kind {
			return c, true
		}
	}
	return DateCandidate{}, false
}

func TestExtractDates_KeywordLabel(t *testing.T) {
	text := "EXP: 15/12/2025\nLOT: A2534\nMILK 1L"

	candidates := ExtractDates(text)
	require.NotEmpty(t, candidates)

	c, ok := findCandidate(candidates, mustDate(t, 2025, 12, 15), KeywordPrefixedDayMonthYear)
	require.True(t, ok)
	assert.GreaterOrEqual(t, c.Confidence, 80)
	assert.Equal(t, "EXP: 15/12/2025", c.RawText)

	best, ok := Best(candidates)
	require.True(t, ok)
	assert.Equal(t, mustDate(t, 2025, 12, 15), best.Date)

	lot, ok := ExtractLot(text)
	require.True(t, ok)
	assert.Equal(t, "A2534", lot)
}

func TestExtractDates_TextualMonth(t *testing.T) {
	candidates := ExtractDates("BEST BEFORE DEC 2025")

	c, ok := findCandidate(candidates, mustDate(t, 2025, 12, 1), TextualMonthYear)
	require.True(t, ok)
	assert.Equal(t, "DEC 2025", c.RawText)
	assert.Equal(t, 80, c.Confidence)
}

func TestExtractDates_CaseInsensitive(t *testing.T) {
	candidates := ExtractDates("best before september 2026")

	_, ok := findCandidate(candidates, mustDate(t, 2026, 9, 1), TextualMonthYear)
	assert.True(t, ok)
}

func TestExtractDates_Shapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		date [3]int
		kind PatternKind
	}{
		{"embedded day month year", "BATCH 99 PACKED 07/03/2026 STORE COLD", [3]int{2026, 3, 7}, DayMonthYear},
		{"dashes", "07-03-2026", [3]int{2026, 3, 7}, DayMonthYear},
		{"two digit year", "07/03/26", [3]int{2026, 3, 7}, DayMonthYear},
		{"month and year", "BB 11/2027", [3]int{2027, 11, 1}, MonthYearOnly},
		{"iso order", "PACKED 2026-01-20", [3]int{2026, 1, 20}, YearMonthDay},
		{"abbreviated month", "MAY 26", [3]int{2026, 5, 1}, TextualMonthYear},
		{"short month slash year", "08/29", [3]int{2029, 8, 1}, ShortMonthSlashYear},
		{"expiry keyword", "EXPIRY 01-02-2027", [3]int{2027, 2, 1}, KeywordPrefixedDayMonthYear},
		{"use by keyword", "USE BY 31/12/26", [3]int{2026, 12, 31}, KeywordPrefixedDayMonthYear},
		{"use by year month", "USE BY 2026/03", [3]int{2026, 3, 1}, UseByYearMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mustDate(t, tt.date[0], tt.date[1], tt.date[2])
			_, ok := findCandidate(ExtractDates(tt.text), want, tt.kind)
			assert.True(t, ok, "no %s candidate for %s in %q", tt.kind, want, tt.text)
		})
	}
}

func TestExtractDates_OverlappingPatternsAreKept(t *testing.T) {
	candidates := ExtractDates("EXP: 15/12/2025")
	require.Len(t, candidates, 2)

	assert.Equal(t, KeywordPrefixedDayMonthYear, candidates[0].Pattern)
	assert.Equal(t, 100, candidates[0].Confidence)
	assert.Equal(t, DayMonthYear, candidates[1].Pattern)
	assert.Equal(t, 90, candidates[1].Confidence)
	assert.Equal(t, candidates[0].Date, candidates[1].Date)
}

func TestExtractDates_RejectsImpossibleDates(t *testing.T) {
	for _, raw := range []string{"31/04/2025", "30/02/2024", "29/02/2025", "00/10/2025", "12/13/2025"} {
		for _, c := range ExtractDates("EXP " + raw) {
			assert.NotContains(t, c.RawText, raw, "impossible date %s produced a candidate", raw)
		}
	}
}

func TestExtractDates_YearWindow(t *testing.T) {
	assert.Empty(t, ExtractDates("BB 12/51"))

	candidates := ExtractDates("BB 12/50")
	_, ok := findCandidate(candidates, mustDate(t, 2050, 12, 1), MonthYearOnly)
	assert.True(t, ok)
	_, ok = findCandidate(candidates, mustDate(t, 2050, 12, 1), ShortMonthSlashYear)
	assert.True(t, ok)

	for _, c := range ExtractDates("PRINTED 1998-05-04") {
		assert.NotEqual(t, YearMonthDay, c.Pattern)
	}
}

func TestExtractDates_NoDate(t *testing.T) {
	assert.Empty(t, ExtractDates(""))
	assert.Empty(t, ExtractDates("ORANGE JUICE 1L KEEP REFRIGERATED"))

	_, ok := Best(nil)
	assert.False(t, ok)
}

func TestExtractDates_SortedAndClamped(t *testing.T) {
	texts := []string{
		"EXP: 15/12/2025\nLOT: A2534\nMILK 1L",
		"PACKED 01/01/2025 BEST BEFORE 01/06/2025 USE BY 02/06/2025",
		"CADUCIDAD 10/10/2026 VENCE 10/2026 EXPIRY BB USE BEFORE",
		"2026-01-20 07/03/26 DEC 2030 08/29",
	}

	for _, text := range texts {
		candidates := ExtractDates(text)
		require.NotEmpty(t, candidates, text)
		for i, c := range candidates {
			assert.GreaterOrEqual(t, c.Confidence, 0)
			assert.LessOrEqual(t, c.Confidence, 100)
			if i > 0 {
				assert.GreaterOrEqual(t, candidates[i-1].Confidence, c.Confidence, "not sorted: %q", text)
			}
		}
	}
}

func TestExtractDates_TiesKeepEncounterOrder(t *testing.T) {
	// No keywords and no full dates: every candidate scores the base 50.
	candidates := ExtractDates("MAR 2027 ... JUN 2028")
	require.Len(t, candidates, 2)
	assert.Equal(t, "MAR 2027", candidates[0].RawText)
	assert.Equal(t, "JUN 2028", candidates[1].RawText)
}

func TestDetectedFormats(t *testing.T) {
	formats := DetectedFormats(ExtractDates("EXP: 15/12/2025"))
	assert.Equal(t, []string{"EXP_FORMAT", "DD_MM_YYYY"}, formats)
	assert.Empty(t, DetectedFormats(nil))
}

func TestExtractDates_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			candidates := ExtractDates("EXP: 15/12/2025")
			assert.Len(t, candidates, 2)
		}()
	}
	wg.Wait()
}
