package expiry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name   string
		match  string
		source string
		want   int
	}{
		{
			name:   "full date without keywords",
			match:  "15/12/2025",
			source: "15/12/2025",
			want:   60,
		},
		{
			name:   "bare month and year",
			match:  "DEC 2025",
			source: "MILK DEC 2025",
			want:   50,
		},
		{
			name:   "label prefix",
			match:  "BB:12/2026",
			source: "BB:12/2026",
			want:   90,
		},
		{
			name:   "keyword too far away",
			match:  "06/2027",
			source: "EXP" + strings.Repeat(".", 60) + "06/2027",
			want:   50,
		},
		{
			name:   "two far keywords accumulate",
			match:  "06/2027",
			source: "VENCE" + strings.Repeat(".", 10) + "BB" + strings.Repeat(".", 25) + "06/2027",
			want:   80,
		},
		{
			name:   "clamped at 100",
			match:  "10/10/2026",
			source: "EXPIRY BB 10/10/2026",
			want:   100,
		},
		{
			name:   "distance counted in characters",
			match:  "06/2027",
			source: "EXP " + strings.Repeat("É", 10) + " 06/2027",
			want:   80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreConfidence(tt.match, tt.source))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-5, 0, 100))
	assert.Equal(t, 100, clamp(130, 0, 100))
	assert.Equal(t, 42, clamp(42, 0, 100))
}
