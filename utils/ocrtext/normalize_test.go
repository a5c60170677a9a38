package ocrtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"windows line endings", "EXP: 15/12/2025\r\nLOT: A1\r\n", "EXP: 15/12/2025\nLOT: A1"},
		{"tabs and runs of spaces", "BEST\tBEFORE    DEC  2025", "BEST BEFORE DEC 2025"},
		{"blank lines collapse", "A\n\n\n\n\nB", "A\n\nB"},
		{"ruler lines removed", "EXP 12/2026\n-----\nLOT X1", "EXP 12/2026\n\nLOT X1"},
		{"accents folded", "Vencimiénto 03/2027", "Vencimiento 03/2027"},
		{"digits untouched", "L 01 05/06/07", "L 01 05/06/07"},
		{"trailing spaces trimmed", "EXP 01/2026   \nLOT 9  ", "EXP 01/2026\nLOT 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "CADUCIDAD ECHEANCE", FoldAccents("CADUCIDAD ÉCHÉANCE"))
	assert.Equal(t, "plain", FoldAccents("plain"))
}

func TestMeaningfulLength(t *testing.T) {
	assert.Equal(t, 0, MeaningfulLength(" \n\t "))
	assert.Equal(t, 2, MeaningfulLength(" a\nb "))
}
