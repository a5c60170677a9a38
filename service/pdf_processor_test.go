package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByPage(t *testing.T) {
	names := []string{
		"doc_10_Im1.png",
		"doc_2_Im3.jpg",
		"doc_readme.txt",
		"doc_1_Im2.png",
		"doc_2_Im1.jpg",
		"doc_01_Im9.png",
	}

	sortByPage(names, "doc")

	assert.Equal(t, []string{
		"doc_01_Im9.png",
		"doc_1_Im2.png",
		"doc_2_Im1.jpg",
		"doc_2_Im3.jpg",
		"doc_10_Im1.png",
		"doc_readme.txt",
	}, names)
}

func TestPageOf(t *testing.T) {
	assert.Equal(t, 12, pageOf("doc_12_Im_a.png", "doc"))
	assert.Equal(t, 3, pageOf("doc_003_thumb.jpg", "doc"))
	assert.Greater(t, pageOf("doc_x_Im1.png", "doc"), 1000)
}
