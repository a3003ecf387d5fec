package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Sieg gegen FC Testheim!", "sieg-gegen-fc-testheim"},
		{"Kantersieg! 4:0 gegen TSV Beispielstadt", "kantersieg-4-0-gegen-tsv-beispielstadt"},
		{"Großer Sieg für Würzburg", "grosser-sieg-fuer-wuerzburg"},
		{"  --  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.title))
		})
	}
}

func TestArticleSlug(t *testing.T) {
	date := time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-02-sieg-gegen-fc-testheim", ArticleSlug("Sieg gegen FC Testheim!", date))
}
