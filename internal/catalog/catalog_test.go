package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategoryPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"drops generic root", "ABB Products > HPR > Rectifier > MCR", "HPR Rectifier MCR"},
		{"drops all generic segments", "ABB Products > Products", ""},
		{"drops All Categories", "All Categories > Drives", "Drives"},
		{"empty input", "", ""},
		{"no generic segments", "HPR > Rectifier", "HPR Rectifier"},
		{"single segment", "Motors", "Motors"},
		{"generic only as exact match", "ABB Products Overview", "ABB Products Overview"},
		{"preserves order", "Products > Robotics > IRB > Controllers", "Robotics IRB Controllers"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeCategoryPath(tc.input))
		})
	}
}

func TestSearchMatchesMultipleGroups(t *testing.T) {
	res := Search("hpr rectifier")

	// All hpr entries come first (table order), then rectifier entries.
	assert.Equal(t, "High Power Rectifiers for primary aluminum smelting", res.Entries[0].Title)
	assert.Equal(t, 9, len(res.Entries))

	// No duplicate titles even across groups.
	seen := make(map[string]int)
	for _, e := range res.Entries {
		seen[e.Title]++
	}
	for title, n := range seen {
		assert.Equal(t, 1, n, "duplicate title: %s", title)
	}
}

func TestSearchDedupesSharedEntries(t *testing.T) {
	// MCR1000 belongs to both the rectifier and mcr groups; it must appear
	// only once, at its first (rectifier group) position.
	res := Search("rectifier mcr")

	count := 0
	for _, e := range res.Entries {
		if e.Title == "MCR1000 Medium Current Rectifier" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	lower := Search("hpr")
	upper := Search("HPR")

	assert.Equal(t, lower.Entries, upper.Entries)
	assert.NotEmpty(t, upper.Entries)
}

func TestSearchCapsAtTenEntries(t *testing.T) {
	// Matching every group yields more than ten candidates in total.
	res := Search("hpr rectifier mcr drive robot motor")

	assert.Len(t, res.Entries, 10)
}

func TestSearchNoMatch(t *testing.T) {
	res := Search("turbine blades")

	assert.Empty(t, res.Entries)
	assert.NotNil(t, res.Entries, "entries must serialize as [] not null")
	assert.Equal(t, "turbine blades", res.Query)
	assert.Equal(t, "https://library.abb.com/r?cid=pscat&lang=en&q=turbine%20blades", res.SearchURL)
}

func TestSearchURLEncodesSpaces(t *testing.T) {
	res := Search("HPR Rectifier MCR")

	assert.True(t, strings.HasSuffix(res.SearchURL, "q=HPR%20Rectifier%20MCR"))
	// The reference URL keeps the original casing.
	assert.NotContains(t, res.SearchURL, "hpr%20rectifier")
}
