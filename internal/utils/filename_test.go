package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "turns verse colons into dots",
			input:    "John 3:16-21",
			expected: "John 3.16-21",
		},
		{
			name:     "removes invalid characters",
			input:    `study<>"/\|?*name`,
			expected: "studyname",
		},
		{
			name:     "replaces newlines and tabs with spaces",
			input:    "Psalm\n23\twith\rspaces",
			expected: "Psalm 23 with spaces",
		},
		{
			name:     "collapses multiple spaces",
			input:    "Romans   8  1-4",
			expected: "Romans 8 1-4",
		},
		{
			name:     "removes hashtags",
			input:    "#grace #study",
			expected: "grace study",
		},
		{
			name:     "replaces square brackets",
			input:    "Mark 1 [draft]",
			expected: "Mark 1 (draft)",
		},
		{
			name:     "trims dots and whitespace",
			input:    "  ..hidden.  ",
			expected: "hidden",
		},
		{
			name:     "returns Untitled for empty",
			input:    "",
			expected: "Untitled",
		},
		{
			name:     "returns Untitled for only special chars",
			input:    "<>?*",
			expected: "Untitled",
		},
		{
			name:     "truncates long names",
			input:    strings.Repeat("a", 250),
			expected: strings.Repeat("a", 200),
		},
		{
			name:     "truncates by characters not bytes",
			input:    strings.Repeat("é", 250),
			expected: strings.Repeat("é", 200),
		},
		{
			name:     "handles unicode",
			input:    "Jan 1:1 – Słowo",
			expected: "Jan 1.1 – Słowo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "89abcdef", ShortID("01890a5d-ac96-774b-bcce-b30289abcdef", 8))
	assert.Equal(t, "abc", ShortID("abc", 8))
}
