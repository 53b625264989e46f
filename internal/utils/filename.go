package utils

import (
	"regexp"
	"strings"
)

const maxFilenameRunes = 200

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>"/\\|?*]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a study title or passage reference safe to use as
// a markdown file name. Chapter:verse colons become dots ("John 3.16-21"),
// other characters that filesystems or Obsidian reject are dropped.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, ":", ".")
	filename = invalidFilenameChars.ReplaceAllString(filename, "")

	// Replace newlines/tabs with spaces, then collapse runs of spaces
	filename = whitespaceChars.ReplaceAllString(filename, " ")
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = strings.TrimSpace(filename)

	// Obsidian-specific sanitization
	filename = strings.ReplaceAll(filename, "#", "")
	filename = strings.ReplaceAll(filename, "[", "(")
	filename = strings.ReplaceAll(filename, "]", ")")
	filename = strings.Trim(filename, ". ")

	if runes := []rune(filename); len(runes) > maxFilenameRunes {
		filename = strings.TrimSpace(string(runes[:maxFilenameRunes]))
	}

	if filename == "" {
		filename = "Untitled"
	}
	return filename
}

// ShortID returns the last n characters of id, which for time-ordered ids
// are the random part. Shorter ids are returned unchanged.
func ShortID(id string, n int) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) <= n {
		return id
	}
	return id[len(id)-n:]
}
