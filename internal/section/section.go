// Package section locates heading-delimited regions within note file text.
package section

import "strings"

// Section is a heading-delimited region of a file, expressed as line indexes.
// Start is the heading line, End the next heading (or one past the last line),
// and ContentEnd one past the last non-blank line of the body — the default
// insertion point for new entries.
type Section struct {
	Start      int
	End        int
	ContentEnd int
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// Locate finds the first heading whose text contains header as a substring.
// Returns nil when no such heading exists.
func Locate(lines []string, header string) *Section {
	for i, line := range lines {
		if !isHeading(line) || !strings.Contains(line, header) {
			continue
		}

		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if isHeading(lines[j]) {
				end = j
				break
			}
		}

		// Content ends one past the last non-blank body line; an all-blank
		// body leaves it immediately after the heading.
		contentEnd := i + 1
		for j := i + 1; j < end; j++ {
			if strings.TrimSpace(lines[j]) != "" {
				contentEnd = j + 1
			}
		}

		return &Section{Start: i, End: end, ContentEnd: contentEnd}
	}
	return nil
}
