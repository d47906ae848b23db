// Package entry renders note entries and converts existing note files between
// the bullet and table representations.
//
// Every line of a note file is classified exactly once into a Kind; detection
// and conversion consume the tagged kinds instead of re-deriving line shapes.
package entry

import (
	"regexp"
	"strings"
)

// Rep is the representation of entries within a note file.
type Rep int

const (
	RepUndetermined Rep = iota
	RepBullet
	RepTable
)

func (r Rep) String() string {
	switch r {
	case RepBullet:
		return "bullet"
	case RepTable:
		return "table"
	default:
		return "undetermined"
	}
}

// Kind is the shape of a single line.
type Kind int

const (
	KindOther Kind = iota
	KindBulletRow
	KindTableRow
	KindTableHeader
	KindTableSeparator
)

// Row is one parsed (time, content) pair.
type Row struct {
	Time    string
	Content string
}

var (
	// Plain bullet row, plus the legacy bracketed form kept for files written
	// by old releases. Machine writes always produce the plain form.
	bulletRe       = regexp.MustCompile(`^- (\d{1,2}:\d{2}(?::\d{2})?) (.*)$`)
	bulletLegacyRe = regexp.MustCompile(`^- \[(\d{1,2}:\d{2}(?::\d{2})?)\] (.*)$`)

	tableRowRe  = regexp.MustCompile(`^\|\s*(\d{1,2}:\d{2}(?::\d{2})?)\s*\|\s*(.*?)\s*\|\s*$`)
	tableSepRe  = regexp.MustCompile(`^\|[\s:|-]*-[\s:|-]*\|\s*$`)
	tableLineRe = regexp.MustCompile(`^\|.*\|\s*$`)
)

// Classify tags a single line.
func Classify(line string) Kind {
	switch {
	case tableSepRe.MatchString(line):
		return KindTableSeparator
	case tableRowRe.MatchString(line):
		return KindTableRow
	case tableLineRe.MatchString(line):
		return KindTableHeader
	case bulletRe.MatchString(line), bulletLegacyRe.MatchString(line):
		return KindBulletRow
	default:
		return KindOther
	}
}

// ParseRow extracts the (time, content) pair from a data row of either
// representation. Header, separator, and other lines report ok=false.
func ParseRow(line string) (Row, bool) {
	if m := tableSepRe.FindStringSubmatch(line); m != nil {
		return Row{}, false
	}
	if m := tableRowRe.FindStringSubmatch(line); m != nil {
		return Row{Time: m[1], Content: m[2]}, true
	}
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return Row{Time: m[1], Content: m[2]}, true
	}
	if m := bulletLegacyRe.FindStringSubmatch(line); m != nil {
		return Row{Time: m[1], Content: m[2]}, true
	}
	return Row{}, false
}

// RenderBullet renders one entry as a bullet row.
func RenderBullet(r Row) string {
	return "- " + r.Time + " " + r.Content
}

// RenderTableRow renders one entry as a table data row.
func RenderTableRow(r Row) string {
	return "| " + r.Time + " | " + r.Content + " |"
}

// TableHeader returns the two-line header block for the table representation.
func TableHeader(l Labels) []string {
	return []string{
		"| " + l.Time + " | " + l.Content + " |",
		"|------|----------|",
	}
}

// Detect classifies existing file text into one representation. A file is
// bullet only if it has bullet rows and no table rows (and vice versa);
// anything mixed or empty is undetermined.
func Detect(lines []string) Rep {
	var bullets, tables bool
	for _, line := range lines {
		switch Classify(line) {
		case KindBulletRow:
			bullets = true
		case KindTableRow:
			tables = true
		}
	}
	switch {
	case bullets && !tables:
		return RepBullet
	case tables && !bullets:
		return RepTable
	default:
		return RepUndetermined
	}
}

// Convert rewrites lines from their detected representation into target.
// Undetermined content is passed through unchanged: mixed files are an
// accepted transient state that is never auto-corrected. When the current
// representation already matches the target the lines are returned as-is,
// byte for byte.
func Convert(lines []string, target Rep, labels Labels) []string {
	current := Detect(lines)
	if current == RepUndetermined || current == target || target == RepUndetermined {
		return lines
	}

	var out []string
	switch target {
	case RepTable:
		headerDone := false
		for _, line := range lines {
			switch Classify(line) {
			case KindBulletRow:
				r, _ := ParseRow(line)
				if !headerDone {
					out = append(out, TableHeader(labels)...)
					headerDone = true
				}
				out = append(out, RenderTableRow(r))
			default:
				out = append(out, line)
			}
		}
		out = dropBlanksBetween(out, isTableLine)
	case RepBullet:
		for _, line := range lines {
			switch Classify(line) {
			case KindTableRow:
				r, _ := ParseRow(line)
				out = append(out, RenderBullet(r))
			case KindTableHeader, KindTableSeparator:
				// Dropped: bullet files carry no header block.
			default:
				out = append(out, line)
			}
		}
		out = dropBlanksBetween(out, func(line string) bool {
			return Classify(line) == KindBulletRow
		})
	}
	return out
}

// CleanupTableGaps removes blank lines that sit strictly between two table
// lines, upholding the invariant that a table block has no interior gaps.
// Blank lines before or after the table are preserved.
func CleanupTableGaps(lines []string) []string {
	return dropBlanksBetween(lines, isTableLine)
}

func isTableLine(line string) bool {
	switch Classify(line) {
	case KindTableRow, KindTableHeader, KindTableSeparator:
		return true
	}
	return false
}

// dropBlanksBetween removes runs of blank lines whose nearest non-blank
// neighbors on both sides satisfy pred.
func dropBlanksBetween(lines []string, pred func(string) bool) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			out = append(out, lines[i])
			continue
		}
		j := i
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		interior := len(out) > 0 && pred(out[len(out)-1]) && j < len(lines) && pred(lines[j])
		if !interior {
			out = append(out, lines[i:j]...)
		}
		i = j - 1
	}
	return out
}
