package entry

import "strings"

// Labels holds the table header labels for the time and content columns.
type Labels struct {
	Time    string
	Content string
}

// localeLabels maps locale prefixes to their header labels. Unmatched locales
// fall back to the English pair.
var localeLabels = []struct {
	prefixes []string
	labels   Labels
}{
	{[]string{"en"}, Labels{"Time", "Note"}},
	{[]string{"no", "nb", "nn", "da"}, Labels{"Tid", "Notat"}},
	{[]string{"sv"}, Labels{"Tid", "Anteckning"}},
	{[]string{"fi"}, Labels{"Aika", "Merkintä"}},
	{[]string{"de"}, Labels{"Zeit", "Notiz"}},
	{[]string{"fr"}, Labels{"Heure", "Note"}},
	{[]string{"es"}, Labels{"Hora", "Nota"}},
	{[]string{"it"}, Labels{"Ora", "Nota"}},
	{[]string{"nl"}, Labels{"Tijd", "Notitie"}},
	{[]string{"pt"}, Labels{"Hora", "Nota"}},
	{[]string{"ru"}, Labels{"Время", "Заметка"}},
	{[]string{"ja"}, Labels{"時刻", "メモ"}},
	{[]string{"zh"}, Labels{"时间", "笔记"}},
}

// LabelsFor returns the header labels for a locale, applying explicit
// overrides when non-empty.
func LabelsFor(locale, timeOverride, contentOverride string) Labels {
	l := Labels{"Time", "Note"}
	for _, entry := range localeLabels {
		for _, p := range entry.prefixes {
			if strings.HasPrefix(locale, p) {
				l = entry.labels
			}
		}
	}
	if timeOverride != "" {
		l.Time = timeOverride
	}
	if contentOverride != "" {
		l.Content = contentOverride
	}
	return l
}

// IsHeaderContent reports whether a cell value matches any known header label
// in any locale. Used as a safeguard so header rows never leak into listings
// even when the configured labels differ from the ones in the file.
func IsHeaderContent(s string) bool {
	s = strings.TrimSpace(s)
	for _, entry := range localeLabels {
		if s == entry.labels.Time || s == entry.labels.Content {
			return true
		}
	}
	return false
}
