// Package phrase expands user-configured shorthand phrases in note content.
package phrase

import (
	"sort"
	"strings"
)

// Expand replaces every occurrence of each configured phrase with its
// expansion. Phrases are applied longest first so that a phrase which is a
// substring of a longer one (e.g. "@work" vs "@workout") cannot clobber it.
func Expand(content string, phrases map[string]string) string {
	if len(phrases) == 0 {
		return content
	}

	keys := make([]string, 0, len(phrases))
	for k := range phrases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		content = strings.ReplaceAll(content, k, phrases[k])
	}
	return content
}
