// Package tokens extracts ${ NAME } placeholder tokens from template
// text. The grammar is flat and single-level: "${", optional
// whitespace, a name made of [A-Za-z0-9_.-], optional whitespace, "}".
// This placeholder syntax is the tool's only wire format and is
// preserved byte-for-byte.
package tokens

import (
	"regexp"

	"github.com/arthur-debert/tsubst/pkg/types"
)

// tokenPattern captures the trimmed name inside ${ ... }
var tokenPattern = regexp.MustCompile(`\$\{\s*([A-Za-z0-9_.-]+)\s*\}`)

// Extract returns the distinct tokens referenced by text, deduplicated
// by trimmed name in first-seen order. Occurrences that differ only in
// interior whitespace collapse to one logical token.
func Extract(text string) []types.Token {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	result := make([]types.Token, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, types.NewToken(name))
	}
	return result
}

// OccurrencePattern returns a regexp matching every placeholder spelling
// of name, with any amount of interior whitespace. The substitution
// engine uses it to rewrite all textual instances of one logical token.
func OccurrencePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\$\{\s*` + regexp.QuoteMeta(name) + `\s*\}`)
}
