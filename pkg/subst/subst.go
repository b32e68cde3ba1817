// Package subst applies resolved values back into template text.
// Values are opaque literal replacement text: a value containing $, \,
// & or / must never be reinterpreted as pattern or replacement syntax.
package subst

import (
	"github.com/arthur-debert/tsubst/pkg/tokens"
	"github.com/arthur-debert/tsubst/pkg/types"
)

// Apply rewrites every occurrence of each resolved token's placeholder
// form, whatever interior whitespace it was written with. Tokens whose
// resolution is the unresolved sentinel keep their original placeholder
// text byte-for-byte. Text without tokens passes through unchanged.
func Apply(text string, resolutions []types.Resolution) string {
	for _, res := range resolutions {
		if res.Unresolved {
			continue
		}
		re := tokens.OccurrencePattern(res.Token.Name)
		text = re.ReplaceAllLiteralString(text, res.Value)
	}
	return text
}
