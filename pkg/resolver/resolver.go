// Package resolver turns extracted tokens into final string values
// using the variable store, following $NAME indirection chains when
// expansion is enabled.
package resolver

import (
	"strings"

	"github.com/arthur-debert/tsubst/pkg/errors"
	"github.com/arthur-debert/tsubst/pkg/logging"
	"github.com/arthur-debert/tsubst/pkg/types"
	"github.com/arthur-debert/tsubst/pkg/vars"
)

// indirectionMarker prefixes a value that names another variable
const indirectionMarker = "$"

// MaxChainDepth bounds indirection chains. Without a bound a variable
// pointing at itself (or a longer cycle) would resolve forever.
const MaxChainDepth = 32

// Options holds the per-run resolution policies
type Options struct {
	// ExpandVars enables following $NAME indirection in values
	ExpandVars bool
	// FailOnMissing makes an unset token a fatal error for the whole
	// run; when false the token is left unresolved in the output
	FailOnMissing bool
}

// Resolve produces the final value for one token. The returned
// Resolution has Unresolved set when the token has no value and the
// policy is non-strict; the substitution engine then leaves the
// original placeholder text in place.
func Resolve(token types.Token, store *vars.Store, opts Options) (types.Resolution, error) {
	logger := logging.GetLogger("resolver")

	name := token.Key
	chain := []string{name}

	for {
		value, found := store.Lookup(name)
		if !found {
			if opts.FailOnMissing {
				return types.Resolution{}, errors.Newf(errors.ErrVarMissing,
					"no value for token %s", strings.Join(chain, " -> ")).
					WithDetail("token", token.Name)
			}
			logger.Debug().Str("token", token.Name).Msg("Token unresolved, leaving placeholder")
			return types.Resolution{Token: token, Unresolved: true}, nil
		}

		if !opts.ExpandVars || !strings.HasPrefix(value, indirectionMarker) {
			// Without expansion a leading $ is just a literal character
			return types.Resolution{Token: token, Value: value}, nil
		}

		name = value[len(indirectionMarker):]
		chain = append(chain, name)
		if len(chain) > MaxChainDepth {
			return types.Resolution{}, errors.Newf(errors.ErrVarCycle,
				"indirection chain for token %s exceeded %d steps: %s",
				token.Name, MaxChainDepth, strings.Join(chain[:8], " -> ")+" ...").
				WithDetail("token", token.Name)
		}
	}
}

// ResolveAll resolves every token, failing fast on the first error
func ResolveAll(toks []types.Token, store *vars.Store, opts Options) ([]types.Resolution, error) {
	resolutions := make([]types.Resolution, 0, len(toks))
	for _, tok := range toks {
		res, err := Resolve(tok, store, opts)
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, res)
	}
	return resolutions, nil
}
