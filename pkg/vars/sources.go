package vars

import (
	"github.com/arthur-debert/tsubst/pkg/logging"
	"github.com/arthur-debert/tsubst/pkg/types"
)

// Source is one declaration-ordered contribution to the store. The
// precedence contract lives entirely in the ordering of the source
// list: sources are applied first to last, and a later Set for the
// same name wins.
type Source interface {
	Apply(store *Store, fsys types.FS) error
}

// Assignment is an inline NAME=VALUE binding
type Assignment struct {
	Expr string
}

func (a Assignment) Apply(store *Store, _ types.FS) error {
	return store.SetAssignment(a.Expr)
}

// File loads bindings from a variable file
type File struct {
	Path      string
	MustExist bool
}

func (f File) Apply(store *Store, fsys types.FS) error {
	return store.LoadFile(fsys, f.Path, f.MustExist)
}

// Environ seeds the store from environment pairs. It is placed first
// in the source list so explicit sources override the environment.
type Environ struct {
	Pairs []string
}

func (e Environ) Apply(store *Store, _ types.FS) error {
	store.SetEnviron(e.Pairs)
	return nil
}

// Build constructs a store by applying sources strictly in the order
// given. The returned store must not be mutated afterwards.
func Build(fsys types.FS, sources []Source) (*Store, error) {
	logger := logging.GetLogger("vars")
	store := New()

	for _, src := range sources {
		if err := src.Apply(store, fsys); err != nil {
			return nil, err
		}
	}

	logger.Debug().Int("sources", len(sources)).Int("bindings", store.Len()).Msg("Variable store built")
	return store, nil
}
