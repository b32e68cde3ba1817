package vars

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/tsubst/pkg/errors"
	"github.com/arthur-debert/tsubst/pkg/logging"
	"github.com/arthur-debert/tsubst/pkg/types"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
)

// Store maps uppercased variable names to string values. Names are
// case-normalized on both Set and Lookup, matching the convention that
// inline NAME=VALUE assignments uppercase NAME. The store is built once
// per invocation, before any resolution happens, and is read-only after
// that.
type Store struct {
	values map[string]string
}

// New creates an empty store
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Set registers or overwrites a binding. The name is uppercased.
func (s *Store) Set(name, value string) {
	s.values[strings.ToUpper(name)] = value
}

// Lookup returns the value bound to the uppercased form of name
func (s *Store) Lookup(name string) (string, bool) {
	v, ok := s.values[strings.ToUpper(name)]
	return v, ok
}

// Len returns the number of bindings
func (s *Store) Len() int {
	return len(s.values)
}

// SetAssignment applies an inline NAME=VALUE assignment
func (s *Store) SetAssignment(expr string) error {
	name, value, ok := strings.Cut(expr, "=")
	if !ok || name == "" {
		return errors.Newf(errors.ErrConfigInvalid,
			"invalid assignment %q, expected NAME=VALUE", expr)
	}
	s.Set(name, value)
	return nil
}

// SetEnviron seeds the store from environment pairs as returned by
// os.Environ(). Malformed entries are skipped.
func (s *Store) SetEnviron(environ []string) {
	for _, pair := range environ {
		if name, value, ok := strings.Cut(pair, "="); ok && name != "" {
			s.Set(name, value)
		}
	}
}

// LoadFile reads variable bindings from a file and applies each as a
// Set. Files ending in .toml, .yaml or .yml are parsed structurally,
// with nested keys flattened using "." (legal in token names); anything
// else is read as line-oriented NAME=VALUE, where blank lines and lines
// whose first non-whitespace character is '#' are skipped.
//
// A missing file fails with a config error when mustExist is true and
// is silently ignored otherwise.
func (s *Store) LoadFile(fsys types.FS, path string, mustExist bool) error {
	logger := logging.GetLogger("vars")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if !mustExist {
				logger.Debug().Str("path", path).Msg("Optional variable file absent, skipping")
				return nil
			}
			return errors.Wrapf(err, errors.ErrConfigInvalid,
				"variable file %s does not exist", path)
		}
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read variable file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = s.setStructured(path, data, toml.Parser().Unmarshal)
	case ".yaml", ".yml":
		err = s.setStructured(path, data, yaml.Parser().Unmarshal)
	default:
		err = s.setLines(path, data)
	}
	if err != nil {
		return err
	}

	logger.Debug().Str("path", path).Int("bindings", s.Len()).Msg("Loaded variable file")
	return nil
}

// setLines applies line-oriented NAME=VALUE entries
func (s *Store) setLines(path string, data []byte) error {
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, value, ok := strings.Cut(trimmed, "=")
		if !ok || name == "" {
			return errors.Newf(errors.ErrVarFileParse,
				"%s:%d: expected NAME=VALUE, got %q", path, i+1, trimmed)
		}
		s.Set(name, value)
	}
	return nil
}

// setStructured parses a TOML/YAML document and applies its flattened
// scalar entries in sorted key order.
func (s *Store) setStructured(path string, data []byte, unmarshal func([]byte) (map[string]interface{}, error)) error {
	parsed, err := unmarshal(data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrVarFileParse, "cannot parse variable file %s", path)
	}

	flat, _ := maps.Flatten(parsed, nil, ".")
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s.Set(k, fmt.Sprintf("%v", flat[k]))
	}
	return nil
}
