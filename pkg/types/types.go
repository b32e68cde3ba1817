package types

import (
	"io/fs"
	"strings"
)

// FS is the filesystem interface required for tsubst operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Token is a placeholder reference extracted from template text.
// Name keeps the case as written for display; Key is the uppercased
// form used for store lookups. Tokens with the same trimmed name are
// one logical token regardless of interior whitespace.
type Token struct {
	Name string
	Key  string
}

// NewToken builds a Token from the whitespace-trimmed name inside ${...}
func NewToken(name string) Token {
	return Token{Name: name, Key: strings.ToUpper(name)}
}

// Resolution is the outcome of resolving one token. When Unresolved is
// true the substitution engine leaves the original placeholder text in
// place; Value is meaningless in that case.
type Resolution struct {
	Token      Token
	Value      string
	Unresolved bool
}

// TemplateUnit is one discrete piece of input text paired with its
// output destination. An empty OutputPath means standard output.
type TemplateUnit struct {
	// Source describes where the text came from (path, URL, or "inline")
	Source string
	// Text is the raw template content
	Text string
	// OutputPath is the sink destination, empty for stdout
	OutputPath string
}
