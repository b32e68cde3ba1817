package cli

import (
	"github.com/arthur-debert/tsubst/pkg/vars"
)

// sourceList accumulates variable sources in the order pflag parses
// them. Both -e and --var-file append here, so interleaved declarations
// keep their command-line order and the last-write-wins precedence
// contract holds across source kinds.
type sourceList struct {
	sources []vars.Source
}

// assignmentValue is the pflag.Value behind -e NAME=VALUE
type assignmentValue struct {
	list *sourceList
}

func (v *assignmentValue) String() string { return "" }

func (v *assignmentValue) Set(s string) error {
	v.list.sources = append(v.list.sources, vars.Assignment{Expr: s})
	return nil
}

func (v *assignmentValue) Type() string { return "NAME=VALUE" }

// varFileValue is the pflag.Value behind --var-file and
// --optional-var-file
type varFileValue struct {
	list      *sourceList
	mustExist bool
}

func (v *varFileValue) String() string { return "" }

func (v *varFileValue) Set(path string) error {
	v.list.sources = append(v.list.sources, vars.File{Path: path, MustExist: v.mustExist})
	return nil
}

func (v *varFileValue) Type() string { return "FILE" }
