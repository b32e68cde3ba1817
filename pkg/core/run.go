package core

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/tsubst/pkg/errors"
	"github.com/arthur-debert/tsubst/pkg/filesystem"
	"github.com/arthur-debert/tsubst/pkg/logging"
	"github.com/arthur-debert/tsubst/pkg/resolver"
	"github.com/arthur-debert/tsubst/pkg/subst"
	"github.com/arthur-debert/tsubst/pkg/tokens"
	"github.com/arthur-debert/tsubst/pkg/types"
	"github.com/arthur-debert/tsubst/pkg/vars"
	"github.com/arthur-debert/tsubst/pkg/walker"
)

// RunOptions configures one invocation of the pipeline
type RunOptions struct {
	// FS is the filesystem everything reads from and writes to;
	// nil uses the OS filesystem
	FS types.FS
	// Stdout receives units without an output path; nil uses os.Stdout
	Stdout io.Writer

	// Sources build the variable store, in declaration order
	Sources []vars.Source
	// Walk selects the template source and sink layout
	Walk walker.Options

	// ExpandVars enables $NAME indirection in values
	ExpandVars bool
	// FailOnMissing aborts the whole run on the first unset token
	FailOnMissing bool
	// DryRun computes every unit but writes nothing
	DryRun bool
}

// UnitResult describes what happened (or, under dry run, what would
// have happened) to one template unit
type UnitResult struct {
	Source      string
	Destination string // output path, or "stdout"
	Tokens      int
	Bytes       int
	Written     bool
}

// RunResult is the outcome of a whole run
type RunResult struct {
	DryRun bool
	Units  []UnitResult
}

// Run executes the pipeline: store → units → per unit extract, resolve,
// substitute, emit. Units are processed strictly sequentially in walker
// order, and the first fatal error aborts the remaining units. Output
// already written for earlier units is left in place; there is no
// rollback.
func Run(opts RunOptions) (*RunResult, error) {
	logger := logging.GetLogger("core.run")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	store, err := vars.Build(fsys, opts.Sources)
	if err != nil {
		return nil, err
	}

	units, err := walker.Units(fsys, opts.Walk)
	if err != nil {
		return nil, err
	}

	resolveOpts := resolver.Options{
		ExpandVars:    opts.ExpandVars,
		FailOnMissing: opts.FailOnMissing,
	}

	result := &RunResult{DryRun: opts.DryRun}
	for _, unit := range units {
		toks := tokens.Extract(unit.Text)
		resolutions, err := resolver.ResolveAll(toks, store, resolveOpts)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err),
				"processing %s", unit.Source)
		}

		final := subst.Apply(unit.Text, resolutions)

		unitResult := UnitResult{
			Source:      unit.Source,
			Destination: "stdout",
			Tokens:      len(toks),
			Bytes:       len(final),
		}
		if unit.OutputPath != "" {
			unitResult.Destination = unit.OutputPath
		}

		if !opts.DryRun {
			if err := emit(fsys, stdout, unit.OutputPath, final); err != nil {
				return nil, err
			}
			unitResult.Written = true
		}

		logger.Debug().
			Str("source", unit.Source).
			Str("destination", unitResult.Destination).
			Int("tokens", unitResult.Tokens).
			Bool("dryRun", opts.DryRun).
			Msg("Unit processed")

		result.Units = append(result.Units, unitResult)
	}

	return result, nil
}

// emit hands the substituted text to its sink
func emit(fsys types.FS, stdout io.Writer, outputPath, text string) error {
	if outputPath == "" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "cannot write to stdout")
		}
		return nil
	}

	dir := filepath.Dir(outputPath)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create output directory %s", dir)
	}
	if err := fsys.WriteFile(outputPath, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", outputPath)
	}
	return nil
}
