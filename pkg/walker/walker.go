// Package walker turns the selected input source (inline text, single
// file or URL, or a directory tree of matching files) into the ordered
// list of template units the pipeline processes.
package walker

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/tsubst/pkg/errors"
	"github.com/arthur-debert/tsubst/pkg/logging"
	"github.com/arthur-debert/tsubst/pkg/types"
)

// DefaultExtension is the suffix filter for directory scans
const DefaultExtension = "template"

// Options selects the template source and the sink layout. Exactly one
// of Inline, File and Dir must be set.
type Options struct {
	// Inline is literal template text (non-nil selects inline mode)
	Inline *string
	// File is a single template file path, or an http(s) URL
	File string
	// Dir is a directory root scanned for matching files
	Dir string
	// Output is the explicit output file, or the output root for
	// directory mode; empty means standard output
	Output string
	// Extension filters directory scans (without the leading dot)
	Extension string
	// Recursive descends into subdirectories during a directory scan
	Recursive bool

	// Fetch retrieves a URL source; nil uses net/http. Tests stub it.
	Fetch func(url string) ([]byte, error)
}

// Units produces one TemplateUnit per input, ordered deterministically.
// Directory scans sort matches by relative path so output is
// reproducible regardless of directory enumeration order.
func Units(fsys types.FS, opts Options) ([]types.TemplateUnit, error) {
	logger := logging.GetLogger("walker")

	selected := 0
	if opts.Inline != nil {
		selected++
	}
	if opts.File != "" {
		selected++
	}
	if opts.Dir != "" {
		selected++
	}
	if selected != 1 {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"exactly one template source (text, file or dir) must be selected, got %d", selected)
	}

	switch {
	case opts.Inline != nil:
		return []types.TemplateUnit{{
			Source:     "inline",
			Text:       *opts.Inline,
			OutputPath: opts.Output,
		}}, nil

	case opts.File != "":
		if isURL(opts.File) {
			return fetchUnit(opts)
		}
		data, err := fsys.ReadFile(opts.File)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrapf(err, errors.ErrFileNotFound,
					"template file %s does not exist", opts.File)
			}
			return nil, errors.Wrapf(err, errors.ErrFileRead,
				"cannot read template file %s", opts.File)
		}
		return []types.TemplateUnit{{
			Source:     opts.File,
			Text:       string(data),
			OutputPath: opts.Output,
		}}, nil

	default:
		units, err := dirUnits(fsys, opts)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("dir", opts.Dir).Int("units", len(units)).Msg("Directory scan complete")
		return units, nil
	}
}

// dirUnits enumerates matching files under opts.Dir and derives each
// unit's output path from its relative path, minus the extension
// suffix. Zero matches is not an error.
func dirUnits(fsys types.FS, opts Options) ([]types.TemplateUnit, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	suffix := "." + ext

	if info, err := fsys.Stat(opts.Dir); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound,
				"template directory %s does not exist", opts.Dir)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", opts.Dir)
	} else if !info.IsDir() {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"%s is not a directory", opts.Dir)
	}

	if opts.Output != "" {
		if info, err := fsys.Stat(opts.Output); err == nil && !info.IsDir() {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"output root %s exists and is not a directory", opts.Output)
		}
	}

	rels, err := scan(fsys, opts.Dir, "", suffix, opts.Recursive)
	if err != nil {
		return nil, err
	}
	sort.Strings(rels)

	units := make([]types.TemplateUnit, 0, len(rels))
	for _, rel := range rels {
		src := filepath.Join(opts.Dir, rel)
		data, err := fsys.ReadFile(src)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead,
				"cannot read template file %s", src)
		}

		outputPath := ""
		if opts.Output != "" {
			outputPath = filepath.Join(opts.Output, strings.TrimSuffix(rel, suffix))
		}

		units = append(units, types.TemplateUnit{
			Source:     src,
			Text:       string(data),
			OutputPath: outputPath,
		})
	}
	return units, nil
}

// scan collects relative paths of files ending in suffix
func scan(fsys types.FS, root, rel, suffix string, recursive bool) ([]string, error) {
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"cannot list directory %s", filepath.Join(root, rel))
	}

	var matches []string
	for _, entry := range entries {
		entryRel := path.Join(rel, entry.Name())
		if entry.IsDir() {
			if !recursive {
				continue
			}
			sub, err := scan(fsys, root, entryRel, suffix, recursive)
			if err != nil {
				return nil, err
			}
			matches = append(matches, sub...)
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			matches = append(matches, entryRel)
		}
	}
	return matches, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// fetchUnit retrieves a remote template. The fetch blocks; timeouts are
// left to the transport.
func fetchUnit(opts Options) ([]types.TemplateUnit, error) {
	fetch := opts.Fetch
	if fetch == nil {
		fetch = httpFetch
	}

	data, err := fetch(opts.File)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceFetch,
			"cannot fetch template from %s", opts.File)
	}
	return []types.TemplateUnit{{
		Source:     opts.File,
		Text:       string(data),
		OutputPath: opts.Output,
	}}, nil
}

func httpFetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
