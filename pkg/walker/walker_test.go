package walker_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/tsubst/pkg/errors"
	"github.com/arthur-debert/tsubst/pkg/filesystem"
	"github.com/arthur-debert/tsubst/pkg/testutil"
	"github.com/arthur-debert/tsubst/pkg/types"
	"github.com/arthur-debert/tsubst/pkg/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestUnits_SourceSelection(t *testing.T) {
	fs := filesystem.NewMemory()

	tests := []struct {
		name string
		opts walker.Options
	}{
		{name: "no source", opts: walker.Options{}},
		{name: "two sources", opts: walker.Options{Inline: strptr("x"), File: "/f"}},
		{name: "all three", opts: walker.Options{Inline: strptr("x"), File: "/f", Dir: "/d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := walker.Units(fs, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		})
	}
}

func TestUnits_Inline(t *testing.T) {
	fs := filesystem.NewMemory()

	units, err := walker.Units(fs, walker.Options{Inline: strptr("hi ${NAME}")})
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "inline", units[0].Source)
	assert.Equal(t, "hi ${NAME}", units[0].Text)
	assert.Equal(t, "", units[0].OutputPath, "defaults to stdout")

	units, err = walker.Units(fs, walker.Options{Inline: strptr("x"), Output: "/out.txt"})
	require.NoError(t, err)
	assert.Equal(t, "/out.txt", units[0].OutputPath)
}

func TestUnits_SingleFile(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("/app.conf.template", []byte("port=${PORT}"), 0644))

	units, err := walker.Units(fs, walker.Options{File: "/app.conf.template"})
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "port=${PORT}", units[0].Text)
	assert.Equal(t, "", units[0].OutputPath)
}

func TestUnits_SingleFileMissing(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := walker.Units(fs, walker.Options{File: "/nope.template"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.Contains(t, err.Error(), "/nope.template")
}

func TestUnits_URL(t *testing.T) {
	fs := filesystem.NewMemory()

	opts := walker.Options{
		File: "https://example.com/app.template",
		Fetch: func(url string) ([]byte, error) {
			assert.Equal(t, "https://example.com/app.template", url)
			return []byte("remote ${X}"), nil
		},
	}
	units, err := walker.Units(fs, opts)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "remote ${X}", units[0].Text)

	opts.Fetch = func(string) ([]byte, error) { return nil, fmt.Errorf("boom") }
	_, err = walker.Units(fs, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceFetch))
}

func writeTree(t *testing.T, fs types.FS) {
	t.Helper()
	testutil.WriteFiles(t, fs, map[string]string{
		"/tpl/x.template":     "x=${X}",
		"/tpl/sub/y.template": "y=${Y}",
		"/tpl/notes.txt":      "ignored",
	})
}

func TestUnits_Directory(t *testing.T) {
	fs := filesystem.NewMemory()
	writeTree(t, fs)

	units, err := walker.Units(fs, walker.Options{
		Dir:       "/tpl",
		Output:    "/out",
		Recursive: true,
	})
	require.NoError(t, err)
	require.Len(t, units, 2)

	// Sorted by relative path: sub/y.template before x.template
	assert.Equal(t, "/out/sub/y", units[0].OutputPath)
	assert.Equal(t, "y=${Y}", units[0].Text)
	assert.Equal(t, "/out/x", units[1].OutputPath)
	assert.Equal(t, "x=${X}", units[1].Text)
}

func TestUnits_DirectoryNonRecursive(t *testing.T) {
	fs := filesystem.NewMemory()
	writeTree(t, fs)

	units, err := walker.Units(fs, walker.Options{Dir: "/tpl", Output: "/out"})
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "/out/x", units[0].OutputPath)
}

func TestUnits_DirectoryToStdout(t *testing.T) {
	fs := filesystem.NewMemory()
	writeTree(t, fs)

	units, err := walker.Units(fs, walker.Options{Dir: "/tpl", Recursive: true})
	require.NoError(t, err)
	require.Len(t, units, 2)
	for _, u := range units {
		assert.Equal(t, "", u.OutputPath, "no output root means every unit writes to stdout")
	}
}

func TestUnits_DirectoryCustomExtension(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/tpl", 0755))
	require.NoError(t, fs.WriteFile("/tpl/a.tpl", []byte("a"), 0644))
	require.NoError(t, fs.WriteFile("/tpl/b.template", []byte("b"), 0644))

	units, err := walker.Units(fs, walker.Options{Dir: "/tpl", Output: "/out", Extension: "tpl"})
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "/out/a", units[0].OutputPath)
}

func TestUnits_DirectoryZeroMatches(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/empty", 0755))

	units, err := walker.Units(fs, walker.Options{Dir: "/empty", Output: "/out"})
	require.NoError(t, err, "zero matches is a successful no-op")
	assert.Empty(t, units)
}

func TestUnits_DirectoryErrors(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/tpl", 0755))
	require.NoError(t, fs.WriteFile("/tpl/x.template", []byte("x"), 0644))
	require.NoError(t, fs.WriteFile("/collision", []byte("a file"), 0644))

	t.Run("missing root", func(t *testing.T) {
		_, err := walker.Units(fs, walker.Options{Dir: "/gone"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("root is a file", func(t *testing.T) {
		_, err := walker.Units(fs, walker.Options{Dir: "/collision"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("output root is a file", func(t *testing.T) {
		_, err := walker.Units(fs, walker.Options{Dir: "/tpl", Output: "/collision"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}
