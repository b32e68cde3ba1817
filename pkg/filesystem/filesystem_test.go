package filesystem_test

import (
	"testing"

	"github.com/arthur-debert/tsubst/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_ReadWrite(t *testing.T) {
	fs := filesystem.NewMemory()

	err := fs.MkdirAll("/tpl/sub", 0755)
	require.NoError(t, err)

	err = fs.WriteFile("/tpl/sub/app.template", []byte("host=${HOST}"), 0644)
	require.NoError(t, err)

	data, err := fs.ReadFile("/tpl/sub/app.template")
	require.NoError(t, err)
	assert.Equal(t, "host=${HOST}", string(data))

	entries, err := fs.ReadDir("/tpl")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
	assert.Equal(t, "sub", entries[0].Name())
}

func TestMemoryFS_ReadDirOnFile(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("/plain", []byte("x"), 0644))

	_, err := fs.ReadFile("/missing")
	assert.Error(t, err)

	info, err := fs.Stat("/plain")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
