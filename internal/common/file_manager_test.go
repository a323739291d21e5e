package common

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_FileExists(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	present := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(present, []byte("<html></html>"), 0644))

	assert.True(t, fm.FileExists(present))
	assert.True(t, fm.FileExists(dir))
	assert.False(t, fm.FileExists(filepath.Join(dir, "missing.html")))
}

func TestFileManager_ReadFile(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "linkcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: {}\n"), 0644))

	data, err := fm.ReadFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "site: {}\n", string(data))

	_, err = fm.ReadFile(path, 2)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = fm.ReadFile(filepath.Join(dir, "nope.yaml"), 0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fm.ReadFile(dir, 0)
	assert.ErrorAs(t, err, &vErr)
}

func TestFileManager_CreateFile(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "reports", "nested", "report.json")

	w, err := fm.CreateFile(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "{}")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
