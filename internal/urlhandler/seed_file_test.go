package urlhandler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeedPagesFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads pages", func(t *testing.T) {
		path := filepath.Join(dir, "pages.txt")
		content := "# seed pages\n/\n\n  /blog/  \nabout\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		pages, err := ReadSeedPagesFromFile(path, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, []string{"/", "/blog/", "/about"}, pages)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSeedPagesFromFile(filepath.Join(dir, "nope.txt"), zerolog.Nop())
		assert.ErrorIs(t, err, ErrSeedFileNotFound)
	})

	t.Run("only comments", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("# nothing\n\n"), 0644))

		_, err := ReadSeedPagesFromFile(path, zerolog.Nop())
		assert.ErrorIs(t, err, ErrSeedFileEmpty)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ReadSeedPagesFromFile(dir, zerolog.Nop())
		assert.Error(t, err)
	})
}
