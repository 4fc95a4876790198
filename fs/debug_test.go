package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/asrockind/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugWriter_SavePage(t *testing.T) {
	t.Parallel()

	t.Run("writes markup to named file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewDebugWriter(dir)

		err := w.SavePage("search_results.html", "<html>results</html>")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "search_results.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html>results</html>", string(data))
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "debug_pages")
		w := fs.NewDebugWriter(dir)

		err := w.SavePage("product_1.html", "<html>product</html>")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "product_1.html"))
		require.NoError(t, err)
	})

	t.Run("returns error for unwritable directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		w := fs.NewDebugWriter(filepath.Join(file, "debug"))
		err := w.SavePage("search_results.html", "<html></html>")
		assert.Error(t, err)
	})
}
