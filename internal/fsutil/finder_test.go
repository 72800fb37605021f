package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func TestFindFilesByExtension(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.hcl":        "",
		"b.txt":        "",
		"nested/c.hcl": "",
	})

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestExpandPaths(t *testing.T) {
	root := writeTree(t, map[string]string{
		"one.hcl":     "",
		"skip.md":     "",
		"dir/two.hcl": "",
	})

	t.Run("files and directories are merged without duplicates", func(t *testing.T) {
		files, err := ExpandPaths([]string{
			filepath.Join(root, "one.hcl"),
			root,
			filepath.Join(root, "skip.md"),
		}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "one.hcl"),
			filepath.Join(root, "dir", "two.hcl"),
		}, files)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		_, err := ExpandPaths([]string{filepath.Join(root, "nope")}, ".hcl")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
