package cmakecache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleCache), 0644))

	t.Run("build directory", func(t *testing.T) {
		model, err := NewLoader().Load(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, path, model.Source)
		assert.Equal(t, []string{"CEFile", "Interface", "Standard_boff", "Mixed"}, model.TargetNames())
		assert.Equal(t, []string{"Standard_boff"}, model.Targets[1].DependsOn)
		assert.False(t, model.Targets[1].External)

		lib, ok := model.Targets[1].Value.(Library)
		require.True(t, ok)
		assert.Equal(t, "Interface", lib.Name)
	})

	t.Run("cache file path", func(t *testing.T) {
		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)
		assert.Len(t, model.Targets, 4)
	})

	t.Run("no paths", func(t *testing.T) {
		_, err := NewLoader().Load(ctx)
		assert.ErrorIs(t, err, ErrNoCacheFile)
	})

	t.Run("directory without cache", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, t.TempDir())
		assert.ErrorIs(t, err, ErrNoCacheFile)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, filepath.Join(dir, "nope"))
		assert.ErrorIs(t, err, ErrNoCacheFile)
	})
}
