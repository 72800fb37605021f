package cmakecache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
)

// Loader is the CMake cache implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new CMake cache loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every given cache file and translates its libraries into
// targets. A directory path is taken to be a build directory and its
// CMakeCache.txt is read.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CMake cache loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, ErrNoCacheFile
	}

	model := &config.Model{}
	var sources []string
	for _, path := range paths {
		file, err := CacheFilePath(path)
		if err != nil {
			return nil, err
		}

		cache, err := ParseFile(ctx, file)
		if err != nil {
			return nil, err
		}
		for _, lib := range cache.Libraries() {
			model.Targets = append(model.Targets, &config.Target{
				Name:      lib.Name,
				DependsOn: lib.Dependencies,
				Value:     lib,
			})
		}
		sources = append(sources, file)
		logger.Debug("CMake cache translated.", "file", file, "libraries", len(cache.libraries))
	}
	model.Source = strings.Join(sources, ", ")

	return model, nil
}

// CacheFilePath resolves path to a cache file: directories are joined with
// FileName, files are returned unchanged.
func CacheFilePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoCacheFile, path)
		}
		return "", fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if info.IsDir() {
		return filepath.Join(path, FileName), nil
	}
	return path, nil
}
