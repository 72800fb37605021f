package cmakecache

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/ctxlog"
)

// FileName is the name CMake gives its cache file.
const FileName = "CMakeCache.txt"

// libDependsSuffix marks a cache key that holds a target's link dependencies.
const libDependsSuffix = "_LIB_DEPENDS"

var (
	// ErrNoCacheFile is returned when no cache file path was given or the
	// path does not exist.
	ErrNoCacheFile = errors.New("no CMakeCache file found")

	// ErrPackageNotFound is returned when a library is not declared in the cache.
	ErrPackageNotFound = errors.New("package not found in CMakeCache")
)

// linkKeywords are CMake list items that qualify the next item instead of
// naming a library.
var linkKeywords = map[string]struct{}{
	"general":   {},
	"debug":     {},
	"optimized": {},
}

// Library is one `<name>_LIB_DEPENDS` entry of a cache file.
type Library struct {
	Name         string
	Dependencies []string
	// Line is the 1-based line number of the entry.
	Line int
}

// Cache holds every library entry of a parsed cache file.
type Cache struct {
	libraries []Library
	byName    map[string]int
}

// Libraries returns the parsed entries in file order.
func (c *Cache) Libraries() []Library {
	libs := make([]Library, len(c.libraries))
	copy(libs, c.libraries)
	return libs
}

// Dependencies returns the link dependencies recorded for the named library.
func (c *Cache) Dependencies(name string) ([]string, error) {
	i, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}
	deps := make([]string, len(c.libraries[i].Dependencies))
	copy(deps, c.libraries[i].Dependencies)
	return deps, nil
}

// ParseFile opens and parses the cache file at path.
func ParseFile(ctx context.Context, path string) (*Cache, error) {
	if path == "" {
		return nil, ErrNoCacheFile
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoCacheFile, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cache, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cache, nil
}

// Parse reads cache entries from r. Lines that are not `_LIB_DEPENDS`
// entries are ignored. If the same library is declared twice, the later
// entry wins.
func Parse(ctx context.Context, r io.Reader) (*Cache, error) {
	logger := ctxlog.FromContext(ctx)

	cache := &Cache{byName: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		lib, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		lib.Line = lineNo

		if i, dup := cache.byName[lib.Name]; dup {
			logger.Warn("Library declared twice in cache, keeping the later entry.",
				"library", lib.Name, "first_line", cache.libraries[i].Line, "line", lineNo)
			cache.libraries[i] = lib
			continue
		}
		cache.byName[lib.Name] = len(cache.libraries)
		cache.libraries = append(cache.libraries, lib)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	logger.Debug("CMake cache parsed.", "lines", lineNo, "libraries", len(cache.libraries))
	return cache, nil
}

// parseLine extracts a library entry from a single cache line of the form
// `<name>_LIB_DEPENDS:<TYPE>=<list>`.
func parseLine(line string) (Library, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
		return Library{}, false
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return Library{}, false
	}
	key, _, _ = strings.Cut(key, ":")
	name, ok := strings.CutSuffix(key, libDependsSuffix)
	if !ok || name == "" {
		return Library{}, false
	}

	return Library{Name: name, Dependencies: splitLinkList(value)}, true
}

// splitLinkList splits a CMake link list, dropping link-type keywords, empty
// items, and repeats while preserving first-seen order.
func splitLinkList(value string) []string {
	deps := []string{}
	seen := make(map[string]struct{})
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, kw := linkKeywords[item]; kw {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		deps = append(deps, item)
	}
	return deps
}
