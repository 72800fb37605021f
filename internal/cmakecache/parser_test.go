package cmakecache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCache = `# This is the CMakeCache file.
# For build in directory: /home/user/build

########################
# EXTERNAL cache entries
########################

//Build type
CMAKE_BUILD_TYPE:STRING=Release

//Dependencies for the target
CEFile_LIB_DEPENDS:STATIC=general;ScaleUtilsAmpxLib_fortranlib;general;ScaleUtilsAmpxLib;general;ScaleUtils_IO;general;Standard_fboff;general;Standard_boff;general;Interface;

//Dependencies for the target
Interface_LIB_DEPENDS:STATIC=general;Standard_boff;

//Dependencies for the target
Standard_boff_LIB_DEPENDS:STATIC=

//Dependencies for the target
Mixed_LIB_DEPENDS:STATIC=debug;libd.so;optimized;libo.so;general;Interface;general;Interface;
`

func TestParse(t *testing.T) {
	cache, err := Parse(context.Background(), strings.NewReader(sampleCache))
	require.NoError(t, err)

	want := []Library{
		{
			Name: "CEFile",
			Dependencies: []string{
				"ScaleUtilsAmpxLib_fortranlib", "ScaleUtilsAmpxLib", "ScaleUtils_IO",
				"Standard_fboff", "Standard_boff", "Interface",
			},
			Line: 12,
		},
		{Name: "Interface", Dependencies: []string{"Standard_boff"}, Line: 15},
		{Name: "Standard_boff", Dependencies: []string{}, Line: 18},
		{Name: "Mixed", Dependencies: []string{"libd.so", "libo.so", "Interface"}, Line: 21},
	}
	if diff := cmp.Diff(want, cache.Libraries()); diff != "" {
		t.Errorf("Libraries mismatch (-want +got):\n%s", diff)
	}
}

func TestCache_Dependencies(t *testing.T) {
	cache, err := Parse(context.Background(), strings.NewReader(sampleCache))
	require.NoError(t, err)

	deps, err := cache.Dependencies("CEFile")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ScaleUtilsAmpxLib_fortranlib", "ScaleUtilsAmpxLib", "ScaleUtils_IO",
		"Standard_fboff", "Standard_boff", "Interface",
	}, deps)

	_, err = cache.Dependencies("Missing")
	require.ErrorIs(t, err, ErrPackageNotFound)
	assert.EqualError(t, err, "package not found in CMakeCache: Missing")
}

func TestParse_DuplicateEntryKeepsLater(t *testing.T) {
	input := "A_LIB_DEPENDS:STATIC=general;B;\nA_LIB_DEPENDS:STATIC=general;C;\n"

	cache, err := Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cache.Libraries(), 1)

	deps, err := cache.Dependencies("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, deps)
}

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name   string
		line   string
		wantOK bool
		want   Library
	}{
		{name: "comment", line: "//Dependencies for the target"},
		{name: "hash comment", line: "# A_LIB_DEPENDS:STATIC=general;B;"},
		{name: "other entry", line: "CMAKE_BUILD_TYPE:STRING=Release"},
		{name: "no value separator", line: "A_LIB_DEPENDS"},
		{name: "empty name", line: "_LIB_DEPENDS:STATIC=general;B;"},
		{
			name:   "internal type",
			line:   "  lib_LIB_DEPENDS:INTERNAL=general;dep;  ",
			wantOK: true,
			want:   Library{Name: "lib", Dependencies: []string{"dep"}},
		},
		{
			name:   "untyped key",
			line:   "lib_LIB_DEPENDS=dep",
			wantOK: true,
			want:   Library{Name: "lib", Dependencies: []string{"dep"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseLine(tc.line)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		_, err := ParseFile(ctx, "")
		assert.ErrorIs(t, err, ErrNoCacheFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(ctx, filepath.Join(t.TempDir(), FileName))
		assert.ErrorIs(t, err, ErrNoCacheFile)
	})

	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte(sampleCache), 0644))

		cache, err := ParseFile(ctx, path)
		require.NoError(t, err)
		assert.Len(t, cache.Libraries(), 4)
	})
}
