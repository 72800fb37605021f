package system

import (
	"path/filepath"
	"testing"

	"github.com/kevindugan/dependencyTree/internal/app"
	"github.com/kevindugan/dependencyTree/internal/testutil"
	"github.com/stretchr/testify/require"
)

const cache = `# This is the CMakeCache file.

//Build type
CMAKE_BUILD_TYPE:STRING=Debug

//Dependencies for the target
CEFile_LIB_DEPENDS:STATIC=general;ScaleUtils_IO;general;Standard_boff;general;Interface;

//Dependencies for the target
Interface_LIB_DEPENDS:STATIC=general;Standard_boff;

//Dependencies for the target
ScaleUtils_IO_LIB_DEPENDS:STATIC=general;Standard_boff;debug;libdbg.a;optimized;libopt.a;

//Dependencies for the target
Standard_boff_LIB_DEPENDS:STATIC=
`

// Test for: a build directory is read through its CMakeCache.txt
func TestCMakeCache_BuildDirectory(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{"build/CMakeCache.txt": cache}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{SourcePath: "build"})

	// --- Assert ---
	testutil.AssertTopological(t, result)
	require.Equal(t, filepath.Join(result.Dir, "build", "CMakeCache.txt"), result.Result.Source)
	require.Equal(t,
		[]string{"Standard_boff", "libdbg.a", "libopt.a", "ScaleUtils_IO", "Interface", "CEFile"},
		result.Result.OrderNames(),
	)
}

// Test for: the cache file can be named directly, with a roots query
func TestCMakeCache_CacheFileWithRoots(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{"CMakeCache.txt": cache}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		SourcePath: "CMakeCache.txt",
		Target:     "Interface",
		RootsOf:    "Standard_boff",
	})

	// --- Assert ---
	testutil.AssertTopological(t, result)
	require.Equal(t, []string{"Standard_boff", "Interface"}, result.Result.OrderNames())
	require.Equal(t, []string{"CEFile"}, result.Result.Roots)
}
