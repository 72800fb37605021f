// Package cmakecache reads library link dependencies out of a CMake
// CMakeCache.txt file.
//
// CMake records the link interface of every library target it configures as
// a cache entry:
//
//	Foo_LIB_DEPENDS:STATIC=general;Bar;general;Baz;
//
// The value is a CMake list whose items alternate between a link-type keyword
// (general, debug or optimized) and a library. Parse extracts those entries
// in file order; Loader turns them into a config.Model so the dependency
// order of the whole project can be resolved.
package cmakecache
