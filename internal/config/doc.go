// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface every input format implements.
//
// The `config.Model` is the single source of truth for the `builder`
// package. Concrete loaders, for CMake caches and HCL manifests, are
// provided in separate packages.
package config
