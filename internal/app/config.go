package app

import (
	"errors"
	"fmt"

	"github.com/kevindugan/dependencyTree/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourcePath string // CMakeCache.txt, a build directory or .hcl manifests
	Format     string

	// Target restricts resolution to one target's subgraph.
	Target string
	// RootsOf asks for the roots above the named target.
	RootsOf string
	// Strict rejects dependencies on undeclared targets.
	Strict bool

	PublishURL       string
	PublishNamespace string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("SourcePath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = render.FormatText
	}
	if !render.IsFormat(cfg.Format) {
		return nil, fmt.Errorf("%w: %q", render.ErrUnknownFormat, cfg.Format)
	}

	if cfg.PublishURL == "" && cfg.PublishNamespace != "" {
		return nil, errors.New("PublishNamespace requires PublishURL")
	}

	return &cfg, nil
}
