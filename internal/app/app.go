package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kevindugan/dependencyTree/internal/builder"
	"github.com/kevindugan/dependencyTree/internal/cmakecache"
	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/depgraph"
	"github.com/kevindugan/dependencyTree/internal/manifest"
	"github.com/kevindugan/dependencyTree/internal/publish"
	"github.com/kevindugan/dependencyTree/internal/render"
)

// ErrTargetNotFound is returned when -target or -roots-of names a target
// that is not in the graph.
var ErrTargetNotFound = errors.New("target not found")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW, so structured output stays machine readable.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: selectLoader(cfg.SourcePath),
	}
}

// selectLoader picks the CMake cache loader for a CMakeCache.txt file or a
// build directory holding one, and the HCL manifest loader otherwise.
func selectLoader(path string) config.Loader {
	if filepath.Base(path) == cmakecache.FileName {
		return cmakecache.NewLoader()
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		if _, err := os.Stat(filepath.Join(path, cmakecache.FileName)); err == nil {
			return cmakecache.NewLoader()
		}
	}
	return manifest.NewLoader()
}

// Run loads the source, resolves it and writes the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "source", a.config.SourcePath, "loader", fmt.Sprintf("%T", a.loader))

	model, err := a.loader.Load(ctx, a.config.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to load dependency tree: %w", err)
	}
	a.logger.Debug("Source loaded.", "source", model.Source, "targets", model.TargetNames())

	graph, err := builder.Build(ctx, model, builder.WithStrict(a.config.Strict))
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}

	if a.logger.Enabled(ctx, slog.LevelDebug) {
		for _, n := range graph.Collection.Nodes() {
			a.logger.Debug(depgraph.FormatDependencies(n))
		}
	}

	order, err := a.resolve(graph)
	if err != nil {
		return fmt.Errorf("dependency resolution failed: %w", err)
	}
	a.logger.Info("Dependencies resolved.", "nodes", len(order))

	result := newResult(model.Source, a.config.Target, order)

	if a.config.RootsOf != "" {
		n, ok := graph.Lookup(a.config.RootsOf)
		if !ok {
			return fmt.Errorf("%w: %q", ErrTargetNotFound, a.config.RootsOf)
		}
		result.RootsOf = n.Name()
		result.Roots = depgraph.Names(depgraph.FindRoots(n))
		a.logger.Debug("Roots found.", "target", n.Name(), "roots", result.Roots)
	}

	if err := render.Write(a.outW, a.config.Format, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if a.config.PublishURL != "" {
		p, err := publish.New(a.config.PublishURL, a.config.PublishNamespace)
		if err != nil {
			return fmt.Errorf("invalid publish configuration: %w", err)
		}
		if err := p.Publish(ctx, result); err != nil {
			return fmt.Errorf("failed to publish result: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolve orders the whole graph, or only the configured target's subgraph.
func (a *App) resolve(graph *builder.Graph) ([]*builder.Node, error) {
	if a.config.Target == "" {
		return graph.Collection.ResolveDependencies()
	}
	n, ok := graph.Lookup(a.config.Target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, a.config.Target)
	}
	return depgraph.ResolveDependencies(n)
}

func newResult(source, target string, order []*builder.Node) *render.Result {
	result := &render.Result{
		Source: source,
		Target: target,
		Order:  make([]render.Entry, len(order)),
	}
	for i, n := range order {
		result.Order[i] = render.Entry{
			Name:      n.Name(),
			DependsOn: depgraph.Names(n.Dependencies()),
			External:  n.Value().External,
		}
	}
	return result
}
