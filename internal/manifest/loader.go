package manifest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/fsutil"
)

// Extension is the file extension manifests are discovered by.
const Extension = ".hcl"

// ErrNoManifests is returned when the given paths contain no manifest files.
var ErrNoManifests = errors.New("no manifest files found")

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every manifest found under paths and merges their targets into
// one model, in file order and then block order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL manifest loader started.", "path_count", len(paths))

	files, err := fsutil.ExpandPaths(paths, Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoManifests, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	model := &config.Model{Source: strings.Join(paths, ", ")}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Targets {
			target, err := translateTarget(block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Targets = append(model.Targets, target)
		}
		logger.Debug("Manifest decoded.", "file", file, "targets", len(root.Targets))
	}

	logger.Debug("HCL loading complete.", "targets", len(model.Targets))
	return model, nil
}

// translateTarget converts a decoded block into the agnostic model.
func translateTarget(b *targetBlock) (*config.Target, error) {
	value, err := decodeValue(b.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for target %q: %w", b.Name, err)
	}
	return &config.Target{
		Name:      b.Name,
		DependsOn: b.DependsOn,
		Value:     value,
	}, nil
}
