package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/depgraph"
)

var (
	// ErrDuplicateTarget is returned when two targets share a name.
	ErrDuplicateTarget = errors.New("target with this name already exists")

	// ErrUnknownTarget is returned in strict mode for a dependency on a name
	// that no target declares.
	ErrUnknownTarget = errors.New("dependency on undeclared target")
)

// Node is a graph node carrying its configuration target.
type Node = depgraph.Node[*config.Target]

// Graph is the dependency graph built from a config model.
type Graph struct {
	// Collection holds every node, declared targets first in declaration
	// order, each implicit external node right after its first referrer.
	Collection *depgraph.Collection[*config.Target]

	byName map[string]*Node
}

// Lookup returns the node with the given target name.
func (g *Graph) Lookup(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// Option configures Build.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict makes references to undeclared targets an error instead of
// creating implicit external nodes.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Build constructs the dependency graph for model.
func Build(ctx context.Context, model *config.Model, opts ...Option) (*Graph, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "targets", len(model.Targets), "strict", o.strict)

	graph := &Graph{
		Collection: depgraph.NewCollection[*config.Target](),
		byName:     make(map[string]*Node, len(model.Targets)),
	}

	// First pass: create all declared nodes.
	declared := make([]*Node, 0, len(model.Targets))
	for _, target := range model.Targets {
		if _, exists := graph.byName[target.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTarget, target.Name)
		}
		n := depgraph.NewNode(target.Name, target)
		graph.byName[target.Name] = n
		declared = append(declared, n)
	}
	logger.Debug("Build: Node creation complete.", "node_count", len(declared))

	// Second pass: link dependencies.
	external := 0
	for _, n := range declared {
		graph.Collection.AddNode(n)
		for _, depName := range n.Value().DependsOn {
			dep, ok := graph.byName[depName]
			if !ok {
				if o.strict {
					return nil, fmt.Errorf("%w: %q depends on %q", ErrUnknownTarget, n.Name(), depName)
				}
				dep = depgraph.NewNode(depName, &config.Target{Name: depName, External: true})
				graph.byName[depName] = dep
				graph.Collection.AddNode(dep)
				external++
				logger.Debug("Build: Created implicit external node.", "name", depName, "referrer", n.Name())
			}
			n.DependsOn(dep)
		}
	}
	logger.Debug("Build: Node linking complete.", "external_nodes", external)

	logger.Info("Build: Graph construction successful.", "nodes", graph.Collection.Len())
	return graph, nil
}
