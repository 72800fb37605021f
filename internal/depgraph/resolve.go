package depgraph

import "slices"

// ResolveDependencies returns every node reachable from start, ordered so that
// each node appears after all of its dependencies. Dependencies are visited
// depth-first in insertion order, so the result is deterministic.
//
// If a dependency is found on the active traversal path, resolution stops and
// a *CircularDependencyError naming the closing edge is returned.
func ResolveDependencies[T any](start *Node[T]) ([]*Node[T], error) {
	return ResolveInto(start, nil)
}

// ResolveInto resolves start like ResolveDependencies, appending to an already
// resolved sequence. Nodes present in resolved are treated as done and are not
// visited again, which lets several roots share one result. The extended
// sequence is returned.
//
// The seen set always starts empty; only the resolved set carries over
// between calls. resolved itself is never written to, so several calls may
// extend the same base. On error the returned slice is nil.
func ResolveInto[T any](start *Node[T], resolved []*Node[T]) ([]*Node[T], error) {
	r := newResolver(slices.Clip(resolved))
	if _, ok := r.done[start]; ok {
		return r.resolved, nil
	}
	if err := r.visit(start); err != nil {
		return nil, err
	}
	return r.resolved, nil
}

// resolver holds the state of one resolution call.
type resolver[T any] struct {
	// resolved accumulates finished nodes in completion order.
	resolved []*Node[T]
	// done indexes resolved by identity.
	done map[*Node[T]]struct{}
	// seen is every node entered during this call. A node that is seen but
	// not done is on the current recursion path.
	seen map[*Node[T]]struct{}
}

func newResolver[T any](resolved []*Node[T]) *resolver[T] {
	r := &resolver[T]{
		resolved: resolved,
		done:     make(map[*Node[T]]struct{}, len(resolved)),
		seen:     make(map[*Node[T]]struct{}),
	}
	for _, n := range resolved {
		r.done[n] = struct{}{}
	}
	return r
}

func (r *resolver[T]) visit(n *Node[T]) error {
	r.seen[n] = struct{}{}
	for _, dep := range n.dependencies {
		if _, ok := r.done[dep]; ok {
			continue
		}
		if _, ok := r.seen[dep]; ok {
			return &CircularDependencyError{From: n.name, To: dep.name}
		}
		if err := r.visit(dep); err != nil {
			return err
		}
	}
	r.resolved = append(r.resolved, n)
	r.done[n] = struct{}{}
	return nil
}
