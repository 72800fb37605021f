package depgraph

// Node is a single vertex of a dependency graph. It carries an identifying
// name, used in diagnostics only, and an opaque payload value.
//
// Edges are recorded in both directions: dependencies are the nodes this node
// depends on, parents are the nodes that depend on this node. Both lists keep
// insertion order, which is the order resolution visits them in.
//
// A Node is not safe for concurrent mutation. All edges must be in place
// before any resolution or root-finding query runs.
type Node[T any] struct {
	name         string
	value        T
	dependencies []*Node[T]
	parents      []*Node[T]
}

// NewNode creates a node with the given name and payload. Name and value are
// immutable for the lifetime of the node.
func NewNode[T any](name string, value T) *Node[T] {
	return &Node[T]{
		name:  name,
		value: value,
	}
}

// Name returns the node's diagnostic name.
func (n *Node[T]) Name() string {
	return n.name
}

// Value returns the payload stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// DependsOn records that n depends on other. other gains n as a parent.
//
// No validation happens here: repeated calls add duplicate edges, and a node
// may depend on itself. Both are tolerated; a self edge surfaces later as a
// CircularDependencyError during resolution.
func (n *Node[T]) DependsOn(other *Node[T]) {
	n.dependencies = append(n.dependencies, other)
	other.parents = append(other.parents, n)
}

// Dependencies returns a copy of the nodes n depends on, in insertion order.
func (n *Node[T]) Dependencies() []*Node[T] {
	deps := make([]*Node[T], len(n.dependencies))
	copy(deps, n.dependencies)
	return deps
}

// Parents returns a copy of the nodes that depend on n, in insertion order.
func (n *Node[T]) Parents() []*Node[T] {
	parents := make([]*Node[T], len(n.parents))
	copy(parents, n.parents)
	return parents
}

// IsRoot reports whether nothing depends on n.
func (n *Node[T]) IsRoot() bool {
	return len(n.parents) == 0
}

// String implements fmt.Stringer.
func (n *Node[T]) String() string {
	return n.name
}
