package depgraph

// Collection is an unordered bag of nodes that may span several disconnected
// dependency components. It resolves all of them into one sequence.
//
// Membership is not deduplicated; adding a node twice only costs a redundant
// membership check during resolution.
type Collection[T any] struct {
	nodes []*Node[T]
}

// NewCollection returns a collection holding the given nodes in order.
func NewCollection[T any](nodes ...*Node[T]) *Collection[T] {
	c := &Collection[T]{
		nodes: make([]*Node[T], 0, len(nodes)),
	}
	c.nodes = append(c.nodes, nodes...)
	return c
}

// AddNode appends n to the collection's membership list.
func (c *Collection[T]) AddNode(n *Node[T]) {
	c.nodes = append(c.nodes, n)
}

// Nodes returns a copy of the membership list in insertion order.
func (c *Collection[T]) Nodes() []*Node[T] {
	nodes := make([]*Node[T], len(c.nodes))
	copy(nodes, c.nodes)
	return nodes
}

// Len returns the number of membership entries, duplicates included.
func (c *Collection[T]) Len() int {
	return len(c.nodes)
}

// ResolveDependencies resolves every member into a single sequence where each
// node follows its dependencies and no node appears twice.
//
// Members are processed in insertion order. A member already resolved through
// an earlier one is skipped, so components come out in the order their first
// member was added. Any cycle aborts the whole call and no sequence is
// returned.
func (c *Collection[T]) ResolveDependencies() ([]*Node[T], error) {
	r := newResolver[T](nil)
	for _, n := range c.nodes {
		if _, ok := r.done[n]; ok {
			continue
		}
		// Each member starts a fresh traversal; only finished nodes carry over.
		clear(r.seen)
		if err := r.visit(n); err != nil {
			return nil, err
		}
	}
	return r.resolved, nil
}
