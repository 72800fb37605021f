package depgraph

// FindRoots walks parent edges upward from n and returns every root it
// reaches, where a root is a node nothing depends on. Each root appears once,
// in the order it was first reached. A node without parents is its own root.
//
// Every node is walked at most once, so converging ancestor chains are cheap
// and a cycle without a root above it yields no roots instead of looping.
func FindRoots[T any](n *Node[T]) []*Node[T] {
	var roots []*Node[T]
	visited := make(map[*Node[T]]struct{})

	var walk func(n *Node[T])
	walk = func(n *Node[T]) {
		if _, ok := visited[n]; ok {
			return
		}
		visited[n] = struct{}{}

		if n.IsRoot() {
			roots = append(roots, n)
			return
		}
		for _, parent := range n.parents {
			walk(parent)
		}
	}
	walk(n)

	return roots
}
