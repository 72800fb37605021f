// Package depgraph is an in-memory dependency graph. Nodes carry a name and an
// arbitrary payload and record "depends on" edges in both directions.
//
// Two queries are offered:
//
//   - Resolution orders nodes so that every dependency precedes its dependents,
//     either from a single start node (ResolveDependencies) or across every
//     member of a Collection, whatever number of disconnected components it
//     spans. A cycle fails resolution with a *CircularDependencyError.
//   - Root finding (FindRoots) walks parent edges upward to the nodes nothing
//     depends on.
//
// Example:
//
//	a := depgraph.NewNode("a", 1)
//	b := depgraph.NewNode("b", 2)
//	a.DependsOn(b)
//	order, err := depgraph.ResolveDependencies(a) // [b a]
//
// The graph only grows. There is no edge removal, and nothing in this package
// is safe for concurrent use: wire every edge before querying.
package depgraph
