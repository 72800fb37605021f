package depgraph

import (
	"fmt"
	"io"
	"strings"
)

// FormatDependencies renders n and its immediate dependencies on one line,
// e.g. "a => [b, d]". It is a debugging aid.
func FormatDependencies[T any](n *Node[T]) string {
	names := make([]string, len(n.dependencies))
	for i, dep := range n.dependencies {
		names[i] = dep.name
	}
	return fmt.Sprintf("%s => [%s]", n.name, strings.Join(names, ", "))
}

// PrintDependencies writes FormatDependencies(n) followed by a newline to w.
func PrintDependencies[T any](w io.Writer, n *Node[T]) error {
	_, err := fmt.Fprintln(w, FormatDependencies(n))
	return err
}

// Names returns the names of nodes in order.
func Names[T any](nodes []*Node[T]) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.name
	}
	return names
}
