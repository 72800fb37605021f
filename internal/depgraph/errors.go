package depgraph

import (
	"errors"
	"fmt"
)

// ErrCircularDependency is matched by every CircularDependencyError via
// errors.Is.
var ErrCircularDependency = errors.New("circular dependency detected")

// CircularDependencyError reports the edge that closed a cycle during
// resolution. From is the node being resolved and To is the dependency that
// was already on the active traversal path. The pair names the closing edge
// only, not the whole cycle.
type CircularDependencyError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("%s: %s => %s", ErrCircularDependency, e.From, e.To)
}

// Is lets errors.Is(err, ErrCircularDependency) match.
func (e *CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}
