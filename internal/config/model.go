package config

// Model is the unified, format-agnostic representation of a set of build
// targets and the dependencies declared between them.
type Model struct {
	// Source describes where the targets were loaded from, for reporting.
	Source string
	// Targets keeps declaration order, which drives resolution order.
	Targets []*Target
}

// Target is a single named unit of a dependency tree, e.g. a library.
type Target struct {
	Name string
	// DependsOn lists the names this target depends on, in declaration order.
	DependsOn []string
	// Value is an opaque payload carried into the graph node.
	Value any
	// External marks a target that was referenced but never declared.
	External bool
}

// TargetNames returns the names of all targets in declaration order.
func (m *Model) TargetNames() []string {
	names := make([]string, len(m.Targets))
	for i, t := range m.Targets {
		names[i] = t.Name
	}
	return names
}
