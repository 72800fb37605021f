package manifest

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a manifest file.
type fileRoot struct {
	Targets []*targetBlock `hcl:"target,block"`
}

// targetBlock represents a `target` block.
type targetBlock struct {
	Name      string         `hcl:"name,label"`
	DependsOn []string       `hcl:"depends_on,optional"`
	Value     hcl.Expression `hcl:"value,optional"`
}
