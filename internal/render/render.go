// Package render formats a resolution result for the terminal or for other
// tools to consume.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatTable}

// ErrUnknownFormat is returned for a format name not in Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Entry is one resolved node.
type Entry struct {
	Name      string   `json:"name" yaml:"name"`
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	External  bool     `json:"external,omitempty" yaml:"external,omitempty"`
}

// Result is a dependency resolution ready for output.
type Result struct {
	Source string `json:"source" yaml:"source"`
	// Target is set when only one target's subgraph was resolved.
	Target string  `json:"target,omitempty" yaml:"target,omitempty"`
	Order  []Entry `json:"order" yaml:"order"`
	// RootsOf and Roots are set when a root query was made.
	RootsOf string   `json:"roots_of,omitempty" yaml:"roots_of,omitempty"`
	Roots   []string `json:"roots,omitempty" yaml:"roots,omitempty"`
}

// OrderNames returns the names in Order.
func (r *Result) OrderNames() []string {
	names := make([]string, len(r.Order))
	for i, e := range r.Order {
		names[i] = e.Name
	}
	return names
}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Write renders r to w in the named format.
func Write(w io.Writer, format string, r *Result) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, r)
	default:
		return fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

func writeText(w io.Writer, r *Result) error {
	var sb strings.Builder
	if r.Target != "" {
		fmt.Fprintf(&sb, "Resolution order for %s (%s):\n", r.Target, r.Source)
	} else {
		fmt.Fprintf(&sb, "Resolution order (%s):\n", r.Source)
	}
	for i, e := range r.Order {
		fmt.Fprintf(&sb, "%4d. %s", i+1, e.Name)
		if e.External {
			sb.WriteString(" (external)")
		}
		sb.WriteByte('\n')
	}
	if r.RootsOf != "" {
		fmt.Fprintf(&sb, "Roots of %s: %s\n", r.RootsOf, strings.Join(r.Roots, ", "))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTable(w io.Writer, r *Result) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Resolution order (%s)", r.Source)
	t.AppendHeader(table.Row{"#", "TARGET", "DEPENDS ON", "EXTERNAL"})
	for i, e := range r.Order {
		t.AppendRow(table.Row{i + 1, e.Name, strings.Join(e.DependsOn, ", "), e.External})
	}
	if r.RootsOf != "" {
		t.AppendFooter(table.Row{"", "roots of " + r.RootsOf, strings.Join(r.Roots, ", "), ""})
	}
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
