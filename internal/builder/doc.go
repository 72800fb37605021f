/*
Package builder is responsible for the construction of the dependency graph.
It acts as the bridge between the static configuration model (defined in the
'config' package) and the graph library (the 'depgraph' package).

The primary artifact produced by this package is a *Graph: a depgraph
Collection of every target plus a by-name index.

The graph construction is a two-phase process:

 1. Node Creation: The builder iterates through the model's targets in
    declaration order, creating one node per target. Target names must be
    unique.

 2. Dependency Linking: For each target, the `depends_on` names are looked
    up and wired in declaration order. A name that no target declares either
    becomes an implicit external node, or, in strict mode, fails the build.

No cycle check happens here; cycles surface when the graph is resolved.
*/
package builder
