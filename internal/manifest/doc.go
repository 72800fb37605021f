// Package manifest loads hand-written dependency trees from HCL files.
//
// A manifest declares one `target` block per node:
//
//	target "app" {
//	  depends_on = ["lib", "util"]
//	  value      = { kind = "binary" }
//	}
//
// `depends_on` and `value` are optional. `value` may be any HCL literal; it
// is converted to plain Go values (string, float64, bool, []any,
// map[string]any) and carried as the node payload.
package manifest
