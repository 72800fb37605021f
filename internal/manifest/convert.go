package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source.
// The decoder fills omitted optional attributes with a zero-width placeholder
// expression, so a nil check alone is insufficient.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// decodeValue evaluates a target's `value` attribute into plain Go data:
// string, float64, bool, []any, map[string]any or nil. An omitted attribute
// decodes to nil. Manifests have no variables, so evaluation runs without an
// eval context.
func decodeValue(expr hcl.Expression) (any, error) {
	if !isExprDefined(expr) {
		return nil, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	return nativeValue(v, "value")
}

// nativeValue converts v, found at path inside the value attribute.
func nativeValue(v cty.Value, path string) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return f, nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0, v.LengthInt())
		for i, it := 0, v.ElementIterator(); it.Next(); i++ {
			_, elem := it.Element()
			item, err := nativeValue(elem, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		fields := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			name := key.AsString()
			field, err := nativeValue(elem, path+"."+name)
			if err != nil {
				return nil, err
			}
			fields[name] = field
		}
		return fields, nil
	}

	return nil, fmt.Errorf("%s: %s is not allowed in a target value", path, ty.FriendlyName())
}
