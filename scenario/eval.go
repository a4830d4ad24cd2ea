package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridpath/grid"
)

// evalContext exposes the scenario variables and functions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"density_default": cty.NumberFloatVal(grid.DefaultDensity),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

// exprValue evaluates expr, returning a null value when the attribute was omitted.
func exprValue(expr hcl.Expression, ctx *hcl.EvalContext) (cty.Value, hcl.Diagnostics) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}

	return expr.Value(ctx)
}

// decodeAs converts val to want and then into the Go value target points to.
func decodeAs(expr hcl.Expression, val cty.Value, want cty.Type, target any) hcl.Diagnostics {
	conv, err := convert.Convert(val, want)
	if err == nil {
		err = gocty.FromCtyValue(conv, target)
	}
	if err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsuitable value type",
			Detail:   fmt.Sprintf("Want %s: %s", want.FriendlyName(), err),
			Subject:  expr.Range().Ptr(),
		}}
	}

	return nil
}

// decodeLocation reads an optional [row, column] pair.
func decodeLocation(expr hcl.Expression, ctx *hcl.EvalContext) (*grid.Location, hcl.Diagnostics) {
	val, diags := exprValue(expr, ctx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	var pair []int
	if d := decodeAs(expr, val, cty.List(cty.Number), &pair); d.HasErrors() {
		return nil, append(diags, d...)
	}
	if len(pair) != 2 {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid location",
			Detail:   fmt.Sprintf("A location is [row, column]; got %d elements.", len(pair)),
			Subject:  expr.Range().Ptr(),
		})
	}

	return &grid.Location{Row: pair[0], Column: pair[1]}, diags
}

// decodeLocations reads an optional list of [row, column] pairs.
func decodeLocations(expr hcl.Expression, ctx *hcl.EvalContext) ([]grid.Location, hcl.Diagnostics) {
	val, diags := exprValue(expr, ctx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	var pairs [][]int
	if d := decodeAs(expr, val, cty.List(cty.List(cty.Number)), &pairs); d.HasErrors() {
		return nil, append(diags, d...)
	}
	out := make([]grid.Location, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid location",
				Detail:   fmt.Sprintf("Element %d is not a [row, column] pair.", i),
				Subject:  expr.Range().Ptr(),
			})
		}
		out = append(out, grid.Location{Row: p[0], Column: p[1]})
	}

	return out, diags
}

// decodeLines reads an optional list of strings.
func decodeLines(expr hcl.Expression, ctx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	val, diags := exprValue(expr, ctx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	var lines []string
	if d := decodeAs(expr, val, cty.List(cty.String), &lines); d.HasErrors() {
		return nil, append(diags, d...)
	}

	return lines, diags
}
