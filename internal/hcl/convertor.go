package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/schemagen/internal/options"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ctyTypeFor returns the CTY type an option of the given kind is converted to.
func ctyTypeFor(kind options.Kind) cty.Type {
	switch kind {
	case options.KindBool:
		return cty.Bool
	case options.KindList:
		return cty.List(cty.String)
	default:
		return cty.String
	}
}

// decodeOption evaluates an attribute expression and converts the result to
// an options.Value of the option's kind. A single string is accepted for a
// list option and becomes a one-element list.
func decodeOption(opt options.Option, expr hcl.Expression, evalCtx *hcl.EvalContext) (options.Value, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return options.Value{}, diags
	}
	if val.IsNull() {
		return options.Value{}, fmt.Errorf("option %s must not be null", opt)
	}
	if !val.IsWhollyKnown() {
		return options.Value{}, fmt.Errorf("option %s has an unknown value", opt)
	}

	kind := opt.Kind()
	if kind == options.KindList && val.Type().IsPrimitiveType() {
		val = cty.TupleVal([]cty.Value{val})
	}

	want := ctyTypeFor(kind)
	converted, err := convert.Convert(val, want)
	if err != nil {
		return options.Value{}, fmt.Errorf("option %s: cannot convert %s to %s: %w",
			opt, val.Type().FriendlyName(), want.FriendlyName(), err)
	}

	switch kind {
	case options.KindBool:
		var b bool
		if err := gocty.FromCtyValue(converted, &b); err != nil {
			return options.Value{}, fmt.Errorf("option %s: %w", opt, err)
		}
		return options.BoolValue(b), nil
	case options.KindList:
		var vs []string
		if err := gocty.FromCtyValue(converted, &vs); err != nil {
			return options.Value{}, fmt.Errorf("option %s: %w", opt, err)
		}
		return options.ListValue(vs...), nil
	case options.KindResource:
		var s string
		if err := gocty.FromCtyValue(converted, &s); err != nil {
			return options.Value{}, fmt.Errorf("option %s: %w", opt, err)
		}
		return options.ResourceValue(options.Resource(s)), nil
	default:
		var s string
		if err := gocty.FromCtyValue(converted, &s); err != nil {
			return options.Value{}, fmt.Errorf("option %s: %w", opt, err)
		}
		return options.StringValue(s), nil
	}
}
