// SPDX-License-Identifier: MIT
// Package: scanpath/scanfile
//
// eval.go — the expression environment of scan files.

package scanfile

import (
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// baseContext holds the constants and functions; variables are added per file.
func baseContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
		},
		Functions: map[string]function.Function{
			"abs":     stdlib.AbsoluteFunc,
			"min":     stdlib.MinFunc,
			"max":     stdlib.MaxFunc,
			"floor":   stdlib.FloorFunc,
			"ceil":    stdlib.CeilFunc,
			"pow":     stdlib.PowFunc,
			"sqrt":    unary(math.Sqrt),
			"sin":     unary(math.Sin),
			"cos":     unary(math.Cos),
			"radians": unary(func(deg float64) float64 { return deg * math.Pi / 180 }),
		},
	}
}

// unary lifts a float64 function into a cty function of one number.
func unary(fn func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{Name: "num", Type: cty.Number}},
		Type:   function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			f, _ := args[0].AsBigFloat().Float64()
			return cty.NumberFloatVal(fn(f)), nil
		},
	})
}

// withVariables returns a child of ctx exposing vars as var.<name>.
func withVariables(ctx *hcl.EvalContext, vars map[string]cty.Value) *hcl.EvalContext {
	child := ctx.NewChild()
	obj := cty.EmptyObjectVal
	if len(vars) > 0 {
		obj = cty.ObjectVal(vars)
	}
	child.Variables = map[string]cty.Value{"var": obj}
	return child
}
