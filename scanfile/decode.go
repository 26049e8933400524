// SPDX-License-Identifier: MIT
// Package: scanpath/scanfile
//
// decode.go — Parse and Load.
//
// Decoding runs in two passes:
//   1) variable blocks, evaluated against the base context (pi, functions);
//   2) generator, region and mutator blocks, evaluated with var.<name> bound.
//
// Block order is preserved: the first generator block is the outermost.

package scanfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/scanpath/internal/ctxlog"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/roi"
	"github.com/zclconf/go-cty/cty"
)

// Option configures Parse and Load.
type Option func(*options)

type options struct {
	vars map[string]cty.Value
}

// WithVariables supplies values for var.<name> references. They override
// defaults declared in the file.
func WithVariables(vars map[string]cty.Value) Option {
	return func(o *options) {
		if o.vars == nil {
			o.vars = make(map[string]cty.Value, len(vars))
		}
		for k, v := range vars {
			o.vars[k] = v
		}
	}
}

// Parse decodes the HCL scan description in src. filename is used in
// diagnostics only.
func Parse(ctx context.Context, src []byte, filename string, opts ...Option) (model.CompoundModel, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return model.CompoundModel{}, fmt.Errorf("Parse %s: %w: %w", filename, ErrDecode, diags)
	}
	return decodeFile(ctx, file, filename, opts)
}

// Load reads and decodes the HCL scan description at path.
func Load(ctx context.Context, path string, opts ...Option) (model.CompoundModel, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return model.CompoundModel{}, fmt.Errorf("Load %s: %w: %w", path, ErrDecode, diags)
	}
	return decodeFile(ctx, file, path, opts)
}

func decodeFile(ctx context.Context, file *hcl.File, name string, opts []Option) (model.CompoundModel, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding scan file.", "path", name)

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var fs fileSpec
	if diags := gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return model.CompoundModel{}, fmt.Errorf("decode %s: %w: %w", name, ErrDecode, diags)
	}

	base := baseContext()
	vars, diags := resolveVariables(base, fs.Variables, o.vars)
	if diags.HasErrors() {
		return model.CompoundModel{}, fmt.Errorf("decode %s: %w: %w", name, ErrDecode, diags)
	}
	for k := range o.vars {
		if !declared(fs.Variables, k) {
			logger.Warn("Variable supplied but not declared in scan file.", "path", name, "variable", k)
		}
	}
	evalCtx := withVariables(base, vars)

	var body scanSpec
	if diags := gohcl.DecodeBody(fs.Remain, evalCtx, &body); diags.HasErrors() {
		return model.CompoundModel{}, fmt.Errorf("decode %s: %w: %w", name, ErrDecode, diags)
	}
	m, diags := body.compound(evalCtx)
	if diags.HasErrors() {
		return model.CompoundModel{}, fmt.Errorf("decode %s: %w: %w", name, ErrDecode, diags)
	}
	if err := m.Validate(); err != nil {
		return model.CompoundModel{}, fmt.Errorf("decode %s: %w", name, err)
	}

	logger.Debug("Decoded scan file.", "path", name,
		"generators", len(m.Models), "regions", len(m.Regions), "mutators", len(m.Mutators))
	return m, nil
}

func resolveVariables(ctx *hcl.EvalContext, decl []variableSpec, supplied map[string]cty.Value) (map[string]cty.Value, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	vars := make(map[string]cty.Value, len(decl)+len(supplied))
	for _, v := range decl {
		if _, dup := vars[v.Name]; dup {
			diags = append(diags, errorDiag("Duplicate variable", fmt.Sprintf("Variable %q is declared more than once.", v.Name), v.Default.Range().Ptr()))
			continue
		}
		if sv, ok := supplied[v.Name]; ok {
			vars[v.Name] = sv
			continue
		}
		val, vdiags := v.Default.Value(ctx)
		diags = append(diags, vdiags...)
		if vdiags.HasErrors() {
			continue
		}
		if val.IsNull() {
			diags = append(diags, errorDiag("Missing variable value", fmt.Sprintf("Variable %q has no default and no value was supplied.", v.Name), v.Default.Range().Ptr()))
			continue
		}
		vars[v.Name] = val
	}
	for k, sv := range supplied {
		if _, ok := vars[k]; !ok {
			vars[k] = sv
		}
	}
	return vars, diags
}

func declared(decl []variableSpec, name string) bool {
	for _, v := range decl {
		if v.Name == name {
			return true
		}
	}
	return false
}

// compound converts a decoded body into a CompoundModel.
func (s scanSpec) compound(ctx *hcl.EvalContext) (model.CompoundModel, hcl.Diagnostics) {
	var (
		m     model.CompoundModel
		diags hcl.Diagnostics
	)
	for _, g := range s.Generators {
		cm, gdiags := decodeGenerator(g, ctx)
		diags = append(diags, gdiags...)
		if cm != nil {
			m.Models = append(m.Models, cm)
		}
	}
	for _, r := range s.Regions {
		b, rdiags := decodeRegion(r, ctx)
		diags = append(diags, rdiags...)
		if !rdiags.HasErrors() {
			m.Regions = append(m.Regions, b)
		}
	}
	for _, mu := range s.Mutators {
		if mu.Kind != "random_offset" {
			diags = append(diags, errorDiag("Unknown mutator", fmt.Sprintf("Mutator %q is not supported; use \"random_offset\".", mu.Kind), nil))
			continue
		}
		m.Mutators = append(m.Mutators, model.RandomOffsetModel{Seed: mu.Seed, StdDev: mu.StdDev, Axes: mu.Axes})
	}
	return m, diags
}

// decodeGenerator decodes one generator block by its kind label. A nil model
// is returned with error diagnostics.
func decodeGenerator(b labelledSpec, ctx *hcl.EvalContext) (model.Model, hcl.Diagnostics) {
	rng := b.Body.MissingItemRange()
	decode := func(target interface{}) hcl.Diagnostics {
		return gohcl.DecodeBody(b.Body, ctx, target)
	}
	var (
		m     model.Model
		diags hcl.Diagnostics
	)
	switch model.Kind(b.Label) {
	case model.KindStep:
		var s stepSpec
		diags = decode(&s)
		m = s.model()
	case model.KindMultiStep:
		var s multiStepSpec
		diags = decode(&s)
		m = s.model()
	case model.KindArray:
		var s arraySpec
		diags = decode(&s)
		m = model.ArrayModel{Name: s.Axis, Positions: s.Positions}
	case model.KindStatic:
		var s staticSpec
		diags = decode(&s)
		m = model.StaticModel{Size: s.Size}
	case model.KindRepeatedPoint:
		var s repeatedPointSpec
		if diags = decode(&s); !diags.HasErrors() {
			rp, err := s.model()
			if err != nil {
				diags = append(diags, errorDiag("Invalid repeated_point", err.Error(), &rng))
			}
			m = rp
		}
	case model.KindGrid:
		var s gridSpec
		diags = decode(&s)
		m = model.GridModel{
			FastAxisName: s.FastAxis, SlowAxisName: s.SlowAxis,
			FastAxisPoints: s.FastPoints, SlowAxisPoints: s.SlowPoints,
			Snake: s.Snake, BoundingBox: s.Box.box(),
		}
	case model.KindRaster:
		var s rasterSpec
		diags = decode(&s)
		m = model.RasterModel{
			FastAxisName: s.FastAxis, SlowAxisName: s.SlowAxis,
			FastAxisStep: s.FastStep, SlowAxisStep: s.SlowStep,
			Snake: s.Snake, BoundingBox: s.Box.box(),
		}
	case model.KindSpiral:
		var s spiralSpec
		diags = decode(&s)
		m = model.SpiralModel{FastAxisName: s.FastAxis, SlowAxisName: s.SlowAxis, Scale: s.Scale, BoundingBox: s.Box.box()}
	case model.KindLissajous:
		var s lissajousSpec
		diags = decode(&s)
		m = model.LissajousModel{
			FastAxisName: s.FastAxis, SlowAxisName: s.SlowAxis,
			A: s.A, B: s.B, Delta: s.Delta, ThetaStep: s.ThetaStep,
			BoundingBox: s.Box.box(),
		}
	case model.KindOneDEqualSpacing:
		var s oneDEqualSpacingSpec
		diags = decode(&s)
		m = model.OneDEqualSpacingModel{XAxisName: s.XAxis, YAxisName: s.YAxis, Points: s.Points, BoundingLine: s.Line.line()}
	case model.KindOneDStep:
		var s oneDStepSpec
		diags = decode(&s)
		m = model.OneDStepModel{XAxisName: s.XAxis, YAxisName: s.YAxis, Step: s.Step, BoundingLine: s.Line.line()}
	case model.KindCompound:
		var s scanSpec
		if diags = decode(&s); !diags.HasErrors() {
			var cdiags hcl.Diagnostics
			m, cdiags = s.compound(ctx)
			diags = append(diags, cdiags...)
		}
	default:
		return nil, hcl.Diagnostics{errorDiag("Unknown generator kind", fmt.Sprintf("Generator kind %q is not supported.", b.Label), &rng)}
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return m, diags
}

// decodeRegion decodes one region block by its shape label.
func decodeRegion(b labelledSpec, ctx *hcl.EvalContext) (model.RegionBinding, hcl.Diagnostics) {
	rng := b.Body.MissingItemRange()
	shape, ok := roi.ParseShape(b.Label)
	if !ok {
		return model.RegionBinding{}, hcl.Diagnostics{errorDiag("Unknown region shape", fmt.Sprintf("Region shape %q is not supported.", b.Label), &rng)}
	}

	var (
		r     roi.Region
		axes  []string
		diags hcl.Diagnostics
	)
	decode := func(target interface{}) hcl.Diagnostics {
		return gohcl.DecodeBody(b.Body, ctx, target)
	}
	switch shape {
	case roi.ShapeRectangle:
		var s rectangleSpec
		diags = decode(&s)
		axes = s.Axes
		r = roi.RotatedRectangle(s.X, s.Y, s.Width, s.Height, s.Angle)
	case roi.ShapeCircle:
		var s circleSpec
		diags = decode(&s)
		axes = s.Axes
		r = roi.Circle(s.X, s.Y, s.Radius)
	case roi.ShapeEllipse:
		var s ellipseSpec
		diags = decode(&s)
		axes = s.Axes
		r = roi.Ellipse(s.X, s.Y, s.A, s.B, s.Angle)
	case roi.ShapePolygon:
		var s polygonSpec
		diags = decode(&s)
		axes = s.Axes
		if !diags.HasErrors() {
			var err error
			if r, err = s.region(); err != nil {
				diags = append(diags, errorDiag("Invalid polygon", err.Error(), &rng))
			}
		}
	case roi.ShapePoint:
		var s pointSpec
		diags = decode(&s)
		axes = s.Axes
		r = roi.Point(s.X, s.Y)
	case roi.ShapeSector:
		var s sectorSpec
		diags = decode(&s)
		axes = s.Axes
		r = roi.Sector(s.X, s.Y, s.InnerRadius, s.Radius, s.StartAngle, s.EndAngle)
	case roi.ShapeLine:
		var s lineRegionSpec
		diags = decode(&s)
		axes = s.Axes
		r = roi.Line(s.X, s.Y, s.Length, s.Angle)
	}
	return model.RegionBinding{Region: r, Axes: axes}, diags
}

func errorDiag(summary, detail string, subject *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{Severity: hcl.DiagError, Summary: summary, Detail: detail, Subject: subject}
}
