// SPDX-License-Identifier: MIT
// Package: scanpath/scanfile
//
// schema.go — gohcl decoding targets, one per block kind.

package scanfile

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/roi"
)

// fileSpec is the top level of a scan file. Variables are decoded first; the
// rest is decoded as a scanSpec once they are known.
type fileSpec struct {
	Variables []variableSpec `hcl:"variable,block"`
	Remain    hcl.Body       `hcl:",remain"`
}

type variableSpec struct {
	Name    string         `hcl:"name,label"`
	Default hcl.Expression `hcl:"default,optional"`
}

// scanSpec is the body of a scan file and of a generator "compound" block.
type scanSpec struct {
	Generators []labelledSpec `hcl:"generator,block"`
	Regions    []labelledSpec `hcl:"region,block"`
	Mutators   []mutatorSpec  `hcl:"mutator,block"`
}

// labelledSpec defers decoding of a block until its label is known.
type labelledSpec struct {
	Label string   `hcl:"label,label"`
	Body  hcl.Body `hcl:",remain"`
}

type mutatorSpec struct {
	Kind   string   `hcl:"kind,label"`
	Seed   int64    `hcl:"seed,optional"`
	StdDev float64  `hcl:"std_dev"`
	Axes   []string `hcl:"axes,optional"`
}

// ---------------------------------------------------------------------------
// Generators
// ---------------------------------------------------------------------------

type stepSpec struct {
	Axis  string  `hcl:"axis,optional"`
	Start float64 `hcl:"start"`
	Stop  float64 `hcl:"stop"`
	Step  float64 `hcl:"step"`
}

func (s stepSpec) model() model.StepModel {
	return model.StepModel{Name: s.Axis, Start: s.Start, Stop: s.Stop, Step: s.Step}
}

type multiStepSpec struct {
	Axis     string     `hcl:"axis"`
	Segments []stepSpec `hcl:"segment,block"`
}

func (s multiStepSpec) model() model.MultiStepModel {
	m := model.MultiStepModel{Name: s.Axis}
	for _, seg := range s.Segments {
		m.Steps = append(m.Steps, seg.model())
	}
	return m
}

type arraySpec struct {
	Axis      string    `hcl:"axis"`
	Positions []float64 `hcl:"positions,optional"`
}

type staticSpec struct {
	Size int `hcl:"size"`
}

type repeatedPointSpec struct {
	Axis  string  `hcl:"axis"`
	Value float64 `hcl:"value"`
	Count int     `hcl:"count"`
	Dwell string  `hcl:"dwell,optional"`
}

func (s repeatedPointSpec) model() (model.RepeatedPointModel, error) {
	m := model.RepeatedPointModel{Name: s.Axis, Value: s.Value, Count: s.Count}
	if s.Dwell != "" {
		d, err := time.ParseDuration(s.Dwell)
		if err != nil {
			return m, fmt.Errorf("dwell: %v", err)
		}
		m.Dwell = d
	}
	return m, nil
}

type boxSpec struct {
	FastStart  float64 `hcl:"fast_start"`
	FastLength float64 `hcl:"fast_length"`
	SlowStart  float64 `hcl:"slow_start"`
	SlowLength float64 `hcl:"slow_length"`
}

func (b *boxSpec) box() *model.BoundingBox {
	if b == nil {
		return nil
	}
	return &model.BoundingBox{
		FastAxisStart:  b.FastStart,
		FastAxisLength: b.FastLength,
		SlowAxisStart:  b.SlowStart,
		SlowAxisLength: b.SlowLength,
	}
}

type lineSpec struct {
	XStart float64 `hcl:"x_start"`
	YStart float64 `hcl:"y_start"`
	Length float64 `hcl:"length"`
	Angle  float64 `hcl:"angle,optional"`
}

func (l *lineSpec) line() *model.BoundingLine {
	if l == nil {
		return nil
	}
	return &model.BoundingLine{XStart: l.XStart, YStart: l.YStart, Length: l.Length, Angle: l.Angle}
}

type gridSpec struct {
	FastAxis   string   `hcl:"fast_axis"`
	SlowAxis   string   `hcl:"slow_axis"`
	FastPoints int      `hcl:"fast_points"`
	SlowPoints int      `hcl:"slow_points"`
	Snake      bool     `hcl:"snake,optional"`
	Box        *boxSpec `hcl:"box,block"`
}

type rasterSpec struct {
	FastAxis string   `hcl:"fast_axis"`
	SlowAxis string   `hcl:"slow_axis"`
	FastStep float64  `hcl:"fast_step"`
	SlowStep float64  `hcl:"slow_step"`
	Snake    bool     `hcl:"snake,optional"`
	Box      *boxSpec `hcl:"box,block"`
}

type spiralSpec struct {
	FastAxis string   `hcl:"fast_axis"`
	SlowAxis string   `hcl:"slow_axis"`
	Scale    float64  `hcl:"scale"`
	Box      *boxSpec `hcl:"box,block"`
}

type lissajousSpec struct {
	FastAxis  string   `hcl:"fast_axis"`
	SlowAxis  string   `hcl:"slow_axis"`
	A         float64  `hcl:"a"`
	B         float64  `hcl:"b"`
	Delta     float64  `hcl:"delta,optional"`
	ThetaStep float64  `hcl:"theta_step"`
	Box       *boxSpec `hcl:"box,block"`
}

type oneDEqualSpacingSpec struct {
	XAxis  string    `hcl:"x_axis"`
	YAxis  string    `hcl:"y_axis"`
	Points int       `hcl:"points"`
	Line   *lineSpec `hcl:"line,block"`
}

type oneDStepSpec struct {
	XAxis string    `hcl:"x_axis"`
	YAxis string    `hcl:"y_axis"`
	Step  float64   `hcl:"step"`
	Line  *lineSpec `hcl:"line,block"`
}

// ---------------------------------------------------------------------------
// Regions
// ---------------------------------------------------------------------------

type rectangleSpec struct {
	Axes   []string `hcl:"axes,optional"`
	X      float64  `hcl:"x"`
	Y      float64  `hcl:"y"`
	Width  float64  `hcl:"width"`
	Height float64  `hcl:"height"`
	Angle  float64  `hcl:"angle,optional"`
}

type circleSpec struct {
	Axes   []string `hcl:"axes,optional"`
	X      float64  `hcl:"x"`
	Y      float64  `hcl:"y"`
	Radius float64  `hcl:"radius"`
}

type ellipseSpec struct {
	Axes  []string `hcl:"axes,optional"`
	X     float64  `hcl:"x"`
	Y     float64  `hcl:"y"`
	A     float64  `hcl:"a"`
	B     float64  `hcl:"b"`
	Angle float64  `hcl:"angle,optional"`
}

type polygonSpec struct {
	Axes     []string    `hcl:"axes,optional"`
	Vertices [][]float64 `hcl:"vertices"`
}

func (s polygonSpec) region() (roi.Region, error) {
	vs := make([]roi.Vec, len(s.Vertices))
	for i, v := range s.Vertices {
		if len(v) != 2 {
			return roi.Region{}, fmt.Errorf("vertex %d has %d coordinates (need 2)", i, len(v))
		}
		vs[i] = roi.Vec{X: v[0], Y: v[1]}
	}
	return roi.Polygon(vs...), nil
}

type pointSpec struct {
	Axes []string `hcl:"axes,optional"`
	X    float64  `hcl:"x"`
	Y    float64  `hcl:"y"`
}

type sectorSpec struct {
	Axes        []string `hcl:"axes,optional"`
	X           float64  `hcl:"x"`
	Y           float64  `hcl:"y"`
	InnerRadius float64  `hcl:"inner_radius,optional"`
	Radius      float64  `hcl:"radius"`
	StartAngle  float64  `hcl:"start_angle"`
	EndAngle    float64  `hcl:"end_angle"`
}

type lineRegionSpec struct {
	Axes   []string `hcl:"axes,optional"`
	X      float64  `hcl:"x"`
	Y      float64  `hcl:"y"`
	Length float64  `hcl:"length"`
	Angle  float64  `hcl:"angle,optional"`
}
