// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// line.go — leaf generators sweeping a straight segment of the (x, y) plane.
//
// Regions given to a line generator are never used as filters: a single
// roi.Line region defines the bounding line when the model has none.

package generator

import (
	"math"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
)

func lineLeaf(m model.LineModel, regions []model.RegionBinding, prepare func(model.Model) (sweep, error)) *leaf {
	x, y := m.Axes()
	return &leaf{
		model:   m,
		regions: regions,
		axes:    []string{x, y},
		dims:    [][]string{{x, y}},
		x:       x,
		y:       y,
		fit:     fitLine,
		prepare: prepare,
	}
}

// segment emits n points (x0 + i·dx, y0 + i·dy).
func segment(xName, yName string, n int, x0, y0, dx, dy float64) sweep {
	return sweep{
		size:  n,
		shape: []int{n},
		at: func(i int) position.Position {
			return position.Pair(xName, x0+float64(i)*dx, yName, y0+float64(i)*dy, i)
		},
	}
}

func newOneDEqualSpacing(m model.OneDEqualSpacingModel, regions []model.RegionBinding) (Generator, error) {
	return lineLeaf(m, regions, func(mm model.Model) (sweep, error) {
		e := mm.(model.OneDEqualSpacingModel)
		bl := *e.BoundingLine
		step := bl.Length / float64(e.Points)
		dx, dy := step*math.Cos(bl.Angle), step*math.Sin(bl.Angle)
		return segment(e.XAxisName, e.YAxisName, e.Points, bl.XStart+dx/2, bl.YStart+dy/2, dx, dy), nil
	}), nil
}

func newOneDStep(m model.OneDStepModel, regions []model.RegionBinding) (Generator, error) {
	return lineLeaf(m, regions, func(mm model.Model) (sweep, error) {
		s := mm.(model.OneDStepModel)
		bl := *s.BoundingLine
		n, err := pointCount(model.KindOneDStep, math.Floor(bl.Length/s.Step+countEps)+1)
		if err != nil {
			return sweep{}, err
		}
		dx, dy := s.Step*math.Cos(bl.Angle), s.Step*math.Sin(bl.Angle)
		return segment(s.XAxisName, s.YAxisName, n, bl.XStart, bl.YStart, dx, dy), nil
	}), nil
}
