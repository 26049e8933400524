// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// area.go — two-axis leaf generators: Grid, Raster, Spiral and Lissajous.
//
// Contract:
//   • Grid and Raster positions carry two dimension groups: [slow] then [fast].
//   • Spiral and Lissajous positions carry one group [fast slow]: their points
//     do not lie on a rectangular lattice.
//   • The fast axis is the first region coordinate (x), the slow axis the second.

package generator

import (
	"math"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
)

const (
	// lissajousMaxTheta is the parameter range of every Lissajous sweep.
	lissajousMaxTheta = 20 * math.Pi
	// spiralAlpha is the angular growth constant: phi(n) = spiralAlpha·√n.
	spiralAlpha = 3.5449077018110318 // √(4π)
	countEps    = 1e-9
)

func areaLeaf(m model.AreaModel, regions []model.RegionBinding, lattice bool, prepare func(model.Model) (sweep, error)) *leaf {
	fast, slow := m.Axes()
	l := &leaf{
		model:   m,
		regions: regions,
		x:       fast,
		y:       slow,
		fit:     fitArea,
		prepare: prepare,
		filters: true,
	}
	if lattice {
		l.axes = []string{slow, fast}
		l.dims = [][]string{{slow}, {fast}}
	} else {
		l.axes = []string{fast, slow}
		l.dims = [][]string{{fast, slow}}
	}
	return l
}

// lattice sweeps a fastN × slowN grid row by row.
type lattice struct {
	fastName, slowName string
	fastN, slowN       int
	snake              bool
	fast, slow         func(j int) float64
}

func (g lattice) sweep() sweep {
	return sweep{
		size:  g.fastN * g.slowN,
		shape: []int{g.slowN, g.fastN},
		at:    g.at,
	}
}

func (g lattice) at(i int) position.Position {
	row, col := i/g.fastN, i%g.fastN
	if g.snake && row%2 == 1 {
		col = g.fastN - 1 - col
	}
	return position.Grid(g.slowName, row, g.slow(row), g.fastName, col, g.fast(col))
}

func newGrid(m model.GridModel, regions []model.RegionBinding) (Generator, error) {
	return areaLeaf(m, regions, true, func(mm model.Model) (sweep, error) {
		g := mm.(model.GridModel)
		b := *g.BoundingBox
		fastStep := b.FastAxisLength / float64(g.FastAxisPoints)
		slowStep := b.SlowAxisLength / float64(g.SlowAxisPoints)
		return lattice{
			fastName: g.FastAxisName,
			slowName: g.SlowAxisName,
			fastN:    g.FastAxisPoints,
			slowN:    g.SlowAxisPoints,
			snake:    g.Snake,
			fast:     func(j int) float64 { return b.FastAxisStart + fastStep/2 + float64(j)*fastStep },
			slow:     func(j int) float64 { return b.SlowAxisStart + slowStep/2 + float64(j)*slowStep },
		}.sweep(), nil
	}), nil
}

func newRaster(m model.RasterModel, regions []model.RegionBinding) (Generator, error) {
	return areaLeaf(m, regions, true, func(mm model.Model) (sweep, error) {
		r := mm.(model.RasterModel)
		b := *r.BoundingBox
		fastN, err := pointCount(model.KindRaster, math.Floor(math.Abs(b.FastAxisLength)/r.FastAxisStep+1+countEps))
		if err != nil {
			return sweep{}, err
		}
		slowN, err := pointCount(model.KindRaster, math.Floor(math.Abs(b.SlowAxisLength)/r.SlowAxisStep+1+countEps))
		if err != nil {
			return sweep{}, err
		}
		if _, err := pointCount(model.KindRaster, float64(fastN)*float64(slowN)); err != nil {
			return sweep{}, err
		}
		fastStep := math.Copysign(r.FastAxisStep, b.FastAxisLength)
		slowStep := math.Copysign(r.SlowAxisStep, b.SlowAxisLength)
		return lattice{
			fastName: r.FastAxisName,
			slowName: r.SlowAxisName,
			fastN:    fastN,
			slowN:    slowN,
			snake:    r.Snake,
			fast:     func(j int) float64 { return b.FastAxisStart + float64(j)*fastStep },
			slow:     func(j int) float64 { return b.SlowAxisStart + float64(j)*slowStep },
		}.sweep(), nil
	}), nil
}

func newSpiral(m model.SpiralModel, regions []model.RegionBinding) (Generator, error) {
	return areaLeaf(m, regions, false, func(mm model.Model) (sweep, error) {
		s := mm.(model.SpiralModel)
		b := *s.BoundingBox
		xc := b.FastAxisStart + b.FastAxisLength/2
		yc := b.SlowAxisStart + b.SlowAxisLength/2
		beta := s.Scale / (2 * math.Pi)
		maxR := math.Hypot(b.FastAxisLength/2, b.SlowAxisLength/2)

		// radius(n) = |beta|·alpha·√n ≤ maxR
		turns := maxR / (math.Abs(beta) * spiralAlpha)
		n, err := pointCount(model.KindSpiral, math.Floor(turns*turns+countEps)+1)
		if err != nil {
			return sweep{}, err
		}
		return sweep{
			size:  n,
			shape: []int{n},
			at: func(i int) position.Position {
				phi := spiralAlpha * math.Sqrt(float64(i))
				r := beta * phi
				return position.Pair(s.FastAxisName, xc+r*math.Sin(phi), s.SlowAxisName, yc+r*math.Cos(phi), i)
			},
		}, nil
	}), nil
}

func newLissajous(m model.LissajousModel, regions []model.RegionBinding) (Generator, error) {
	return areaLeaf(m, regions, false, func(mm model.Model) (sweep, error) {
		l := mm.(model.LissajousModel)
		b := *l.BoundingBox
		xc := b.FastAxisStart + b.FastAxisLength/2
		yc := b.SlowAxisStart + b.SlowAxisLength/2
		rx, ry := b.FastAxisLength/2, b.SlowAxisLength/2
		n, err := pointCount(model.KindLissajous, math.Floor(lissajousMaxTheta/l.ThetaStep+countEps)+1)
		if err != nil {
			return sweep{}, err
		}
		return sweep{
			size:  n,
			shape: []int{n},
			at: func(i int) position.Position {
				theta := float64(i) * l.ThetaStep
				x := xc + rx*math.Sin(l.A*theta+l.Delta)
				y := yc + ry*math.Cos(l.B*theta)
				return position.Pair(l.FastAxisName, x, l.SlowAxisName, y, i)
			},
		}, nil
	}), nil
}
