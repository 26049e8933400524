// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// autofit.go — derive bounding geometry from regions of interest.
//
// Contract:
//   • Fitting happens only when the model has no geometry of its own; an
//     explicit box or line is kept unchanged.
//   • A box is the union of the bounds of every region on the model's plane;
//     a binding on the swapped plane (slow, fast) has its bounds transposed.
//   • Line regions never fit or filter an area model, and only a single
//     line region may fit a line model.

package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/roi"
)

// fitArea returns m with a bounding box covering the regions bound to its
// plane. m must implement model.AreaModel.
func fitArea(m model.Model, regions []model.RegionBinding) (model.Model, error) {
	am := m.(model.AreaModel)
	for i, b := range regions {
		if b.Region.IsLinear() {
			return nil, fmt.Errorf("%s: region %d: line region on an area generator: %w", m.Kind(), i, ErrRegionMismatch)
		}
	}
	if am.Box() != nil {
		return m, nil
	}

	fast, slow := am.Axes()
	var (
		union roi.Rect
		found bool
	)
	for _, b := range regions {
		r, ok := planeBounds(b, fast, slow)
		if !ok {
			continue
		}
		if found {
			union = union.Union(r)
		} else {
			union, found = r, true
		}
	}
	if !found {
		return m, nil
	}
	return am.WithBox(model.BoundingBox{
		FastAxisStart:  union.MinX,
		FastAxisLength: union.Width(),
		SlowAxisStart:  union.MinY,
		SlowAxisLength: union.Height(),
	}), nil
}

// planeBounds returns the bounds of b's region expressed on the (x, y) plane.
func planeBounds(b model.RegionBinding, x, y string) (roi.Rect, bool) {
	r := b.Region.Bounds()
	switch {
	case !b.IsBound(), b.Axes[0] == x && b.Axes[1] == y:
		return r, true
	case b.Axes[0] == y && b.Axes[1] == x:
		return roi.Rect{MinX: r.MinY, MinY: r.MinX, MaxX: r.MaxY, MaxY: r.MaxX}, true
	default:
		return roi.Rect{}, false
	}
}

// fitLine returns m with the bounding line described by its single line
// region. m must implement model.LineModel.
func fitLine(m model.Model, regions []model.RegionBinding) (model.Model, error) {
	lm := m.(model.LineModel)
	for i, b := range regions {
		if !b.Region.IsLinear() {
			return nil, fmt.Errorf("%s: region %d: %s region on a line generator: %w", m.Kind(), i, b.Region.Shape, ErrRegionMismatch)
		}
	}
	if len(regions) > 1 {
		return nil, fmt.Errorf("%s: %d line regions (at most one): %w", m.Kind(), len(regions), ErrRegionMismatch)
	}
	if lm.Line() != nil || len(regions) == 0 {
		return m, nil
	}

	x, y := lm.Axes()
	b := regions[0]
	r := b.Region
	switch {
	case !b.IsBound(), b.Axes[0] == x && b.Axes[1] == y:
		return lm.WithLine(model.BoundingLine{XStart: r.Origin.X, YStart: r.Origin.Y, Length: r.Length, Angle: r.Angle}), nil
	case b.Axes[0] == y && b.Axes[1] == x:
		// mirror about x = y
		return lm.WithLine(model.BoundingLine{XStart: r.Origin.Y, YStart: r.Origin.X, Length: r.Length, Angle: math.Pi/2 - r.Angle}), nil
	default:
		return nil, fmt.Errorf("%s: line region bound to %q, generator sweeps [%s %s]: %w", m.Kind(), b.Axes, x, y, ErrRegionMismatch)
	}
}
