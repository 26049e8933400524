// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// region_filter.go — accept or reject positions by region containment.
//
// Contract:
//   • Each binding maps Axes[0] to the region's X and Axes[1] to its Y.
//   • Unbound regions resolve to the decorated generator's plane.
//   • A position is accepted only if it lies in every applicable region.
//   • Filtering never changes the position: values, indices and dimension
//     groups pass through untouched.

package generator

import (
	"fmt"

	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
	"github.com/katalvlaran/scanpath/roi"
)

// RegionFilter tests positions against a set of region bindings.
type RegionFilter struct {
	bindings []boundRegion
}

type boundRegion struct {
	region roi.Region
	x, y   string
}

// NewRegionFilter resolves bindings against the axes of g.
//
// Errors:
//   - model.ErrInvalidModel for an invalid region or binding.
//   - ErrRegionMismatch if a binding names an axis g does not produce, or is
//     unbound while g sweeps no plane.
func NewRegionFilter(g Generator, bindings ...model.RegionBinding) (*RegionFilter, error) {
	axes := make(map[string]struct{}, len(g.Axes()))
	for _, a := range g.Axes() {
		axes[a] = struct{}{}
	}

	f := &RegionFilter{bindings: make([]boundRegion, 0, len(bindings))}
	for i, b := range bindings {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("NewRegionFilter: region %d: %w", i, err)
		}
		x, y, err := resolveAxes(g, b)
		if err != nil {
			return nil, fmt.Errorf("NewRegionFilter: region %d: %w", i, err)
		}
		for _, a := range []string{x, y} {
			if _, ok := axes[a]; !ok {
				return nil, fmt.Errorf("NewRegionFilter: region %d: axis %q not in %q: %w", i, a, g.Axes(), ErrRegionMismatch)
			}
		}
		f.bindings = append(f.bindings, boundRegion{region: b.Region, x: x, y: y})
	}
	return f, nil
}

func resolveAxes(g Generator, b model.RegionBinding) (string, string, error) {
	if b.IsBound() {
		return b.Axes[0], b.Axes[1], nil
	}
	if p, ok := g.(planar); ok {
		if x, y, ok := p.plane(); ok {
			return x, y, nil
		}
	}
	return "", "", fmt.Errorf("unbound %s region, generator sweeps no plane: %w", b.Region.Shape, ErrRegionMismatch)
}

// ContainsPoint reports whether p lies in every region whose axes p carries.
// A non-numeric value on a bound axis is never contained.
func (f *RegionFilter) ContainsPoint(p position.Position) bool {
	for _, b := range f.bindings {
		xv, okx := p.Get(b.x)
		yv, oky := p.Get(b.y)
		if !okx || !oky {
			continue
		}
		x, okx := position.ToFloat(xv)
		y, oky := position.ToFloat(yv)
		if !okx || !oky || !b.region.ContainsPoint(x, y) {
			return false
		}
	}
	return true
}

// Wrap returns an iterator over the positions of it that f contains.
func (f *RegionFilter) Wrap(it iterators.Iterator) iterators.Iterator {
	return iterators.Filter(it, f.ContainsPoint)
}
