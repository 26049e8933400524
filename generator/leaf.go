// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// leaf.go — the shared machinery behind every non-compound generator.
//
// A leaf is a closed-form sweep: once its model is fitted and validated it
// knows its size and can compute position i directly. Iteration is then a
// single integer cursor (iterators.Func), optionally wrapped by a
// RegionFilter.
//
// Lifecycle (validate, executed once under sync.Once):
//   1) fit: attach bounding geometry derived from regions (autofit.go)
//   2) Validate: model.ErrInvalidModel on structural problems
//   3) prepare: kind-specific precomputation → sweep
//   4) filter: resolve region bindings against the generator axes

package generator

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
)

// sweep is the validated, closed-form description of a leaf sequence.
type sweep struct {
	size  int
	shape []int
	at    func(i int) position.Position
}

type leaf struct {
	model   model.Model
	regions []model.RegionBinding
	axes    []string
	dims    [][]string
	x, y    string // plane axes, empty for one-axis kinds

	fit     func(model.Model, []model.RegionBinding) (model.Model, error)
	prepare func(model.Model) (sweep, error)
	// filters reports whether regions filter positions (area kinds) or only
	// define bounding geometry (line kinds).
	filters bool

	once   sync.Once
	sw     sweep
	filter *RegionFilter
	err    error
}

func (l *leaf) validate() error {
	l.once.Do(func() {
		m := l.model
		for i, b := range l.regions {
			if err := b.Validate(); err != nil {
				l.err = fmt.Errorf("%s: region %d: %w", m.Kind(), i, err)
				return
			}
		}
		if l.fit != nil && len(l.regions) > 0 {
			fitted, err := l.fit(m, l.regions)
			if err != nil {
				l.err = err
				return
			}
			m = fitted
		}
		if err := m.Validate(); err != nil {
			l.err = err
			return
		}
		if l.sw, l.err = l.prepare(m); l.err != nil {
			return
		}
		if l.filters && len(l.regions) > 0 {
			l.filter, l.err = NewRegionFilter(l, l.regions...)
		}
	})
	return l.err
}

func (l *leaf) Model() model.Model { return l.model }

func (l *leaf) Size() (int, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	return l.sw.size, nil
}

func (l *leaf) Shape() ([]int, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	return append([]int(nil), l.sw.shape...), nil
}

func (l *leaf) Rank() int { return len(l.dims) }

func (l *leaf) Axes() []string { return append([]string(nil), l.axes...) }

func (l *leaf) Dimensions() [][]string { return copyDims(l.dims) }

func (l *leaf) Iterator() (iterators.Iterator, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	var it iterators.Iterator = iterators.Func(l.sw.size, l.sw.at)
	if l.filter != nil {
		it = l.filter.Wrap(it)
	}
	return it, nil
}

func (l *leaf) plane() (string, string, bool) {
	return l.x, l.y, l.x != ""
}

// scalarLeaf returns a leaf producing one axis in one dimension group.
func scalarLeaf(m model.Model, name string, regions []model.RegionBinding, prepare func(model.Model) (sweep, error)) *leaf {
	return &leaf{
		model:   m,
		regions: regions,
		axes:    []string{name},
		dims:    [][]string{{name}},
		prepare: prepare,
		filters: true,
	}
}

func copyDims(dims [][]string) [][]string {
	out := make([][]string, len(dims))
	for i, d := range dims {
		out[i] = append([]string{}, d...)
	}
	return out
}

// pointCount converts a floating point count to int, rejecting counts no
// int can hold (e.g. a spiral scale far below the box size).
func pointCount(kind model.Kind, f float64) (int, error) {
	if f >= math.MaxInt32*float64(math.MaxInt32) || math.IsNaN(f) {
		return 0, fmt.Errorf("%s: %g points: %w", kind, f, model.ErrInvalidModel)
	}
	return int(f), nil
}
