// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// api.go — public entry points of the generator package.
//
// Design contract:
//   • New(model, regions...) dispatches through the registry (registry.go).
//   • NewCompound / NewCompoundFromModel nest generators outer→inner (compound.go).
//   • Constructors never validate; Size/Shape/Iterator validate once, lazily.
//   • Points is the only function that buffers a whole sequence.

package generator

import (
	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
)

// Generator produces a restartable sequence of positions.
type Generator interface {
	// Model returns the model the generator was built from.
	Model() model.Model
	// Size returns the number of positions before region filtering.
	Size() (int, error)
	// Shape returns the size of every dimension group, outer→inner.
	Shape() ([]int, error)
	// Rank returns the number of dimension groups of every position.
	Rank() int
	// Axes returns the axis names of every position, in order.
	Axes() []string
	// Dimensions returns the dimension groups of every position, outer→inner.
	Dimensions() [][]string
	// Iterator returns a fresh iterator positioned before the first point.
	Iterator() (iterators.Iterator, error)
}

// planar is implemented by generators sweeping a two-axis plane; unbound
// regions attach to that plane.
type planar interface {
	plane() (x, y string, ok bool)
}

// New builds the generator registered for m's kind. regions restrict the
// sweep; for area models without a bounding box they also define it.
//
// Errors: ErrNoGenerator for nil or unknown models. Everything else is
// reported by the first Size/Shape/Iterator call.
func New(m model.Model, regions ...model.RegionBinding) (Generator, error) {
	return lookup(m, regions)
}

// CompoundOption configures a compound generator.
type CompoundOption func(*compoundConfig)

type compoundConfig struct {
	regions  []model.RegionBinding
	mutators []model.RandomOffsetModel
}

// WithRegions filters the composite positions through the given bindings.
func WithRegions(bindings ...model.RegionBinding) CompoundOption {
	return func(c *compoundConfig) {
		c.regions = append(c.regions, bindings...)
	}
}

// WithMutators perturbs the composite positions, in order, after filtering.
func WithMutators(ms ...model.RandomOffsetModel) CompoundOption {
	return func(c *compoundConfig) {
		c.mutators = append(c.mutators, ms...)
	}
}

// NewCompound nests gens outer→inner: gens[0] changes slowest.
func NewCompound(gens []Generator, opts ...CompoundOption) (*Compound, error) {
	cfg := compoundConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newCompound(gens, cfg)
}

// NewCompoundFromModel builds every component of m through the registry and
// nests them. Component area (line) models without bounding geometry are
// fitted to the regions bound to their axes.
func NewCompoundFromModel(m model.CompoundModel) (*Compound, error) {
	return compoundFromModel(m, nil)
}

// Points materializes every position of g.
func Points(g Generator) ([]position.Position, error) {
	it, err := g.Iterator()
	if err != nil {
		return nil, err
	}
	return iterators.Collect(it)
}
