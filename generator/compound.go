// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// compound.go — nesting generators outer→inner.
//
// Contract:
//   • Component 0 changes slowest, the last component fastest.
//   • Size is the product of component sizes, an upper bound once regions
//     filter the composite.
//   • Positions are composed outer-then-inner; axis names must be disjoint.
//   • Iterator pipeline: nested levels → RegionFilter → mutators in order.
//   • Mutator streams are seeded once per Iterator call; nested compounds
//     keep drawing from them across restarts.
//
// Complexity:
//   • Next: amortized O(levels) compositions, O(levels) memory regardless of Size.

package generator

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/position"
)

// Compound is a generator nesting other generators. It may itself be a
// component of another Compound.
type Compound struct {
	gens     []Generator
	regions  []model.RegionBinding
	mutators []model.RandomOffsetModel
	model    *model.CompoundModel
	pending  error // deferred construction failure, reported by validate

	once   sync.Once
	size   int
	shape  []int
	filter *RegionFilter
	err    error
}

func newCompound(gens []Generator, cfg compoundConfig) (*Compound, error) {
	for i, g := range gens {
		if g == nil {
			return nil, fmt.Errorf("NewCompound: component %d is nil: %w", i, ErrNoGenerator)
		}
	}
	return &Compound{
		gens:     append([]Generator(nil), gens...),
		regions:  append([]model.RegionBinding(nil), cfg.regions...),
		mutators: append([]model.RandomOffsetModel(nil), cfg.mutators...),
	}, nil
}

// compoundFromModel builds the components of m through the registry.
// extra regions, if any, apply in addition to m.Regions.
func compoundFromModel(m model.CompoundModel, extra []model.RegionBinding) (*Compound, error) {
	regions := append(append([]model.RegionBinding(nil), m.Regions...), extra...)
	regions = bindToPlane(m.Models, regions)

	var pending error
	gens := make([]Generator, len(m.Models))
	for i, cm := range m.Models {
		if isNil(cm) {
			return nil, fmt.Errorf("NewCompoundFromModel: component %d is nil: %w", i, ErrNoGenerator)
		}
		fitted, err := fitComponent(cm, regions)
		if err != nil && pending == nil {
			pending = fmt.Errorf("compound: component %d: %w", i, err)
		}
		if fitted != nil {
			cm = fitted
		}
		if gens[i], err = lookup(cm, nil); err != nil {
			return nil, fmt.Errorf("NewCompoundFromModel: component %d: %w", i, err)
		}
	}

	c, err := newCompound(gens, compoundConfig{regions: regions, mutators: m.Mutators})
	if err != nil {
		return nil, err
	}
	c.model = &m
	c.pending = pending
	return c, nil
}

// bindToPlane binds unbound regions to the plane of the innermost component
// model sweeping one. Without such a component they stay unbound.
func bindToPlane(models []model.Model, regions []model.RegionBinding) []model.RegionBinding {
	var x, y string
	for i := len(models) - 1; i >= 0 && x == ""; i-- {
		switch pm := models[i].(type) {
		case model.AreaModel:
			x, y = pm.Axes()
		case model.LineModel:
			x, y = pm.Axes()
		}
	}
	if x == "" {
		return regions
	}
	for i, b := range regions {
		if !b.IsBound() {
			regions[i] = model.Bind(b.Region, x, y)
		}
	}
	return regions
}

// fitComponent gives a component area (line) model without geometry the
// box (line) of the regions bound to its axes. It returns nil when cm is
// neither or needs no fitting.
func fitComponent(cm model.Model, regions []model.RegionBinding) (model.Model, error) {
	switch pm := cm.(type) {
	case model.AreaModel:
		if pm.Box() != nil {
			return nil, nil
		}
		fast, slow := pm.Axes()
		return fitArea(cm, onPlane(regions, fast, slow, false))
	case model.LineModel:
		if pm.Line() != nil {
			return nil, nil
		}
		x, y := pm.Axes()
		return fitLine(cm, onPlane(regions, x, y, true))
	}
	return nil, nil
}

// onPlane returns the bound regions of the given linearity on axes {x, y},
// in either order.
func onPlane(regions []model.RegionBinding, x, y string, linear bool) []model.RegionBinding {
	var out []model.RegionBinding
	for _, b := range regions {
		if !b.IsBound() || b.Region.IsLinear() != linear {
			continue
		}
		if (b.Axes[0] == x && b.Axes[1] == y) || (b.Axes[0] == y && b.Axes[1] == x) {
			out = append(out, b)
		}
	}
	return out
}

func (c *Compound) validate() error {
	c.once.Do(func() {
		c.err = c.build()
	})
	return c.err
}

func (c *Compound) build() error {
	if c.pending != nil {
		return c.pending
	}
	if len(c.gens) == 0 {
		return fmt.Errorf("%s: at least one component is required: %w", model.KindCompound, model.ErrInvalidModel)
	}
	for i, mu := range c.mutators {
		if err := mu.Validate(); err != nil {
			return fmt.Errorf("%s: mutator %d: %w", model.KindCompound, i, err)
		}
	}

	seen := make(map[string]int)
	for i, g := range c.gens {
		for _, a := range g.Axes() {
			if j, dup := seen[a]; dup {
				return fmt.Errorf("%s: axis %q in components %d and %d: %w", model.KindCompound, a, j, i, position.ErrAxisCollision)
			}
			seen[a] = i
		}
	}

	size := 1
	for i, g := range c.gens {
		n, err := g.Size()
		if err != nil {
			return fmt.Errorf("%s: component %d: %w", model.KindCompound, i, err)
		}
		if n != 0 && size > math.MaxInt/n {
			return fmt.Errorf("%s: size overflows int: %w", model.KindCompound, model.ErrInvalidModel)
		}
		size *= n
		shape, err := g.Shape()
		if err != nil {
			return fmt.Errorf("%s: component %d: %w", model.KindCompound, i, err)
		}
		c.shape = append(c.shape, shape...)
	}
	c.size = size

	// line regions only define the geometry of line components
	var filtering []model.RegionBinding
	for _, b := range c.regions {
		if !b.Region.IsLinear() {
			filtering = append(filtering, b)
		}
	}
	if len(filtering) > 0 {
		f, err := NewRegionFilter(c, filtering...)
		if err != nil {
			return fmt.Errorf("%s: %w", model.KindCompound, err)
		}
		c.filter = f
	}
	return nil
}

// Model returns the compound model c was built from. For a Compound built
// from generators it lists the component models.
func (c *Compound) Model() model.Model {
	if c.model != nil {
		return *c.model
	}
	m := model.CompoundModel{Regions: c.regions, Mutators: c.mutators}
	for _, g := range c.gens {
		m.Models = append(m.Models, g.Model())
	}
	return m
}

// Components returns the nested generators, outer→inner.
func (c *Compound) Components() []Generator {
	return append([]Generator(nil), c.gens...)
}

func (c *Compound) Size() (int, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	return c.size, nil
}

func (c *Compound) Shape() ([]int, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return append([]int(nil), c.shape...), nil
}

func (c *Compound) Rank() int {
	r := 0
	for _, g := range c.gens {
		r += g.Rank()
	}
	return r
}

func (c *Compound) Axes() []string {
	var out []string
	for _, g := range c.gens {
		out = append(out, g.Axes()...)
	}
	return out
}

func (c *Compound) Dimensions() [][]string {
	var out [][]string
	for _, g := range c.gens {
		out = append(out, g.Dimensions()...)
	}
	return out
}

func (c *Compound) Iterator() (iterators.Iterator, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c.pass(&streams{}), nil
}

// streams holds the random offset decorators of one top-level traversal,
// one node per compound in the tree. A nested compound restarted by its
// enclosing level resumes its offsets from here.
type streams struct {
	offsets []*mutator.RandomOffset
	levels  []*streams // by component; nil for leaves
}

// pass builds one sweep of a validated c, drawing offsets from st.
func (c *Compound) pass(st *streams) iterators.Iterator {
	if st.levels == nil {
		st.levels = make([]*streams, len(c.gens))
		st.offsets = make([]*mutator.RandomOffset, len(c.mutators))
	}
	var it iterators.Iterator = &compoundIterator{
		gens:    c.gens,
		its:     make([]iterators.Iterator, len(c.gens)),
		prefix:  make([]position.Position, len(c.gens)),
		streams: st,
	}
	if c.filter != nil {
		it = c.filter.Wrap(it)
	}
	for i, m := range c.mutators {
		if st.offsets[i] == nil {
			st.offsets[i] = mutator.NewRandomOffset(it, m)
		} else {
			st.offsets[i].Reset(it)
		}
		it = st.offsets[i]
	}
	return it
}

// plane is the plane of the innermost component sweeping one.
func (c *Compound) plane() (string, string, bool) {
	for i := len(c.gens) - 1; i >= 0; i-- {
		if p, ok := c.gens[i].(planar); ok {
			if x, y, ok := p.plane(); ok {
				return x, y, true
			}
		}
	}
	return "", "", false
}

// compoundIterator advances its levels like a mixed-radix counter.
// prefix[l] caches the composite of the current values of levels 0..l.
type compoundIterator struct {
	gens    []Generator
	its     []iterators.Iterator
	prefix  []position.Position
	streams *streams
	started bool
	done    bool
	value   position.Position
	err     error
}

func (ci *compoundIterator) Next() bool {
	if ci.done {
		return false
	}
	last := len(ci.gens) - 1
	if !ci.started {
		ci.started = true
		for l := 0; l < last; l++ {
			if !ci.open(l) || !ci.advance(l) {
				return ci.stop()
			}
		}
		if !ci.open(last) {
			return ci.stop()
		}
	}

	level := last
	for {
		if ci.advance(level) {
			if level == last {
				ci.value = ci.prefix[last]
				return true
			}
			level++
			if !ci.open(level) {
				return ci.stop()
			}
			continue
		}
		if ci.err != nil || level == 0 {
			return ci.stop()
		}
		// carry outward
		level--
	}
}

// open restarts level l. A nested compound continues the offsets of its
// previous sweeps.
func (ci *compoundIterator) open(l int) bool {
	if sub, ok := ci.gens[l].(*Compound); ok {
		if err := sub.validate(); err != nil {
			ci.err = err
			return false
		}
		if ci.streams.levels[l] == nil {
			ci.streams.levels[l] = &streams{}
		}
		ci.its[l] = sub.pass(ci.streams.levels[l])
		return true
	}
	it, err := ci.gens[l].Iterator()
	if err != nil {
		ci.err = err
		return false
	}
	ci.its[l] = it
	return true
}

// advance moves level l forward and refreshes prefix[l].
func (ci *compoundIterator) advance(l int) bool {
	it := ci.its[l]
	if !it.Next() {
		ci.err = it.Err()
		return false
	}
	if l == 0 {
		ci.prefix[0] = it.Value()
		return true
	}
	p, err := position.Compose(ci.prefix[l-1], it.Value())
	if err != nil {
		ci.err = err
		return false
	}
	ci.prefix[l] = p
	return true
}

func (ci *compoundIterator) stop() bool {
	ci.done = true
	ci.value = position.Position{}
	ci.its = nil
	return false
}

func (ci *compoundIterator) Value() position.Position { return ci.value }

func (ci *compoundIterator) Err() error { return ci.err }
