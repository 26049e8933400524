// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// compound.go — region bindings, random offset mutators and the compound model.

package model

import (
	"fmt"

	"github.com/katalvlaran/scanpath/roi"
)

// RegionBinding attaches a region of interest to an ordered pair of axes:
// Axes[0] receives the region's X coordinate and Axes[1] its Y coordinate.
// An empty Axes leaves the binding unbound; it then applies to the plane of
// the generator it decorates.
type RegionBinding struct {
	Region roi.Region
	Axes   []string
}

// Bind returns a binding of r to the given x and y axes.
func Bind(r roi.Region, x, y string) RegionBinding {
	return RegionBinding{Region: r, Axes: []string{x, y}}
}

// Unbound returns a binding of r to the plane of the decorated generator.
func Unbound(r roi.Region) RegionBinding {
	return RegionBinding{Region: r}
}

// IsBound reports whether the binding names its axes explicitly.
func (b RegionBinding) IsBound() bool { return len(b.Axes) > 0 }

func (b RegionBinding) Validate() error {
	if err := b.Region.Validate(); err != nil {
		return fmt.Errorf("region binding: %v: %w", err, ErrInvalidModel)
	}
	switch len(b.Axes) {
	case 0:
	case 2:
		if b.Axes[0] == "" || b.Axes[1] == "" || b.Axes[0] == b.Axes[1] {
			return fmt.Errorf("region binding: axes %q must be two distinct names: %w", b.Axes, ErrInvalidModel)
		}
	default:
		return fmt.Errorf("region binding: %d axes (need 0 or 2): %w", len(b.Axes), ErrInvalidModel)
	}
	return nil
}

// RandomOffsetModel perturbs positions with Gaussian noise N(0, StdDev).
// An empty Axes perturbs every axis.
type RandomOffsetModel struct {
	Seed   int64
	StdDev float64
	Axes   []string
}

func (m RandomOffsetModel) Validate() error {
	if m.StdDev < 0 {
		return fmt.Errorf("random offset: std dev=%g (must be ≥ 0): %w", m.StdDev, ErrInvalidModel)
	}
	return nil
}

// CompoundModel nests Models outer→inner: Models[0] changes slowest.
// Regions filter the composite positions; Mutators perturb them afterwards.
type CompoundModel struct {
	Models   []Model
	Regions  []RegionBinding
	Mutators []RandomOffsetModel
}

func (CompoundModel) Kind() Kind { return KindCompound }

// Validate checks the compound structure. Component models are validated
// by their own generators.
func (m CompoundModel) Validate() error {
	if len(m.Models) == 0 {
		return invalidf(KindCompound, "at least one component model is required")
	}
	for i, c := range m.Models {
		if c == nil {
			return invalidf(KindCompound, "component %d is nil", i)
		}
	}
	for i, r := range m.Regions {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%s: region %d: %w", KindCompound, i, err)
		}
	}
	for i, mu := range m.Mutators {
		if err := mu.Validate(); err != nil {
			return fmt.Errorf("%s: mutator %d: %w", KindCompound, i, err)
		}
	}
	return nil
}
