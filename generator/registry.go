// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// registry.go — the closed match table from model kind to generator.
//
// Contract:
//   • Every model.Kind constant has exactly one entry.
//   • A model reporting a known Kind but of a foreign Go type is a lookup
//     failure (ErrNoGenerator), never a panic.
//   • Both T and *T are accepted for every model type T.

package generator

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/scanpath/model"
)

type factory func(m model.Model, regions []model.RegionBinding) (Generator, error)

// registry is filled in init: the compound entry recurses into lookup.
var registry map[model.Kind]factory

func init() {
	registry = map[model.Kind]factory{
		model.KindStep:             entry(newStep),
		model.KindMultiStep:        entry(newMultiStep),
		model.KindArray:            entry(newArray),
		model.KindStatic:           entry(newStatic),
		model.KindRepeatedPoint:    entry(newRepeatedPoint),
		model.KindGrid:             entry(newGrid),
		model.KindRaster:           entry(newRaster),
		model.KindSpiral:           entry(newSpiral),
		model.KindLissajous:        entry(newLissajous),
		model.KindOneDEqualSpacing: entry(newOneDEqualSpacing),
		model.KindOneDStep:         entry(newOneDStep),
		model.KindCompound: entry(func(m model.CompoundModel, regions []model.RegionBinding) (Generator, error) {
			c, err := compoundFromModel(m, regions)
			if err != nil {
				return nil, err
			}
			return c, nil
		}),
	}
}

// lookup resolves m through the registry.
func lookup(m model.Model, regions []model.RegionBinding) (Generator, error) {
	if isNil(m) {
		return nil, fmt.Errorf("New: nil model: %w", ErrNoGenerator)
	}
	f, ok := registry[m.Kind()]
	if !ok {
		return nil, fmt.Errorf("New: kind %q: %w", m.Kind(), ErrNoGenerator)
	}
	return f(m, regions)
}

// entry adapts a typed constructor to the registry signature.
func entry[T model.Model](build func(T, []model.RegionBinding) (Generator, error)) factory {
	return func(m model.Model, regions []model.RegionBinding) (Generator, error) {
		if t, ok := any(m).(T); ok {
			return build(t, regions)
		}
		if p, ok := any(m).(*T); ok {
			return build(*p, regions)
		}
		return nil, fmt.Errorf("New: %T claims kind %q: %w", m, m.Kind(), ErrNoGenerator)
	}
}

func isNil(m model.Model) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
