// SPDX-License-Identifier: MIT
// Package: scanpath/mutator
//
// random_offset.go — Gaussian jitter decorator.
//
// Determinism:
//   • The decorator owns one *rand.Rand; draws happen in axis order, one per
//     mutated axis per position.
//   • Same seed + same source sequence ⇒ identical output.
//   • Reset swaps the source but keeps the stream, so a restarted inner
//     sweep draws fresh offsets rather than replaying the first ones.
//   • Like every *rand.Rand, the decorator is not goroutine-safe.

package mutator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
)

// RandomOffset is an iterator adding N(0, StdDev) noise to numeric axes.
type RandomOffset struct {
	src    iterators.Iterator
	stdDev float64
	axes   map[string]struct{} // nil: every axis
	rng    *rand.Rand

	value position.Position
	err   error
}

// NewRandomOffset wraps src with the offsets described by m.
func NewRandomOffset(src iterators.Iterator, m model.RandomOffsetModel) *RandomOffset {
	ro := &RandomOffset{
		src:    src,
		stdDev: m.StdDev,
		rng:    rand.New(rand.NewSource(m.Seed)),
	}
	if len(m.Axes) > 0 {
		ro.axes = make(map[string]struct{}, len(m.Axes))
		for _, a := range m.Axes {
			ro.axes[a] = struct{}{}
		}
	}
	return ro
}

// SetSeed restarts the random stream from seed. Intended for tests that
// need to replay offsets mid-iteration.
func (ro *RandomOffset) SetSeed(seed int64) {
	ro.rng.Seed(seed)
}

// Reset makes ro read from src, continuing its random stream.
func (ro *RandomOffset) Reset(src iterators.Iterator) {
	ro.src = src
	ro.value = position.Position{}
	ro.err = nil
}

func (ro *RandomOffset) Next() bool {
	if ro.err != nil || !ro.src.Next() {
		return false
	}

	p, err := ro.src.Value().MapValues(ro.offset)
	if err != nil {
		ro.err = err
		return false
	}
	ro.value = p
	return true
}

func (ro *RandomOffset) Value() position.Position { return ro.value }

func (ro *RandomOffset) Err() error {
	if ro.err != nil {
		return ro.err
	}
	return ro.src.Err()
}

func (ro *RandomOffset) offset(name string, v any) (any, error) {
	if ro.axes != nil {
		if _, ok := ro.axes[name]; !ok {
			return v, nil
		}
	}
	f, ok := position.ToFloat(v)
	if !ok {
		return nil, fmt.Errorf("RandomOffset: axis %q holds %T: %w", name, v, ErrNonNumeric)
	}
	return f + ro.rng.NormFloat64()*ro.stdDev, nil
}
