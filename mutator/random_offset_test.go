package mutator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// source returns a fresh grid-like sequence of n two-axis positions.
func source(n int) iterators.Iterator {
	return iterators.Func(n, func(i int) position.Position {
		return position.Grid("y", i/4, float64(i/4), "x", i%4, float64(i%4))
	})
}

func offsets(t *testing.T, it iterators.Iterator) []float64 {
	t.Helper()
	var out []float64
	for it.Next() {
		p := it.Value()
		for _, n := range p.Names() {
			v, err := p.Float(n)
			require.NoError(t, err)
			out = append(out, v)
		}
	}
	require.NoError(t, it.Err())
	return out
}

// TestRandomOffset_SeedDeterminism: same seed twice ⇒ bit-identical values.
func TestRandomOffset_SeedDeterminism(t *testing.T) {
	t.Parallel()

	m := model.RandomOffsetModel{Seed: 42, StdDev: 0.5}
	a := offsets(t, mutator.NewRandomOffset(source(16), m))
	b := offsets(t, mutator.NewRandomOffset(source(16), m))
	require.Len(t, a, 32)
	for i := range a {
		assert.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]), "value %d", i)
	}

	c := offsets(t, mutator.NewRandomOffset(source(16), model.RandomOffsetModel{Seed: 43, StdDev: 0.5}))
	assert.NotEqual(t, a, c)
}

// TestRandomOffset_PreservesStructure keeps count, indices and dimension groups.
func TestRandomOffset_PreservesStructure(t *testing.T) {
	t.Parallel()

	it := mutator.NewRandomOffset(source(8), model.RandomOffsetModel{Seed: 1, StdDev: 0.1})
	ps, err := iterators.Collect(it)
	require.NoError(t, err)
	require.Len(t, ps, 8)
	for i, p := range ps {
		assert.Equal(t, i%4, p.Index("x"))
		assert.Equal(t, i/4, p.Index("y"))
		assert.Equal(t, 2, p.ScanRank())
		x, err := p.Float("x")
		require.NoError(t, err)
		assert.InDelta(t, float64(i%4), x, 1, "jitter stays small")
	}
}

// TestRandomOffset_AxisSubset only perturbs the listed axes.
func TestRandomOffset_AxisSubset(t *testing.T) {
	t.Parallel()

	it := mutator.NewRandomOffset(source(4), model.RandomOffsetModel{Seed: 7, StdDev: 1, Axes: []string{"x"}})
	ps, err := iterators.Collect(it)
	require.NoError(t, err)
	for _, p := range ps {
		y, err := p.Float("y")
		require.NoError(t, err)
		assert.Equal(t, 0.0, y)
	}
}

// TestRandomOffset_NonNumericFails rather than passing the value through.
func TestRandomOffset_NonNumericFails(t *testing.T) {
	t.Parallel()

	src := iterators.Slice([]position.Position{
		position.Scalar("x", 1.0, 0),
		position.Scalar("x", "parked", 1),
		position.Scalar("x", 3.0, 2),
	})
	it := mutator.NewRandomOffset(src, model.RandomOffsetModel{Seed: 3, StdDev: 0.2})

	require.True(t, it.Next())
	require.False(t, it.Next())
	require.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), mutator.ErrNonNumeric)
}

// TestRandomOffset_SetSeed replays the stream from a known seed.
func TestRandomOffset_SetSeed(t *testing.T) {
	t.Parallel()

	m := model.RandomOffsetModel{Seed: 9, StdDev: 1}
	it := mutator.NewRandomOffset(source(2), m)
	require.True(t, it.Next())
	first, err := it.Value().Float("y")
	require.NoError(t, err)

	it.SetSeed(9)
	require.True(t, it.Next())
	second, err := it.Value().Float("y")
	require.NoError(t, err)

	// position 1 has y=0 too, and the stream restarted at the same seed
	assert.Equal(t, first, second)
}

// TestRandomOffset_ResetContinuesStream: two sweeps joined by Reset draw the
// same offsets as one sweep of twice the length.
func TestRandomOffset_ResetContinuesStream(t *testing.T) {
	t.Parallel()

	zeros := func(n int) iterators.Iterator {
		return iterators.Func(n, func(i int) position.Position {
			return position.Scalar("x", 0.0, i)
		})
	}
	m := model.RandomOffsetModel{Seed: 5, StdDev: 1}

	whole := offsets(t, mutator.NewRandomOffset(zeros(8), m))

	it := mutator.NewRandomOffset(zeros(4), m)
	joined := offsets(t, it)
	it.Reset(zeros(4))
	joined = append(joined, offsets(t, it)...)

	require.Len(t, joined, 8)
	for i := range whole {
		assert.Equal(t, math.Float64bits(whole[i]), math.Float64bits(joined[i]), "value %d", i)
	}
	assert.NotEqual(t, joined[:4], joined[4:])
}
