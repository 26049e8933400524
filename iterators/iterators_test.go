package iterators_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/scanpath/iterators"
	"github.com/katalvlaran/scanpath/position"
	"github.com/stretchr/testify/require"
)

func scalars(vs ...float64) []position.Position {
	out := make([]position.Position, len(vs))
	for i, v := range vs {
		out[i] = position.Scalar("x", v, i)
	}
	return out
}

func values(t *testing.T, ps []position.Position) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		v, err := p.Float("x")
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestSlice_SliceGiven_SliceIterableAndValuesReturned(t *testing.T) {
	t.Parallel()

	i := iterators.Slice(scalars(42, 4, 2))

	require.True(t, i.Next())
	require.Equal(t, 0, i.Value().Index("x"))
	require.True(t, i.Next())
	require.True(t, i.Next())
	v, err := i.Value().Float("x")
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	require.False(t, i.Next())
	require.False(t, i.Next())
	require.Nil(t, i.Err())
}

func TestFunc_ComputesOnDemand(t *testing.T) {
	t.Parallel()

	calls := 0
	i := iterators.Func(3, func(n int) position.Position {
		calls++
		return position.Scalar("x", float64(n*n), n)
	})
	require.Equal(t, 0, calls)

	ps, err := iterators.Collect(i)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 4}, values(t, ps))
	require.Equal(t, 3, calls)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("when filter allow everything", func(t *testing.T) {
		i := iterators.Filter(iterators.Slice(scalars(0, 1, 2, 3)), func(position.Position) bool { return true })
		ps, err := iterators.Collect(i)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 1, 2, 3}, values(t, ps))
	})

	t.Run("when filter disallow part of the value stream", func(t *testing.T) {
		i := iterators.Filter(iterators.Slice(scalars(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)), func(p position.Position) bool {
			v, _ := p.Float("x")
			return 5 < v
		})
		ps, err := iterators.Collect(i)
		require.NoError(t, err)
		require.Equal(t, []float64{6, 7, 8, 9}, values(t, ps))
	})

	t.Run("when a long stretch is rejected", func(t *testing.T) {
		const n = 1_000_000
		src := iterators.Func(n, func(i int) position.Position { return position.Scalar("x", float64(i), i) })
		i := iterators.Filter(src, func(p position.Position) bool { return p.Index("x") == n-1 })
		count, err := iterators.Count(i)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("it is expect to report the source error with the Err method", func(t *testing.T) {
		i := iterators.Filter(iterators.Error(errors.New("Boom!")), func(position.Position) bool { return true })
		require.False(t, i.Next())
		require.EqualError(t, i.Err(), "Boom!")
	})
}

func TestCountAndSkip(t *testing.T) {
	t.Parallel()

	n, err := iterators.Count(iterators.Slice(scalars(1, 2, 3)))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	it := iterators.Slice(scalars(1, 2, 3, 4))
	skipped, err := iterators.Skip(it, 2)
	require.NoError(t, err)
	require.Equal(t, 2, skipped)
	p, err := iterators.First(it)
	require.NoError(t, err)
	require.Equal(t, 2, p.Index("x"))

	skipped, err = iterators.Skip(it, 10)
	require.NoError(t, err)
	require.Equal(t, 1, skipped)
}

func TestFirst_Empty(t *testing.T) {
	t.Parallel()

	_, err := iterators.First(iterators.Empty())
	require.ErrorIs(t, err, iterators.ErrNoNextElement)

	boom := errors.New("boom")
	_, err = iterators.First(iterators.Error(boom))
	require.ErrorIs(t, err, boom)
}
