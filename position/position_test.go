package position_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/scanpath/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalar_Accessors checks the single-axis constructor.
func TestScalar_Accessors(t *testing.T) {
	p := position.Scalar("x", 1.5, 3)

	v, ok := p.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, 3, p.Index("x"))
	assert.Equal(t, position.NoIndex, p.Index("y"))
	assert.Equal(t, []string{"x"}, p.Names())
	assert.Equal(t, 1, p.ScanRank())
	assert.Equal(t, []string{"x"}, p.DimensionNames(0))
	assert.Nil(t, p.DimensionNames(1))
}

// TestGridAndPair_DimensionGroups contrasts rank-2 grid points with rank-1 pairs.
func TestGridAndPair_DimensionGroups(t *testing.T) {
	g := position.Grid("y", 1, 2.0, "x", 4, 0.5)
	assert.Equal(t, []string{"y", "x"}, g.Names())
	assert.Equal(t, 2, g.ScanRank())
	assert.Equal(t, []string{"y"}, g.DimensionNames(0))
	assert.Equal(t, []string{"x"}, g.DimensionNames(1))
	assert.Equal(t, 4, g.Index("x"))

	p := position.Pair("x", 0.1, "y", 0.2, 7)
	assert.Equal(t, 1, p.ScanRank())
	assert.Equal(t, []string{"x", "y"}, p.DimensionNames(0))
	assert.Equal(t, 7, p.Index("y"))
}

// TestCompose_MergesOuterThenInner verifies ordering, ranks and dwell.
func TestCompose_MergesOuterThenInner(t *testing.T) {
	outer := position.Scalar("z", 10.0, 0).WithDwell(time.Millisecond)
	inner := position.Grid("y", 0, 1.0, "x", 2, 3.0).WithDwell(5 * time.Millisecond)

	p, err := position.Compose(outer, inner)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, p.Names())
	assert.Equal(t, 3, p.ScanRank())
	assert.Equal(t, []string{"z"}, p.DimensionNames(0))
	assert.Equal(t, []string{"x"}, p.DimensionNames(2))
	assert.Equal(t, 2, p.Index("x"))
	assert.Equal(t, 5*time.Millisecond, p.Dwell())

	// operands are untouched
	assert.Equal(t, 1, outer.Len())
	assert.Equal(t, 2, inner.Len())
}

// TestCompose_Collision rejects duplicate axis names.
func TestCompose_Collision(t *testing.T) {
	_, err := position.Compose(position.Scalar("x", 1.0, 0), position.Pair("y", 0, "x", 0, 0))
	assert.ErrorIs(t, err, position.ErrAxisCollision)
}

// TestStatic_IsEmptyRankOne checks the zero-axis position.
func TestStatic_IsEmptyRankOne(t *testing.T) {
	s := position.Static()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.ScanRank())
	assert.Empty(t, s.DimensionNames(0))

	p, err := position.Compose(position.Scalar("x", 1.0, 0), s)
	require.NoError(t, err)
	assert.Equal(t, 2, p.ScanRank())
	assert.Equal(t, []string{"x"}, p.Names())
}

// TestFloat_Conversions covers numeric, non-numeric and missing axes.
func TestFloat_Conversions(t *testing.T) {
	f, err := position.Scalar("n", 3, 0).Float("n")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = position.Scalar("mode", "fly", 0).Float("mode")
	assert.ErrorIs(t, err, position.ErrNotNumeric)

	_, err = position.Scalar("n", 3, 0).Float("m")
	assert.ErrorIs(t, err, position.ErrUnknownAxis)
}

// TestWithValue_DoesNotAlias ensures copies never share value storage.
func TestWithValue_DoesNotAlias(t *testing.T) {
	a := position.Pair("x", 1, "y", 2, 0)
	b, err := a.WithValue("y", 5.0)
	require.NoError(t, err)

	ya, _ := a.Get("y")
	yb, _ := b.Get("y")
	assert.Equal(t, 2.0, ya)
	assert.Equal(t, 5.0, yb)

	_, err = a.WithValue("q", 1.0)
	assert.ErrorIs(t, err, position.ErrUnknownAxis)
}

// TestString renders indices only when present.
func TestString(t *testing.T) {
	p, err := position.Compose(position.Scalar("a", 1.0, position.NoIndex), position.Scalar("b", 2.0, 4))
	require.NoError(t, err)
	assert.Equal(t, "a=1, b=2[4]", p.String())
}

// TestMapValues replaces every value and stops on the first error.
func TestMapValues(t *testing.T) {
	p := position.Pair("x", 1, "y", 2, 3)
	q, err := p.MapValues(func(_ string, v any) (any, error) {
		f, _ := position.ToFloat(v)
		return f * 10, nil
	})
	require.NoError(t, err)
	y, _ := q.Get("y")
	assert.Equal(t, 20.0, y)
	assert.Equal(t, 3, q.Index("y"))
	y, _ = p.Get("y")
	assert.Equal(t, 2.0, y)

	_, err = p.MapValues(func(string, any) (any, error) { return nil, position.ErrNotNumeric })
	assert.ErrorIs(t, err, position.ErrNotNumeric)
}
