package generator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/roi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneDEqualSpacing_CellCentres(t *testing.T) {
	t.Parallel()
	g := newGen(t, model.OneDEqualSpacingModel{
		XAxisName: "x", YAxisName: "y", Points: 4,
		BoundingLine: &model.BoundingLine{Length: 4},
	})
	ps := collect(t, g)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, axisValues(t, ps, "x"))
	assert.Equal(t, []float64{0, 0, 0, 0}, axisValues(t, ps, "y"))
	assert.Equal(t, 1, g.Rank())
	assert.Equal(t, 2, ps[2].Index("y"))
}

// TestOneDStep_FitsLineRegion derives the bounding line from a line region.
func TestOneDStep_FitsLineRegion(t *testing.T) {
	t.Parallel()
	g := newGen(t, model.OneDStepModel{XAxisName: "x", YAxisName: "y", Step: 0.25},
		model.Unbound(roi.Line(0, 0, 1, 0)))
	n, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, axisValues(t, collect(t, g), "x"))
}

func TestOneDStep_Diagonal(t *testing.T) {
	t.Parallel()
	g := newGen(t, model.OneDStepModel{
		XAxisName: "x", YAxisName: "y", Step: math.Sqrt2,
		BoundingLine: &model.BoundingLine{XStart: 1, YStart: 1, Length: 2 * math.Sqrt2, Angle: math.Pi / 4},
	})
	ps := collect(t, g)
	require.Len(t, ps, 3)
	x, _ := ps[2].Float("x")
	y, _ := ps[2].Float("y")
	assert.InDelta(t, 3, x, 1e-9)
	assert.InDelta(t, 3, y, 1e-9)
}

func TestLine_RegionMismatch(t *testing.T) {
	t.Parallel()
	cases := map[string][]model.RegionBinding{
		"area region":  {model.Unbound(roi.Circle(0, 0, 1))},
		"two lines":    {model.Unbound(roi.Line(0, 0, 1, 0)), model.Unbound(roi.Line(0, 1, 1, 0))},
		"foreign axes": {model.Bind(roi.Line(0, 0, 1, 0), "a", "b")},
	}
	for name, regions := range cases {
		regions := regions
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g := newGen(t, model.OneDStepModel{XAxisName: "x", YAxisName: "y", Step: 1}, regions...)
			_, err := g.Size()
			assert.ErrorIs(t, err, generator.ErrRegionMismatch)
		})
	}
}
