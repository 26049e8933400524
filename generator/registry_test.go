package generator_test

import (
	"testing"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// impostor claims a registered kind without being that model type.
type impostor struct{}

func (impostor) Kind() model.Kind { return model.KindStep }
func (impostor) Validate() error  { return nil }

type unknown struct{}

func (unknown) Kind() model.Kind { return "teleport" }
func (unknown) Validate() error  { return nil }

func TestNew_LookupFailures(t *testing.T) {
	t.Parallel()
	var nilStep *model.StepModel
	cases := map[string]model.Model{
		"nil":          nil,
		"nil pointer":  nilStep,
		"unknown kind": unknown{},
		"impostor":     impostor{},
	}
	for name, m := range cases {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			g, err := generator.New(m)
			assert.ErrorIs(t, err, generator.ErrNoGenerator)
			assert.Nil(t, g)
		})
	}
}

// TestNew_EveryKind builds one valid model of every kind, by value and by
// pointer.
func TestNew_EveryKind(t *testing.T) {
	t.Parallel()
	b := box(0, 1, 0, 1)
	line := &model.BoundingLine{Length: 1}
	models := []model.Model{
		model.StepModel{Name: "x", Start: 0, Stop: 1, Step: 0.5},
		model.MultiStepModel{Name: "x", Steps: []model.StepModel{{Start: 0, Stop: 1, Step: 1}}},
		model.ArrayModel{Name: "x", Positions: []float64{1}},
		model.StaticModel{Size: 1},
		model.RepeatedPointModel{Name: "x", Count: 1},
		model.GridModel{FastAxisName: "x", SlowAxisName: "y", FastAxisPoints: 1, SlowAxisPoints: 1, BoundingBox: b},
		model.RasterModel{FastAxisName: "x", SlowAxisName: "y", FastAxisStep: 1, SlowAxisStep: 1, BoundingBox: b},
		model.SpiralModel{FastAxisName: "x", SlowAxisName: "y", Scale: 1, BoundingBox: b},
		model.LissajousModel{FastAxisName: "x", SlowAxisName: "y", A: 1, B: 1, ThetaStep: 1, BoundingBox: b},
		model.OneDEqualSpacingModel{XAxisName: "x", YAxisName: "y", Points: 1, BoundingLine: line},
		model.OneDStepModel{XAxisName: "x", YAxisName: "y", Step: 1, BoundingLine: line},
		model.CompoundModel{Models: []model.Model{model.StaticModel{Size: 1}}},
	}
	seen := map[model.Kind]bool{}
	for _, m := range models {
		seen[m.Kind()] = true

		g, err := generator.New(m)
		require.NoError(t, err, m.Kind())
		n, err := g.Size()
		require.NoError(t, err, m.Kind())
		assert.Positive(t, n, m.Kind())
		assert.Equal(t, m.Kind(), g.Model().Kind())
	}
	assert.Len(t, seen, 12)

	s := model.StepModel{Name: "x", Start: 0, Stop: 1, Step: 1}
	g, err := generator.New(&s)
	require.NoError(t, err)
	assert.Len(t, collect(t, g), 2)
}
