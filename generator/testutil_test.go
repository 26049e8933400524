package generator_test

import (
	"testing"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
	"github.com/stretchr/testify/require"
)

// collect materializes g, failing the test on any error.
func collect(t *testing.T, g generator.Generator) []position.Position {
	t.Helper()
	ps, err := generator.Points(g)
	require.NoError(t, err)
	return ps
}

// axisValues extracts the float values of one axis from every position.
func axisValues(t *testing.T, ps []position.Position, axis string) []float64 {
	t.Helper()
	out := make([]float64, len(ps))
	for i, p := range ps {
		v, err := p.Float(axis)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

// newGen builds a generator, failing the test on a lookup error.
func newGen(t *testing.T, m model.Model, regions ...model.RegionBinding) generator.Generator {
	t.Helper()
	g, err := generator.New(m, regions...)
	require.NoError(t, err)
	return g
}
