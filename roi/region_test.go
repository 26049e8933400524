package roi_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scanpath/roi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitSquare = roi.Polygon(roi.Vec{0, 0}, roi.Vec{1, 0}, roi.Vec{1, 1}, roi.Vec{0, 1})

// TestContainsPoint runs table-driven containment checks for every shape.
func TestContainsPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		region roi.Region
		x, y   float64
		want   bool
	}{
		{"rectangle inside", roi.Rectangle(0, 0, 2, 1), 1, 0.5, true},
		{"rectangle edge", roi.Rectangle(0, 0, 2, 1), 2, 1, true},
		{"rectangle outside", roi.Rectangle(0, 0, 2, 1), 2.1, 0.5, false},
		{"rotated rectangle inside", roi.RotatedRectangle(0, 0, 2, 1, math.Pi/2), -0.5, 1, true},
		{"rotated rectangle outside", roi.RotatedRectangle(0, 0, 2, 1, math.Pi/2), 1, 0.5, false},
		{"circle inside", roi.Circle(1, 1, 1), 1.5, 1.5, true},
		{"circle outside", roi.Circle(1, 1, 1), 1.8, 1.8, false},
		{"ellipse inside", roi.Ellipse(0, 0, 3, 1, 0), 2.5, 0.2, true},
		{"ellipse outside", roi.Ellipse(0, 0, 3, 1, 0), 0.2, 1.5, false},
		{"rotated ellipse", roi.Ellipse(0, 0, 3, 1, math.Pi/2), 0.2, 2.5, true},
		{"polygon inside", roi.Polygon(roi.Vec{0, 0}, roi.Vec{4, 0}, roi.Vec{0, 4}), 1, 1, true},
		{"polygon outside", roi.Polygon(roi.Vec{0, 0}, roi.Vec{4, 0}, roi.Vec{0, 4}), 3, 3, false},
		{"polygon left edge", unitSquare, 0, 0.5, true},
		{"polygon right edge", unitSquare, 1, 0.5, true},
		{"polygon top edge", unitSquare, 0.5, 1, true},
		{"polygon vertex", unitSquare, 1, 1, true},
		{"polygon just outside right edge", unitSquare, 1.0001, 0.5, false},
		{"point hit", roi.Point(1.5, -2), 1.5, -2, true},
		{"point miss", roi.Point(1.5, -2), 1.5, -2.001, false},
		{"sector inside", roi.Sector(0, 0, 1, 2, 0, math.Pi/2), 1, 1, true},
		{"sector wrong quadrant", roi.Sector(0, 0, 1, 2, 0, math.Pi/2), -1, 1, false},
		{"sector hole", roi.Sector(0, 0, 1, 2, 0, math.Pi/2), 0.3, 0.3, false},
		{"sector across zero", roi.Sector(0, 0, 0, 2, -math.Pi/4, math.Pi/4), 1, -0.5, true},
		{"line on segment", roi.Line(0, 0, 2, math.Pi/4), 1, 1, true},
		{"line beyond end", roi.Line(0, 0, 2, math.Pi/4), 2, 2, false},
		{"unknown shape", roi.Region{}, 0, 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.region.ContainsPoint(tc.x, tc.y))
		})
	}
}

// TestBounds verifies bounding rectangles, including rotated shapes.
func TestBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, roi.Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 3}, roi.Rectangle(1, 2, 3, 1).Bounds())
	assert.Equal(t, roi.Rect{MinX: -1, MinY: 0, MaxX: 1, MaxY: 2}, roi.Circle(0, 1, 1).Bounds())

	e := roi.Ellipse(0, 0, 3, 1, math.Pi/2).Bounds()
	assert.InDelta(t, 1, e.MaxX, 1e-12)
	assert.InDelta(t, 3, e.MaxY, 1e-12)

	s := roi.Sector(0, 0, 0, 2, 0, math.Pi/2).Bounds()
	assert.InDelta(t, 0, s.MinX, 1e-12)
	assert.InDelta(t, 0, s.MinY, 1e-12)
	assert.InDelta(t, 2, s.MaxX, 1e-12)
	assert.InDelta(t, 2, s.MaxY, 1e-12)

	l := roi.Line(1, 1, 2, math.Pi).Bounds()
	assert.InDelta(t, -1, l.MinX, 1e-12)
	assert.InDelta(t, 1, l.MaxX, 1e-12)

	u := roi.Rectangle(0, 0, 1, 1).Bounds().Union(roi.Circle(3, 3, 1).Bounds())
	assert.Equal(t, roi.Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4}, u)
	assert.Equal(t, 4.0, u.Width())
	assert.True(t, u.Contains(4, 0))
	assert.False(t, u.Contains(4, -0.5))
}

// TestValidate rejects degenerate geometry with ErrInvalidRegion.
func TestValidate(t *testing.T) {
	t.Parallel()

	bad := []roi.Region{
		roi.Rectangle(0, 0, 0, 1),
		roi.Circle(0, 0, -1),
		roi.Ellipse(0, 0, 1, 0, 0),
		roi.Polygon(roi.Vec{0, 0}, roi.Vec{1, 1}),
		roi.Sector(0, 0, 2, 1, 0, 1),
		roi.Line(0, 0, -1, 0),
		{Shape: 99},
	}
	for _, r := range bad {
		assert.ErrorIs(t, r.Validate(), roi.ErrInvalidRegion, "shape %s", r.Shape)
	}

	require.NoError(t, roi.Point(0, 0).Validate())
	require.NoError(t, roi.Circle(0, 0, 1).Validate())
}

// TestParseShape round-trips shape names.
func TestParseShape(t *testing.T) {
	for _, s := range []roi.Shape{roi.ShapeRectangle, roi.ShapeCircle, roi.ShapeEllipse, roi.ShapePolygon, roi.ShapePoint, roi.ShapeSector, roi.ShapeLine} {
		got, ok := roi.ParseShape(s.String())
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := roi.ParseShape("hexagon")
	assert.False(t, ok)
}
