package roi

import "github.com/paulmach/orb"

// Shape selects the geometry variant of a Region.
type Shape uint8

const (
	// ShapeRectangle is an optionally rotated rectangle anchored at a corner.
	ShapeRectangle Shape = iota + 1
	// ShapeCircle is a filled circle.
	ShapeCircle
	// ShapeEllipse is an optionally rotated filled ellipse.
	ShapeEllipse
	// ShapePolygon is a simple or self-intersecting polygon (even-odd rule).
	ShapePolygon
	// ShapePoint is a single point.
	ShapePoint
	// ShapeSector is an annular sector.
	ShapeSector
	// ShapeLine is a straight segment; used to fit one-dimensional line scans.
	ShapeLine
)

var shapeNames = map[Shape]string{
	ShapeRectangle: "rectangle",
	ShapeCircle:    "circle",
	ShapeEllipse:   "ellipse",
	ShapePolygon:   "polygon",
	ShapePoint:     "point",
	ShapeSector:    "sector",
	ShapeLine:      "line",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseShape maps a lowercase shape name back to its Shape.
func ParseShape(name string) (Shape, bool) {
	for s, n := range shapeNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Vec is a point in region coordinates.
type Vec struct{ X, Y float64 }

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns MaxX-MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY-MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	return rectOf(r.bound().Union(o.bound()))
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return r.bound().Contains(orb.Point{x, y})
}

func (r Rect) bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.MinX, r.MinY}, Max: orb.Point{r.MaxX, r.MaxY}}
}

func rectOf(b orb.Bound) Rect {
	return Rect{MinX: b.Min.X(), MinY: b.Min.Y(), MaxX: b.Max.X(), MaxY: b.Max.Y()}
}

// boundsOf returns the bounding rectangle of a non-empty point set.
func boundsOf(pts ...Vec) Rect {
	return rectOf(multiPoint(pts).Bound())
}

func multiPoint(pts []Vec) orb.MultiPoint {
	mp := make(orb.MultiPoint, len(pts))
	for i, p := range pts {
		mp[i] = orb.Point{p.X, p.Y}
	}
	return mp
}
