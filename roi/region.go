// SPDX-License-Identifier: MIT
// Package: scanpath/roi
//
// region.go — the Region variant, its constructors and per-shape geometry.
//
// Contract:
//   • One containment function and one bounds function per Shape.
//   • Boundaries are inclusive, polygon edges and vertices included; Point
//     and Line use a small absolute tolerance.
//   • ContainsPoint on an invalid region returns false; Validate reports why.

package roi

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	twoPi = 2 * math.Pi
	// tolerance for zero-area shapes (Point, Line)
	degenerateEps = 1e-9
)

// Region is a two-dimensional region of interest.
type Region struct {
	Shape Shape

	Origin      Vec
	Width       float64
	Height      float64
	Radius      float64
	InnerRadius float64
	SemiAxes    Vec
	Angle       float64
	StartAngle  float64
	EndAngle    float64
	Length      float64
	Vertices    []Vec
}

// Rectangle returns an axis-aligned rectangle with corner (x, y).
func Rectangle(x, y, width, height float64) Region {
	return Region{Shape: ShapeRectangle, Origin: Vec{x, y}, Width: width, Height: height}
}

// RotatedRectangle returns a rectangle with corner (x, y) rotated by angle about that corner.
func RotatedRectangle(x, y, width, height, angle float64) Region {
	r := Rectangle(x, y, width, height)
	r.Angle = angle
	return r
}

// Circle returns a circle centred on (cx, cy).
func Circle(cx, cy, radius float64) Region {
	return Region{Shape: ShapeCircle, Origin: Vec{cx, cy}, Radius: radius}
}

// Ellipse returns an ellipse centred on (cx, cy) with semi-axes a (along the
// rotated X) and b, rotated by angle.
func Ellipse(cx, cy, a, b, angle float64) Region {
	return Region{Shape: ShapeEllipse, Origin: Vec{cx, cy}, SemiAxes: Vec{a, b}, Angle: angle}
}

// Polygon returns a polygon through the given vertices (implicitly closed).
func Polygon(vertices ...Vec) Region {
	return Region{Shape: ShapePolygon, Vertices: append([]Vec(nil), vertices...)}
}

// Point returns a single-point region.
func Point(x, y float64) Region {
	return Region{Shape: ShapePoint, Origin: Vec{x, y}}
}

// Sector returns the part of the annulus inner ≤ r ≤ outer around (cx, cy)
// swept counter-clockwise from start to end.
func Sector(cx, cy, inner, outer, start, end float64) Region {
	return Region{Shape: ShapeSector, Origin: Vec{cx, cy}, InnerRadius: inner, Radius: outer, StartAngle: start, EndAngle: end}
}

// Line returns a segment starting at (x, y) with the given length and direction.
func Line(x, y, length, angle float64) Region {
	return Region{Shape: ShapeLine, Origin: Vec{x, y}, Length: length, Angle: angle}
}

// IsLinear reports whether r is a line segment rather than an area.
func (r Region) IsLinear() bool { return r.Shape == ShapeLine }

// End returns the far end point of a Line region.
func (r Region) End() Vec {
	return Vec{r.Origin.X + r.Length*math.Cos(r.Angle), r.Origin.Y + r.Length*math.Sin(r.Angle)}
}

// Validate checks that the geometry of r is usable.
func (r Region) Validate() error {
	switch r.Shape {
	case ShapeRectangle:
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("rectangle: width=%g height=%g (each must be > 0): %w", r.Width, r.Height, ErrInvalidRegion)
		}
	case ShapeCircle:
		if r.Radius <= 0 {
			return fmt.Errorf("circle: radius=%g (must be > 0): %w", r.Radius, ErrInvalidRegion)
		}
	case ShapeEllipse:
		if r.SemiAxes.X <= 0 || r.SemiAxes.Y <= 0 {
			return fmt.Errorf("ellipse: semi-axes=%v (each must be > 0): %w", r.SemiAxes, ErrInvalidRegion)
		}
	case ShapePolygon:
		if len(r.Vertices) < 3 {
			return fmt.Errorf("polygon: %d vertices (need ≥ 3): %w", len(r.Vertices), ErrInvalidRegion)
		}
	case ShapePoint:
	case ShapeSector:
		if r.InnerRadius < 0 || r.Radius <= r.InnerRadius {
			return fmt.Errorf("sector: radii=[%g,%g] (need 0 ≤ inner < outer): %w", r.InnerRadius, r.Radius, ErrInvalidRegion)
		}
	case ShapeLine:
		if r.Length < 0 {
			return fmt.Errorf("line: length=%g (must be ≥ 0): %w", r.Length, ErrInvalidRegion)
		}
	default:
		return fmt.Errorf("shape %d: %w", r.Shape, ErrInvalidRegion)
	}
	return nil
}

// ContainsPoint reports whether (x, y) lies in r.
func (r Region) ContainsPoint(x, y float64) bool {
	switch r.Shape {
	case ShapeRectangle:
		return r.containsRectangle(x, y)
	case ShapeCircle:
		dx, dy := x-r.Origin.X, y-r.Origin.Y
		return dx*dx+dy*dy <= r.Radius*r.Radius
	case ShapeEllipse:
		return r.containsEllipse(x, y)
	case ShapePolygon:
		return r.containsPolygon(x, y)
	case ShapePoint:
		return near(x, r.Origin.X) && near(y, r.Origin.Y)
	case ShapeSector:
		return r.containsSector(x, y)
	case ShapeLine:
		return r.containsLine(x, y)
	default:
		return false
	}
}

// Bounds returns the axis-aligned bounding rectangle of r.
func (r Region) Bounds() Rect {
	switch r.Shape {
	case ShapeRectangle:
		return boundsOf(r.rectangleCorners()...)
	case ShapeCircle:
		return Rect{MinX: r.Origin.X - r.Radius, MinY: r.Origin.Y - r.Radius, MaxX: r.Origin.X + r.Radius, MaxY: r.Origin.Y + r.Radius}
	case ShapeEllipse:
		a, b := r.SemiAxes.X, r.SemiAxes.Y
		c, s := math.Cos(r.Angle), math.Sin(r.Angle)
		hx := math.Sqrt(a*a*c*c + b*b*s*s)
		hy := math.Sqrt(a*a*s*s + b*b*c*c)
		return Rect{MinX: r.Origin.X - hx, MinY: r.Origin.Y - hy, MaxX: r.Origin.X + hx, MaxY: r.Origin.Y + hy}
	case ShapePolygon:
		if len(r.Vertices) == 0 {
			return Rect{}
		}
		return boundsOf(r.Vertices...)
	case ShapeSector:
		return r.sectorBounds()
	case ShapeLine:
		return boundsOf(r.Origin, r.End())
	default:
		return Rect{MinX: r.Origin.X, MinY: r.Origin.Y, MaxX: r.Origin.X, MaxY: r.Origin.Y}
	}
}

// toLocal translates (x, y) to the origin and undoes the rotation of r.
func (r Region) toLocal(x, y float64) (u, v float64) {
	dx, dy := x-r.Origin.X, y-r.Origin.Y
	if r.Angle == 0 {
		return dx, dy
	}
	c, s := math.Cos(r.Angle), math.Sin(r.Angle)
	return dx*c + dy*s, -dx*s + dy*c
}

func (r Region) containsRectangle(x, y float64) bool {
	u, v := r.toLocal(x, y)
	return u >= 0 && u <= r.Width && v >= 0 && v <= r.Height
}

func (r Region) rectangleCorners() []Vec {
	c, s := math.Cos(r.Angle), math.Sin(r.Angle)
	corner := func(u, v float64) Vec {
		return Vec{r.Origin.X + u*c - v*s, r.Origin.Y + u*s + v*c}
	}
	return []Vec{corner(0, 0), corner(r.Width, 0), corner(r.Width, r.Height), corner(0, r.Height)}
}

func (r Region) containsEllipse(x, y float64) bool {
	if r.SemiAxes.X <= 0 || r.SemiAxes.Y <= 0 {
		return false
	}
	u, v := r.toLocal(x, y)
	u /= r.SemiAxes.X
	v /= r.SemiAxes.Y
	return u*u+v*v <= 1
}

// containsPolygon applies the even-odd rule; points on an edge or vertex
// are inside.
func (r Region) containsPolygon(x, y float64) bool {
	if len(r.Vertices) < 3 {
		return false
	}
	return planar.RingContains(orb.Ring(multiPoint(r.Vertices)), orb.Point{x, y})
}

func (r Region) containsSector(x, y float64) bool {
	dx, dy := x-r.Origin.X, y-r.Origin.Y
	d := math.Hypot(dx, dy)
	if d < r.InnerRadius || d > r.Radius {
		return false
	}
	if d == 0 {
		return true
	}
	return r.inSpan(math.Atan2(dy, dx))
}

// inSpan reports whether angle theta lies in the counter-clockwise sweep
// from StartAngle to EndAngle.
func (r Region) inSpan(theta float64) bool {
	sweep := r.EndAngle - r.StartAngle
	if math.Abs(sweep) >= twoPi {
		return true
	}
	return normAngle(theta-r.StartAngle) <= normAngle(sweep)
}

func (r Region) sectorBounds() Rect {
	o := r.Origin
	at := func(radius, theta float64) Vec {
		return Vec{o.X + radius*math.Cos(theta), o.Y + radius*math.Sin(theta)}
	}
	pts := []Vec{
		at(r.InnerRadius, r.StartAngle), at(r.InnerRadius, r.EndAngle),
		at(r.Radius, r.StartAngle), at(r.Radius, r.EndAngle),
	}
	for k := 0; k < 4; k++ {
		theta := float64(k) * math.Pi / 2
		if r.inSpan(theta) {
			pts = append(pts, at(r.Radius, theta))
		}
	}
	return boundsOf(pts...)
}

func (r Region) containsLine(x, y float64) bool {
	end := r.End()
	dx, dy := end.X-r.Origin.X, end.Y-r.Origin.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return near(x, r.Origin.X) && near(y, r.Origin.Y)
	}
	// projection parameter of (x, y) onto the segment, clamped to [0,1]
	t := ((x-r.Origin.X)*dx + (y-r.Origin.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	px, py := r.Origin.X+t*dx, r.Origin.Y+t*dy
	return math.Hypot(x-px, y-py) <= degenerateEps*math.Max(1, r.Length)
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= degenerateEps*math.Max(1, math.Abs(b))
}

func normAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
