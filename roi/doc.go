// Package roi describes two-dimensional regions of interest used to restrict
// a scan to part of its sweep.
//
// A Region is a tagged variant: the Shape field selects which of the
// geometry fields are meaningful, and ContainsPoint/Bounds dispatch on it.
//
//	Shape          fields used
//	Rectangle      Origin (corner), Width, Height, Angle
//	Circle         Origin (centre), Radius
//	Ellipse        Origin (centre), SemiAxes, Angle
//	Polygon        Vertices
//	Point          Origin
//	Sector         Origin (centre), InnerRadius, Radius, StartAngle, EndAngle
//	Line           Origin (start), Length, Angle
//
// Coordinates are abstract: the first coordinate (X) and the second (Y) are
// mapped to scan axes by whoever binds the region (see model.RegionBinding).
// Angles are radians, counter-clockwise from +X.
package roi
