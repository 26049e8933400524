package model

// Kind names a generator kind. The set is closed: every Kind below has
// exactly one generator implementation.
type Kind string

const (
	KindStep             Kind = "step"
	KindMultiStep        Kind = "multi_step"
	KindArray            Kind = "array"
	KindStatic           Kind = "static"
	KindRepeatedPoint    Kind = "repeated_point"
	KindGrid             Kind = "grid"
	KindRaster           Kind = "raster"
	KindSpiral           Kind = "spiral"
	KindLissajous        Kind = "lissajous"
	KindOneDEqualSpacing Kind = "one_d_equal_spacing"
	KindOneDStep         Kind = "one_d_step"
	KindCompound         Kind = "compound"
)

// Model is implemented by every path model.
type Model interface {
	// Kind selects the generator implementation.
	Kind() Kind
	// Validate reports structural problems, wrapping ErrInvalidModel.
	Validate() error
}

// BoundingBox is the rectangular extent of a two-axis area sweep.
// Lengths may be negative to sweep towards decreasing values.
type BoundingBox struct {
	FastAxisStart  float64
	FastAxisLength float64
	SlowAxisStart  float64
	SlowAxisLength float64
}

// BoundingLine is the straight segment swept by a line model.
type BoundingLine struct {
	XStart float64
	YStart float64
	Length float64
	Angle  float64 // radians, counter-clockwise from the X axis
}

// AreaModel is a model sweeping the plane spanned by a fast and a slow axis
// inside a BoundingBox.
type AreaModel interface {
	Model
	// Axes returns the fast (first region coordinate) and slow axis names.
	Axes() (fast, slow string)
	// Box returns the bounding box, nil if none has been set.
	Box() *BoundingBox
	// WithBox returns a copy of the model using b as bounding box.
	WithBox(b BoundingBox) AreaModel
}

// LineModel is a model sweeping a straight segment in the (x, y) plane.
type LineModel interface {
	Model
	// Axes returns the x and y axis names.
	Axes() (x, y string)
	// Line returns the bounding line, nil if none has been set.
	Line() *BoundingLine
	// WithLine returns a copy of the model using l as bounding line.
	WithLine(l BoundingLine) LineModel
}
