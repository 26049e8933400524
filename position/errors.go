package position

import "errors"

var (
	// ErrAxisCollision indicates that two positions being composed share an axis name.
	ErrAxisCollision = errors.New("position: axis name collision")
	// ErrUnknownAxis indicates that the requested axis is not part of the position.
	ErrUnknownAxis = errors.New("position: unknown axis")
	// ErrNotNumeric indicates that an axis value cannot be read as a float64.
	ErrNotNumeric = errors.New("position: value is not numeric")
)
