package roi

import "errors"

// ErrInvalidRegion indicates a region whose geometry is unusable
// (unknown shape, non-positive radius, degenerate polygon, ...).
var ErrInvalidRegion = errors.New("roi: invalid region")
