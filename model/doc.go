// Package model holds the declarative parameter bags ("path models") that
// describe a scan trajectory, one struct per generator kind.
//
// Models are plain values: build them with struct literals, hand them to
// generator.New, and never touch them again. Nothing in this package
// iterates or allocates positions; it only knows what a well-formed model
// looks like (Validate) and how bounding geometry is attached to it.
//
// Model kinds (closed set, see Kind):
//
//	step, multi_step, array, static, repeated_point   one-axis or zero-axis sweeps
//	grid, raster, spiral, lissajous                   two-axis area sweeps (BoundingBox)
//	one_d_equal_spacing, one_d_step                    two-axis line sweeps (BoundingLine)
//	compound                                           nested outer×inner sweeps
//
// Validation errors wrap ErrInvalidModel; branch with errors.Is.
package model
