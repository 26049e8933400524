// Package position defines the value carried through every scan path
// generator: an ordered set of named axis values, the index of each value
// within its own sweep, and the dimension groups that record which axes
// were produced together by one generator level.
//
// What is a Position?
//
//	A single sample location of a scan, e.g.
//	  stage_y=1.5 (index 3), stage_x=0.25 (index 7)
//	produced by a snake Grid, together with its dimension groups
//	  [[stage_y] [stage_x]]
//	so that consumers can reconstruct the output shape (scan rank = 2).
//
// Key properties:
//   - Immutable value type; every "mutation" (Compose, WithValue, WithDwell)
//     returns a fresh Position and never aliases the receiver's slices.
//   - Axis order is stable and significant: Names() reports axes in the
//     order they were produced, outer generator levels first.
//   - Values are untyped (any) so that decorators can reject non-numeric
//     values explicitly; all built-in generators emit float64.
//
// Composition:
//
//	p, err := position.Compose(outer, inner)
//	// err wraps ErrAxisCollision if an axis appears in both operands.
//
// Complexity: every accessor is O(axes), which is a small constant for
// real scans (usually ≤ 6 axes).
package position
