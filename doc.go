// Package scanpath generates the positions visited by multidimensional
// scans: lazily, one position at a time, from declarative path models.
//
// 🚀 What is scanpath?
//
//	A small, pure-Go library that brings together:
//		• Leaf sweeps: Step, MultiStep, Array, Static, RepeatedPoint
//		• Area sweeps: Grid, Raster (optionally snaked), Spiral, Lissajous
//		• Line sweeps: OneDEqualSpacing, OneDStep
//		• Compound nesting of any of the above, to unlimited depth
//		• Regions of interest filtering positions (and fitting bounding boxes)
//		• Seeded Gaussian jitter of emitted positions
//		• HCL scan descriptions and a command-line point printer
//
// ✨ Why pull iterators?
//
//   - Streaming – a 2^24-point scan costs one cursor per nesting level
//   - Restartable – every Iterator() call starts from the first point
//   - Deterministic – no global state; the only randomness is seeded per mutator
//
// Packages:
//
//	position/   — the Position value: axis values, indices, dimension groups
//	iterators/  — Next/Value/Err pull protocol and helpers (Collect, Count, Skip…)
//	roi/        — region variants with containment and bounds
//	model/      — one validated parameter struct per generator kind
//	generator/  — leaf and compound generators, region filtering, registry
//	mutator/    — random offset decorator
//	scanfile/   — HCL scan files → model.CompoundModel
//	cmd/scanpoints — print or count the points of a scan file
//
// Quick ASCII example (snake grid, 4×3, fast axis x):
//
//	y=0.5  → → → →
//	y=1.5  ← ← ← ←
//	y=2.5  → → → →
package scanpath
