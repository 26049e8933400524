// Package generator turns path models into lazily iterated sequences of
// scan positions and composes them into nested sweeps.
//
// 🚀 What is a generator?
//
//	A Generator is built from one model.Model (plus optional regions of
//	interest). It reports how many positions it will produce (Size), how
//	they are laid out (Shape, Dimensions) and hands out fresh, independent
//	iterators on demand. Nothing is materialized: a 4096×4096 compound
//	costs one cursor per level, not 2^24 positions.
//
// ✨ Kinds:
//   - Step, MultiStep, Array, Static, RepeatedPoint — one-axis (or zero-axis) sweeps
//   - Grid, Raster, Spiral, Lissajous                — two-axis area sweeps
//   - OneDEqualSpacing, OneDStep                     — two-axis line sweeps
//   - Compound                                       — outer×inner nesting of any of the above
//
// ⚙️ Usage:
//
//	x, _ := generator.New(model.StepModel{Name: "x", Start: 0, Stop: 1, Step: 0.1})
//	g, _ := generator.New(model.GridModel{...}, model.Unbound(roi.Circle(0, 0, 2)))
//	scan, _ := generator.NewCompound([]generator.Generator{x, g})
//
//	n, err := scan.Size() // pre-filter upper bound when regions are present
//	it, err := scan.Iterator()
//	for it.Next() {
//		move(it.Value())
//	}
//
// Lifecycle:
//   - New never validates; the first Size/Shape/Iterator call does, exactly once.
//   - Validation errors wrap model.ErrInvalidModel; region problems wrap
//     ErrRegionMismatch; unknown model kinds wrap ErrNoGenerator.
//   - A validated Generator is immutable and may be shared between
//     goroutines; each goroutine must own its iterator.
//
// Regions:
//
//	Area generators built with regions and no bounding box fit the box to
//	the union of the region bounds, then drop every position outside any
//	region binding (logical AND across bindings). Size keeps reporting the
//	unfiltered count. Line generators take at most one roi.Line region,
//	which only supplies the bounding line.
package generator
