// SPDX-License-Identifier: MIT
// Package: scanpath/scanfile
//
// Package scanfile reads scan descriptions written in HCL and turns them into
// a model.CompoundModel ready for generator.NewCompoundFromModel.
//
// A scan file lists generator blocks outer→inner, then any regions and
// mutators:
//
//	variable "n" { default = 10 }
//
//	generator "step" {
//	  axis  = "energy"
//	  start = 1
//	  stop  = 2
//	  step  = 0.5
//	}
//
//	generator "grid" {
//	  fast_axis   = "x"
//	  slow_axis   = "y"
//	  fast_points = var.n
//	  slow_points = var.n
//	  snake       = true
//	}
//
//	region "circle" {
//	  x      = 0
//	  y      = 0
//	  radius = 1.5
//	}
//
//	mutator "random_offset" {
//	  seed    = 1
//	  std_dev = 0.01
//	}
//
// Expressions may use the variables declared in the file (var.<name>),
// variables supplied by the caller (which override declared defaults), the
// constant pi and the functions abs, min, max, floor, ceil, pow, sqrt, sin,
// cos and radians.
//
// A generator "compound" block nests its own generator, region and mutator
// blocks. Regions without axes bind to the plane of the innermost area or
// line generator.
//
// Errors: syntax and schema failures wrap ErrDecode together with the HCL
// diagnostics, so callers can inspect source ranges. Structurally invalid
// compounds (bad region or mutator parameters) wrap model.ErrInvalidModel;
// component models are validated later by their generators.
package scanfile
