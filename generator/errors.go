// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Structural model problems surface as model.ErrInvalidModel.
//   • The sentinels below cover what a model alone cannot know: how it was
//     combined with regions, and whether a generator exists for it.
//   • Callers MUST use errors.Is; messages carry "<Method>: <detail>" context.

package generator

import "errors"

// ErrRegionMismatch indicates a region that cannot apply to the generator it
// was given to: a non-linear region on a line generator, a line region on an
// area generator, or a binding to axes the generator does not produce.
var ErrRegionMismatch = errors.New("generator: region does not fit generator")

// ErrNoGenerator indicates that no generator is registered for the model kind.
var ErrNoGenerator = errors.New("generator: no generator for model")
