// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// errors.go — sentinel errors for the model package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Validate implementations attach context with %w: "<kind>: <detail>: %w".

package model

import (
	"errors"
	"fmt"
)

// ErrInvalidModel indicates structurally invalid model parameters: zero or
// negative step, scale or count, inconsistent MultiStep segments, missing
// axis names or bounding geometry.
var ErrInvalidModel = errors.New("model: invalid model")

// invalidf wraps ErrInvalidModel with the model kind and a formatted detail.
func invalidf(kind Kind, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, args...), ErrInvalidModel)
}
