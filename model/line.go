// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// line.go — line models sweeping a BoundingLine in the (x, y) plane.

package model

// OneDEqualSpacingModel places Points equally spaced cell centres on the line.
type OneDEqualSpacingModel struct {
	XAxisName    string
	YAxisName    string
	Points       int
	BoundingLine *BoundingLine
}

func (OneDEqualSpacingModel) Kind() Kind               { return KindOneDEqualSpacing }
func (m OneDEqualSpacingModel) Axes() (string, string) { return m.XAxisName, m.YAxisName }
func (m OneDEqualSpacingModel) Line() *BoundingLine    { return m.BoundingLine }
func (m OneDEqualSpacingModel) WithLine(l BoundingLine) LineModel {
	m.BoundingLine = &l
	return m
}

func (m OneDEqualSpacingModel) Validate() error {
	if err := validateLine(KindOneDEqualSpacing, m); err != nil {
		return err
	}
	if m.Points < 1 {
		return invalidf(KindOneDEqualSpacing, "points=%d (must be ≥ 1)", m.Points)
	}
	return nil
}

// OneDStepModel walks the line from its start in increments of Step.
type OneDStepModel struct {
	XAxisName    string
	YAxisName    string
	Step         float64
	BoundingLine *BoundingLine
}

func (OneDStepModel) Kind() Kind               { return KindOneDStep }
func (m OneDStepModel) Axes() (string, string) { return m.XAxisName, m.YAxisName }
func (m OneDStepModel) Line() *BoundingLine    { return m.BoundingLine }
func (m OneDStepModel) WithLine(l BoundingLine) LineModel {
	m.BoundingLine = &l
	return m
}

func (m OneDStepModel) Validate() error {
	if err := validateLine(KindOneDStep, m); err != nil {
		return err
	}
	if m.Step <= 0 {
		return invalidf(KindOneDStep, "step=%g (must be > 0)", m.Step)
	}
	return nil
}
