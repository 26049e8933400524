// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// area.go — two-axis area models: Grid, Raster, Spiral, Lissajous.
//
// Contract:
//   • Fast axis = first region coordinate (x), slow axis = second (y).
//   • BoundingBox may be left nil when regions are supplied; the generator
//     fits it to the regions before validation.

package model

// GridModel sweeps FastAxisPoints × SlowAxisPoints cell centres of the box.
type GridModel struct {
	FastAxisName   string
	SlowAxisName   string
	FastAxisPoints int
	SlowAxisPoints int
	Snake          bool
	BoundingBox    *BoundingBox
}

func (GridModel) Kind() Kind               { return KindGrid }
func (m GridModel) Axes() (string, string) { return m.FastAxisName, m.SlowAxisName }
func (m GridModel) Box() *BoundingBox      { return m.BoundingBox }
func (m GridModel) WithBox(b BoundingBox) AreaModel {
	m.BoundingBox = &b
	return m
}

func (m GridModel) Validate() error {
	if err := validateArea(KindGrid, m); err != nil {
		return err
	}
	if m.FastAxisPoints < 1 || m.SlowAxisPoints < 1 {
		return invalidf(KindGrid, "points=%d×%d (each must be ≥ 1)", m.FastAxisPoints, m.SlowAxisPoints)
	}
	return nil
}

// RasterModel sweeps the box from its edge in steps of FastAxisStep and
// SlowAxisStep.
type RasterModel struct {
	FastAxisName string
	SlowAxisName string
	FastAxisStep float64
	SlowAxisStep float64
	Snake        bool
	BoundingBox  *BoundingBox
}

func (RasterModel) Kind() Kind               { return KindRaster }
func (m RasterModel) Axes() (string, string) { return m.FastAxisName, m.SlowAxisName }
func (m RasterModel) Box() *BoundingBox      { return m.BoundingBox }
func (m RasterModel) WithBox(b BoundingBox) AreaModel {
	m.BoundingBox = &b
	return m
}

func (m RasterModel) Validate() error {
	if err := validateArea(KindRaster, m); err != nil {
		return err
	}
	if m.FastAxisStep <= 0 || m.SlowAxisStep <= 0 {
		return invalidf(KindRaster, "steps=%g,%g (each must be > 0)", m.FastAxisStep, m.SlowAxisStep)
	}
	return nil
}

// SpiralModel sweeps an Archimedean spiral from the centre of the box out to
// the ellipse through its corners. Scale is the distance between turns.
type SpiralModel struct {
	FastAxisName string
	SlowAxisName string
	Scale        float64
	BoundingBox  *BoundingBox
}

func (SpiralModel) Kind() Kind               { return KindSpiral }
func (m SpiralModel) Axes() (string, string) { return m.FastAxisName, m.SlowAxisName }
func (m SpiralModel) Box() *BoundingBox      { return m.BoundingBox }
func (m SpiralModel) WithBox(b BoundingBox) AreaModel {
	m.BoundingBox = &b
	return m
}

func (m SpiralModel) Validate() error {
	if err := validateArea(KindSpiral, m); err != nil {
		return err
	}
	if m.Scale == 0 {
		return invalidf(KindSpiral, "scale must be non-zero")
	}
	return nil
}

// LissajousModel sweeps x = sin(A·θ+Delta), y = cos(B·θ) scaled to the box,
// for θ from 0 to 20π in steps of ThetaStep.
type LissajousModel struct {
	FastAxisName string
	SlowAxisName string
	A            float64
	B            float64
	Delta        float64
	ThetaStep    float64
	BoundingBox  *BoundingBox
}

func (LissajousModel) Kind() Kind               { return KindLissajous }
func (m LissajousModel) Axes() (string, string) { return m.FastAxisName, m.SlowAxisName }
func (m LissajousModel) Box() *BoundingBox      { return m.BoundingBox }
func (m LissajousModel) WithBox(b BoundingBox) AreaModel {
	m.BoundingBox = &b
	return m
}

func (m LissajousModel) Validate() error {
	if err := validateArea(KindLissajous, m); err != nil {
		return err
	}
	if m.ThetaStep <= 0 {
		return invalidf(KindLissajous, "theta step=%g (must be > 0)", m.ThetaStep)
	}
	return nil
}
