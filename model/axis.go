// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// axis.go — single-axis models: Step, MultiStep, Array, Static, RepeatedPoint.
//
// Step sizing:
//   • count = floor((stop-start)/step + stepTolerance) + 1
//   • stepTolerance (1% of one step) keeps the stop value when floating point
//     leaves the quotient a hair below an integer, e.g. (4-1)/0.6 = 4.999…
//   • The tolerance is in steps, not in axis units (step*0.01): (0, 100, 100)
//     gives 2 points, and a negative step still keeps its stop value.
//   • Sweeps of maxPoints or more points are invalid.

package model

import (
	"math"
	"time"
)

// stepTolerance is the inclusive-end tolerance in units of one step.
const stepTolerance = 0.01

// maxPoints bounds the point count of one sweep so that it, and the sizes
// built from it, fit in an int.
const maxPoints = float64(math.MaxInt32) * math.MaxInt32

// StepModel sweeps one axis from Start to Stop (inclusive) by Step.
type StepModel struct {
	Name  string
	Start float64
	Stop  float64
	Step  float64
}

func (StepModel) Kind() Kind { return KindStep }

func (m StepModel) Validate() error {
	if m.Name == "" {
		return invalidf(KindStep, "axis name is required")
	}
	if m.Step == 0 {
		return invalidf(KindStep, "step must be non-zero")
	}
	if span := m.Stop - m.Start; span != 0 && math.Signbit(span) != math.Signbit(m.Step) {
		return invalidf(KindStep, "step=%g goes away from stop (start=%g, stop=%g)", m.Step, m.Start, m.Stop)
	}
	if q := (m.Stop - m.Start) / m.Step; math.IsNaN(q) || q >= maxPoints {
		return invalidf(KindStep, "step=%g from %g to %g needs %g points or more", m.Step, m.Start, m.Stop, maxPoints)
	}
	return nil
}

// Count returns the number of points of a valid model. The inclusive-end
// tolerance is 1% of one step, not step*0.01 axis units.
func (m StepModel) Count() int {
	return int(math.Floor((m.Stop-m.Start)/m.Step+stepTolerance)) + 1
}

// At returns the i-th value of the sweep.
func (m StepModel) At(i int) float64 {
	return m.Start + float64(i)*m.Step
}

// Last returns the final value emitted by a valid model.
func (m StepModel) Last() float64 {
	return m.At(m.Count() - 1)
}

// MultiStepModel concatenates Step ranges over one axis. Segments may leave
// Name empty to inherit the MultiStep axis.
type MultiStepModel struct {
	Name  string
	Steps []StepModel
}

func (MultiStepModel) Kind() Kind { return KindMultiStep }

// Segments returns the segments with the axis name filled in.
func (m MultiStepModel) Segments() []StepModel {
	out := make([]StepModel, len(m.Steps))
	for i, s := range m.Steps {
		if s.Name == "" {
			s.Name = m.Name
		}
		out[i] = s
	}
	return out
}

func (m MultiStepModel) Validate() error {
	if m.Name == "" {
		return invalidf(KindMultiStep, "axis name is required")
	}
	if len(m.Steps) == 0 {
		return invalidf(KindMultiStep, "at least one step segment is required")
	}

	segs := m.Segments()
	dir := math.Signbit(segs[0].Step)
	for i, s := range segs {
		if s.Name != m.Name {
			return invalidf(KindMultiStep, "segment %d axis %q does not match %q", i, s.Name, m.Name)
		}
		if err := s.Validate(); err != nil {
			return invalidf(KindMultiStep, "segment %d: %v", i, err)
		}
		if math.Signbit(s.Step) != dir {
			return invalidf(KindMultiStep, "segment %d changes direction", i)
		}
		if i == 0 {
			continue
		}

		prev := segs[i-1]
		sign := 1.0
		if dir {
			sign = -1
		}
		if sign*(s.Start-prev.Start) < 0 {
			return invalidf(KindMultiStep, "segment %d start %g is not reachable after segment %d start %g", i, s.Start, i-1, prev.Start)
		}
		if sign*(s.Start-prev.Stop) < -boundaryEps(prev.Step) {
			return invalidf(KindMultiStep, "segment %d [%g,%g] overlaps segment %d [%g,%g]", i, s.Start, s.Stop, i-1, prev.Start, prev.Stop)
		}
	}
	return nil
}

// SharesBoundary reports whether next begins on the value prev ends with.
// The duplicate is emitted only once.
func SharesBoundary(prev, next StepModel) bool {
	return math.Abs(prev.Last()-next.Start) <= boundaryEps(prev.Step)
}

func boundaryEps(step float64) float64 {
	return math.Abs(step) * 1e-9
}

// ArrayModel emits the given values, in order, on one axis.
type ArrayModel struct {
	Name      string
	Positions []float64
}

func (ArrayModel) Kind() Kind { return KindArray }

func (m ArrayModel) Validate() error {
	if m.Name == "" {
		return invalidf(KindArray, "axis name is required")
	}
	return nil
}

// StaticModel emits Size positions that move nothing.
type StaticModel struct {
	Size int
}

func (StaticModel) Kind() Kind { return KindStatic }

func (m StaticModel) Validate() error {
	if m.Size <= 0 {
		return invalidf(KindStatic, "size=%d (must be ≥ 1)", m.Size)
	}
	return nil
}

// RepeatedPointModel emits Count copies of Value on one axis; the consumer
// should stay Dwell at every copy.
type RepeatedPointModel struct {
	Name  string
	Value float64
	Count int
	Dwell time.Duration
}

func (RepeatedPointModel) Kind() Kind { return KindRepeatedPoint }

func (m RepeatedPointModel) Validate() error {
	if m.Name == "" {
		return invalidf(KindRepeatedPoint, "axis name is required")
	}
	if m.Count <= 0 {
		return invalidf(KindRepeatedPoint, "count=%d (must be ≥ 1)", m.Count)
	}
	if m.Dwell < 0 {
		return invalidf(KindRepeatedPoint, "dwell=%s (must be ≥ 0)", m.Dwell)
	}
	return nil
}
