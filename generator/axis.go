// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// axis.go — one-axis leaf generators: Step, MultiStep, Array, Static and
// RepeatedPoint.

package generator

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/position"
)

func newStep(m model.StepModel, regions []model.RegionBinding) (Generator, error) {
	return scalarLeaf(m, m.Name, regions, func(mm model.Model) (sweep, error) {
		s := mm.(model.StepModel)
		n := s.Count()
		return sweep{
			size:  n,
			shape: []int{n},
			at: func(i int) position.Position {
				return position.Scalar(s.Name, s.At(i), i)
			},
		}, nil
	}), nil
}

func newMultiStep(m model.MultiStepModel, regions []model.RegionBinding) (Generator, error) {
	return scalarLeaf(m, m.Name, regions, func(mm model.Model) (sweep, error) {
		ms, err := multiSteps(mm.(model.MultiStepModel))
		if err != nil {
			return sweep{}, err
		}
		return sweep{size: ms.size(), shape: []int{ms.size()}, at: ms.at}, nil
	}), nil
}

// multiStep maps a flat index onto the concatenated segments.
// ends[k] is the exclusive flat end of segment k; skip[k] is 1 when the first
// value of segment k repeats the last value of segment k-1.
type multiStep struct {
	name string
	segs []model.StepModel
	ends []int
	skip []int
}

func multiSteps(m model.MultiStepModel) (multiStep, error) {
	segs := m.Segments()
	ms := multiStep{
		name: m.Name,
		segs: segs,
		ends: make([]int, len(segs)),
		skip: make([]int, len(segs)),
	}
	total := 0
	for k, s := range segs {
		if k > 0 && model.SharesBoundary(segs[k-1], s) {
			ms.skip[k] = 1
		}
		n := s.Count() - ms.skip[k]
		if total > math.MaxInt-n {
			return multiStep{}, fmt.Errorf("%s: segment %d: size overflows int: %w", model.KindMultiStep, k, model.ErrInvalidModel)
		}
		total += n
		ms.ends[k] = total
	}
	return ms, nil
}

func (ms multiStep) size() int {
	if len(ms.ends) == 0 {
		return 0
	}
	return ms.ends[len(ms.ends)-1]
}

func (ms multiStep) at(i int) position.Position {
	k := sort.Search(len(ms.ends), func(k int) bool { return ms.ends[k] > i })
	begin := 0
	if k > 0 {
		begin = ms.ends[k-1]
	}
	v := ms.segs[k].At(i - begin + ms.skip[k])
	return position.Scalar(ms.name, v, i)
}

func newArray(m model.ArrayModel, regions []model.RegionBinding) (Generator, error) {
	return scalarLeaf(m, m.Name, regions, func(mm model.Model) (sweep, error) {
		a := mm.(model.ArrayModel)
		vs := append([]float64(nil), a.Positions...)
		return sweep{
			size:  len(vs),
			shape: []int{len(vs)},
			at: func(i int) position.Position {
				return position.Scalar(a.Name, vs[i], i)
			},
		}, nil
	}), nil
}

func newStatic(m model.StaticModel, regions []model.RegionBinding) (Generator, error) {
	return &leaf{
		model:   m,
		regions: regions,
		axes:    []string{},
		dims:    [][]string{{}},
		filters: true,
		prepare: func(mm model.Model) (sweep, error) {
			n := mm.(model.StaticModel).Size
			return sweep{
				size:  n,
				shape: []int{n},
				at:    func(int) position.Position { return position.Static() },
			}, nil
		},
	}, nil
}

func newRepeatedPoint(m model.RepeatedPointModel, regions []model.RegionBinding) (Generator, error) {
	return scalarLeaf(m, m.Name, regions, func(mm model.Model) (sweep, error) {
		r := mm.(model.RepeatedPointModel)
		return sweep{
			size:  r.Count,
			shape: []int{r.Count},
			at: func(i int) position.Position {
				return position.Scalar(r.Name, r.Value, i).WithDwell(r.Dwell)
			},
		}, nil
	}), nil
}
