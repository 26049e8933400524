package generator_test

import (
	"fmt"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/roi"
)

// ExampleNew sweeps one axis with an inclusive stop.
func ExampleNew() {
	g, _ := generator.New(model.StepModel{Name: "x", Start: 0, Stop: 1, Step: 0.25})
	it, _ := g.Iterator()
	for it.Next() {
		fmt.Println(it.Value())
	}
	// Output:
	// x=0[0]
	// x=0.25[1]
	// x=0.5[2]
	// x=0.75[3]
	// x=1[4]
}

// ExampleNewCompoundFromModel nests a step scan around a snake grid fitted to
// a circular region.
func ExampleNewCompoundFromModel() {
	c, _ := generator.NewCompoundFromModel(model.CompoundModel{
		Models: []model.Model{
			model.StepModel{Name: "energy", Start: 1, Stop: 2, Step: 1},
			model.GridModel{FastAxisName: "x", SlowAxisName: "y", FastAxisPoints: 3, SlowAxisPoints: 3, Snake: true},
		},
		Regions: []model.RegionBinding{model.Unbound(roi.Circle(0, 0, 1.5))},
	})
	size, _ := c.Size()
	shape, _ := c.Shape()
	points, _ := generator.Points(c)
	fmt.Println(size, shape, c.Rank(), len(points))
	// Output: 18 [2 3 3] 3 18
}
