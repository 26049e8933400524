package iterators

import "github.com/katalvlaran/scanpath/position"

// Slice iterates over an already materialized list of positions.
func Slice(ps []position.Position) *SliceIter {
	return &SliceIter{Slice: ps}
}

type SliceIter struct {
	Slice []position.Position

	index int
	value position.Position
}

func (i *SliceIter) Err() error {
	return nil
}

func (i *SliceIter) Next() bool {
	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceIter) Value() position.Position {
	return i.value
}
