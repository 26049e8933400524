package iterators

import "github.com/katalvlaran/scanpath/position"

// Func iterates over n positions computed on demand by at(0) ... at(n-1).
// It is the building block of every closed-form generator: the cursor is a
// single integer, so memory stays constant whatever n is.
func Func(n int, at func(i int) position.Position) *FuncIter {
	return &FuncIter{n: n, at: at}
}

type FuncIter struct {
	n     int
	at    func(int) position.Position
	index int
	value position.Position
}

func (i *FuncIter) Next() bool {
	if i.index >= i.n {
		return false
	}
	i.value = i.at(i.index)
	i.index++
	return true
}

func (i *FuncIter) Value() position.Position { return i.value }

func (i *FuncIter) Err() error { return nil }
