package iterators

import "github.com/katalvlaran/scanpath/position"

// Filter yields only the positions of src for which match returns true.
// Rejected positions are skipped inside Next, so callers never observe them.
func Filter(src Iterator, match func(position.Position) bool) *FilterIterator {
	return &FilterIterator{src: src, match: match}
}

type FilterIterator struct {
	src   Iterator
	match func(position.Position) bool

	next position.Position
}

func (fi *FilterIterator) Err() error {
	return fi.src.Err()
}

func (fi *FilterIterator) Value() position.Position {
	return fi.next
}

func (fi *FilterIterator) Next() bool {
	// a loop rather than recursion: long excluded stretches must not grow the stack
	for fi.src.Next() {
		p := fi.src.Value()
		if fi.match(p) {
			fi.next = p
			return true
		}
	}
	return false
}
