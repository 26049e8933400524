package iterators

import "github.com/katalvlaran/scanpath/position"

// Iterator walks a sequence of positions.
type Iterator interface {
	// Next advances the iterator; it reports false when the sequence is
	// exhausted or a failure occurred.
	Next() bool
	// Value returns the position reached by the last successful Next.
	Value() position.Position
	// Err returns the cause of a failed iteration, or nil.
	Err() error
}
