package iterators

import "github.com/katalvlaran/scanpath/position"

// Empty returns an iterator that yields nothing.
func Empty() Iterator { return Error(nil) }

// Error returns an iterator that yields nothing and reports err.
func Error(err error) Iterator { return &errorIter{err: err} }

type errorIter struct{ err error }

func (e *errorIter) Next() bool               { return false }
func (e *errorIter) Value() position.Position { return position.Position{} }
func (e *errorIter) Err() error               { return e.err }
