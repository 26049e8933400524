package iterators

import "errors"

// ErrNoNextElement is returned by First when the iterator yields nothing.
var ErrNoNextElement = errors.New("iterators: no next element")
