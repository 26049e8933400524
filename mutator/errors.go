package mutator

import "errors"

// ErrNonNumeric indicates that a position selected for mutation holds a
// non-numeric axis value; mutation is undefined for it.
var ErrNonNumeric = errors.New("mutator: non-numeric axis value")
