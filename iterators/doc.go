/*
Package iterators provides the pull-style iterator over scan positions.

An Iterator decouples the consumer of a scan (the executor moving motors,
a file writer, a progress bar) from the generator that knows how the
positions are laid out. The consumer only ever sees one position at a time,
so a trajectory of ten million points costs the same memory as one of ten.

Protocol

	for it.Next() {
		p := it.Value()
		// move to p
	}
	if err := it.Err(); err != nil {
		// generation failed; positions already returned stay valid
	}

Next advances and reports whether Value holds a new position. Once Next
returned false it keeps returning false; Err then reports why iteration
stopped (nil on normal exhaustion).

Iterators hold private cursor state and must not be shared between
goroutines. Abandoning an iterator early requires no cleanup.
*/
package iterators
