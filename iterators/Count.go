package iterators

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count(i Iterator) (int, error) {
	total := 0

	for i.Next() {
		total++
	}

	return total, i.Err()
}

// Skip advances i by up to n positions and returns how many were skipped.
// A scan resumed after an abort creates a fresh iterator and skips to the
// last completed point.
func Skip(i Iterator, n int) (int, error) {
	skipped := 0
	for skipped < n && i.Next() {
		skipped++
	}
	return skipped, i.Err()
}
