package iterators

import "github.com/katalvlaran/scanpath/position"

// Collect drains i into a slice. This buffers the whole sequence and is
// meant for tests and small scans only.
func Collect(i Iterator) ([]position.Position, error) {
	var out []position.Position
	for i.Next() {
		out = append(out, i.Value())
	}
	return out, i.Err()
}

// First returns the first position of i.
func First(i Iterator) (position.Position, error) {
	if !i.Next() {
		if err := i.Err(); err != nil {
			return position.Position{}, err
		}
		return position.Position{}, ErrNoNextElement
	}
	return i.Value(), nil
}
