package model

// validateArea checks what every area model shares: two distinct axis
// names and a bounding box.
func validateArea(kind Kind, m AreaModel) error {
	fast, slow := m.Axes()
	if err := validateAxisPair(kind, fast, slow); err != nil {
		return err
	}
	if m.Box() == nil {
		return invalidf(kind, "bounding box is required")
	}
	return nil
}

// validateLine checks what every line model shares: two distinct axis
// names and a non-negative bounding line.
func validateLine(kind Kind, m LineModel) error {
	x, y := m.Axes()
	if err := validateAxisPair(kind, x, y); err != nil {
		return err
	}
	l := m.Line()
	if l == nil {
		return invalidf(kind, "bounding line is required")
	}
	if l.Length < 0 {
		return invalidf(kind, "line length=%g (must be ≥ 0)", l.Length)
	}
	return nil
}

func validateAxisPair(kind Kind, a, b string) error {
	if a == "" || b == "" {
		return invalidf(kind, "both axis names are required")
	}
	if a == b {
		return invalidf(kind, "axis names must differ, got %q twice", a)
	}
	return nil
}
