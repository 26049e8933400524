// SPDX-License-Identifier: MIT
// Package: scanpath/position
//
// position.go — the Position value type and its constructors.
//
// Contract:
//   • names, values and indices are parallel slices (same length).
//   • dims lists dimension groups outer→inner; len(dims) is the scan rank.
//   • A Position is never modified after construction.

package position

import (
	"fmt"
	"strings"
	"time"
)

// NoIndex marks an axis value that has no index within a sweep.
const NoIndex = -1

// Position is one multidimensional sample location.
type Position struct {
	names   []string
	values  []any
	indices []int
	dims    [][]string
	dwell   time.Duration
}

// Scalar returns a one-axis position forming a single dimension group.
func Scalar(name string, value any, index int) Position {
	return Position{
		names:   []string{name},
		values:  []any{value},
		indices: []int{index},
		dims:    [][]string{{name}},
	}
}

// Grid returns a two-axis position where each axis is its own dimension
// group (slow axis first). Used by generators that sweep a rectangular grid.
func Grid(slowName string, slowIndex int, slow float64, fastName string, fastIndex int, fast float64) Position {
	return Position{
		names:   []string{slowName, fastName},
		values:  []any{slow, fast},
		indices: []int{slowIndex, fastIndex},
		dims:    [][]string{{slowName}, {fastName}},
	}
}

// Pair returns a two-axis position where both axes belong to the same
// dimension group and share the point number as index. Used by generators
// whose points do not lie on a rectangular grid (spirals, lines, curves).
func Pair(xName string, x float64, yName string, y float64, index int) Position {
	return Position{
		names:   []string{xName, yName},
		values:  []any{x, y},
		indices: []int{index, index},
		dims:    [][]string{{xName, yName}},
	}
}

// Static returns a position with no axes and a single, empty dimension group.
func Static() Position {
	return Position{dims: [][]string{{}}}
}

// Compose merges outer and inner into one position. Axes keep their order
// (outer first) and dimension groups are concatenated outer-then-inner.
// The larger of the two dwell times is kept.
//
// Errors: ErrAxisCollision if any axis name appears in both operands.
// Complexity: O(|outer|·|inner|) name checks, O(|outer|+|inner|) copies.
func Compose(outer, inner Position) (Position, error) {
	for _, n := range inner.names {
		if outer.has(n) {
			return Position{}, fmt.Errorf("Compose: axis %q: %w", n, ErrAxisCollision)
		}
	}

	size := len(outer.names) + len(inner.names)
	out := Position{
		names:   make([]string, 0, size),
		values:  make([]any, 0, size),
		indices: make([]int, 0, size),
		dims:    make([][]string, 0, len(outer.dims)+len(inner.dims)),
		dwell:   outer.dwell,
	}
	out.names = append(append(out.names, outer.names...), inner.names...)
	out.values = append(append(out.values, outer.values...), inner.values...)
	out.indices = append(append(out.indices, outer.indices...), inner.indices...)
	out.dims = append(append(out.dims, outer.dims...), inner.dims...)
	if inner.dwell > out.dwell {
		out.dwell = inner.dwell
	}

	return out, nil
}

// Len returns the number of axes.
func (p Position) Len() int { return len(p.names) }

// Names returns the axis names in production order.
func (p Position) Names() []string {
	return append([]string(nil), p.names...)
}

// Get returns the value of the named axis.
func (p Position) Get(name string) (any, bool) {
	if i := p.lookup(name); i >= 0 {
		return p.values[i], true
	}
	return nil, false
}

// Float returns the value of the named axis as float64.
func (p Position) Float(name string) (float64, error) {
	v, ok := p.Get(name)
	if !ok {
		return 0, fmt.Errorf("Float(%q): %w", name, ErrUnknownAxis)
	}
	f, ok := ToFloat(v)
	if !ok {
		return 0, fmt.Errorf("Float(%q): %T: %w", name, v, ErrNotNumeric)
	}
	return f, nil
}

// Index returns the index of the named axis within its own sweep, or
// NoIndex when the axis is absent or was not indexed.
func (p Position) Index(name string) int {
	if i := p.lookup(name); i >= 0 {
		return p.indices[i]
	}
	return NoIndex
}

// ScanRank returns the number of dimension groups.
func (p Position) ScanRank() int { return len(p.dims) }

// DimensionNames returns the axis names of dimension group level, or nil
// if level is out of range.
func (p Position) DimensionNames(level int) []string {
	if level < 0 || level >= len(p.dims) {
		return nil
	}
	return append([]string{}, p.dims[level]...)
}

// Dwell returns how long the consumer should stay at this position.
// Zero means no dwell was requested.
func (p Position) Dwell() time.Duration { return p.dwell }

// WithDwell returns a copy of p with the given dwell time.
func (p Position) WithDwell(d time.Duration) Position {
	p.dwell = d
	return p
}

// WithValue returns a copy of p where the named axis holds v. Index and
// dimension groups are unchanged.
func (p Position) WithValue(name string, v any) (Position, error) {
	i := p.lookup(name)
	if i < 0 {
		return Position{}, fmt.Errorf("WithValue(%q): %w", name, ErrUnknownAxis)
	}
	values := append([]any(nil), p.values...)
	values[i] = v
	p.values = values
	return p, nil
}

// MapValues returns a copy of p where every axis value v is replaced by
// fn(name, v). The first error returned by fn aborts the mapping.
func (p Position) MapValues(fn func(name string, v any) (any, error)) (Position, error) {
	values := make([]any, len(p.values))
	for i, n := range p.names {
		v, err := fn(n, p.values[i])
		if err != nil {
			return Position{}, err
		}
		values[i] = v
	}
	p.values = values
	return p, nil
}

// String renders the position as "name=value[index], ...".
func (p Position) String() string {
	var sb strings.Builder
	for i, n := range p.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", n, p.values[i])
		if p.indices[i] != NoIndex {
			fmt.Fprintf(&sb, "[%d]", p.indices[i])
		}
	}
	return sb.String()
}

func (p Position) lookup(name string) int {
	for i, n := range p.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (p Position) has(name string) bool { return p.lookup(name) >= 0 }

// ToFloat converts a numeric axis value to float64. It reports false for
// every non-numeric type.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
