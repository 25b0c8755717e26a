// Node comparison: classification into orderable kinds plus a total
// ordering within each kind.

package order

import (
	"fmt"
	"strings"

	"github.com/graphtide/graphtide/core"
)

// nodeClass partitions node identities into mutually orderable families.
type nodeClass uint8

const (
	classNone nodeClass = iota // not orderable at all
	classNumeric
	classString
)

// numericValue extracts a float64 from any Go integer or float kind.
func numericValue(n core.Node) (float64, bool) {
	switch v := n.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// classify reports the orderable family of n.
func classify(n core.Node) nodeClass {
	if _, ok := numericValue(n); ok {
		return classNumeric
	}
	if _, ok := n.(string); ok {
		return classString
	}

	return classNone
}

// Compare orders two node identities. It returns a negative, zero, or
// positive int like strings.Compare, or ErrNotOrderable when a and b do
// not belong to the same orderable family.
func Compare(a, b core.Node) (int, error) {
	if fa, ok := numericValue(a); ok {
		fb, ok := numericValue(b)
		if !ok {
			return 0, fmt.Errorf("%w: %v vs %v", ErrNotOrderable, a, b)
		}
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if sa, ok := a.(string); ok {
		sb, ok := b.(string)
		if !ok {
			return 0, fmt.Errorf("%w: %v vs %v", ErrNotOrderable, a, b)
		}

		return strings.Compare(sa, sb), nil
	}

	return 0, fmt.Errorf("%w: %v vs %v", ErrNotOrderable, a, b)
}

// Comparable verifies that every pair in ns is mutually orderable.
// Sets of fewer than two nodes are trivially orderable.
// Complexity: O(len(ns)).
func Comparable(ns []core.Node) error {
	if len(ns) < 2 {
		return nil
	}
	want := classify(ns[0])
	if want == classNone {
		return fmt.Errorf("%w: %v", ErrNotOrderable, ns[0])
	}
	for _, n := range ns[1:] {
		if classify(n) != want {
			return fmt.Errorf("%w: %v vs %v", ErrNotOrderable, ns[0], n)
		}
	}

	return nil
}
