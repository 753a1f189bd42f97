package bintree

import (
	"errors"
	"slices"

	"github.com/goose-lang/primitive"
	"golang.org/x/exp/constraints"
)

// ErrNoItems is returned when bulk construction is given no elements.
// A tree always holds at least one value, so there is nothing valid to
// build from an empty slice.
var ErrNoItems = errors.New("bintree: cannot make a binary tree out of no items")

// From builds a balanced tree from data, sorting data ascending in
// place first. Returns ErrNoItems if data is empty.
func From[T constraints.Ordered](data []T) (*Tree[T], error) {
	slices.Sort(data)
	return FromSorted(data)
}

// FromSorted builds a tree from an ascending slice by recursively
// placing the median element at the root, which gives logarithmic
// height for distinct inputs. The pivot index is len(data)/2, so
// even-length inputs root in their right half and the tree leans
// slightly right.
//
// Sortedness is not checked: passing an unsorted slice is a contract
// violation that yields a tree with wrong lookups, not an error. Nor
// are duplicates suppressed the way Insert suppresses them. Adjacent
// equal elements each become their own node, so a tree built from such
// input can hold equal values on one path.
//
// Returns ErrNoItems if data is empty. Element values are copied into
// the nodes; the tree keeps no reference to data.
func FromSorted[T constraints.Ordered](data []T) (*Tree[T], error) {
	if len(data) == 0 {
		return nil, ErrNoItems
	}
	return fromSorted(data), nil
}

func fromSorted[T constraints.Ordered](data []T) *Tree[T] {
	primitive.Assert(len(data) > 0)
	pivot := len(data) / 2
	t := Leaf(data[pivot])
	if pivot > 0 {
		t.left = fromSorted(data[:pivot])
	}
	if pivot+1 < len(data) {
		t.right = fromSorted(data[pivot+1:])
	}
	return t
}
