// Package bintree implements a binary search tree over any ordered
// element type.
package bintree

import (
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// A Tree is a node of a binary search tree: a value plus optional left
// and right subtrees, which the node owns exclusively. Every tree holds
// at least one value; there is no empty tree in this design, so the
// zero of *Tree (nil) is the absence of a tree, not a tree of nothing.
//
// Ordering uses the natural < on T and must be a consistent total
// order. Behavior is unspecified for orderings that disagree with
// themselves, such as float NaN.
//
// A Tree is not safe for concurrent use; see the synctree package for
// a wrapper that supports concurrent readers.
type Tree[T constraints.Ordered] struct {
	value T
	left  *Tree[T]
	right *Tree[T]
}

// Leaf returns a tree holding value with no children.
func Leaf[T constraints.Ordered](value T) *Tree[T] {
	return &Tree[T]{value: value}
}

// WithLeft returns a tree holding value with only a left subtree.
//
// None of the constructors validate the supplied subtrees: keeping
// every value in left below value is the caller's responsibility.
func WithLeft[T constraints.Ordered](value T, left *Tree[T]) *Tree[T] {
	return &Tree[T]{value: value, left: left}
}

// WithRight returns a tree holding value with only a right subtree.
func WithRight[T constraints.Ordered](value T, right *Tree[T]) *Tree[T] {
	return &Tree[T]{value: value, right: right}
}

// Branch returns a tree holding value with both subtrees.
func Branch[T constraints.Ordered](value T, left *Tree[T], right *Tree[T]) *Tree[T] {
	return &Tree[T]{value: value, left: left, right: right}
}

// Contains reports whether value is in the tree. A nil tree contains
// nothing.
func (t *Tree[T]) Contains(value T) bool {
	if t == nil {
		return false
	}
	if value == t.value {
		return true
	}
	if value > t.value {
		return t.right.Contains(value)
	}
	return t.left.Contains(value)
}

// Insert adds value to the tree in place, attaching at most one new
// leaf at the end of the comparison chain. Inserting a value the tree
// already holds is a no-op: the duplicate is silently dropped rather
// than stored twice. This is a deliberate set policy, not multiset
// semantics.
//
// Insert never rebalances, so adversarial orders (say, strictly
// increasing values) degrade the tree to a list with linear depth. It
// must be called on a constructed tree, never a nil one.
func (t *Tree[T]) Insert(value T) {
	if value == t.value {
		// value already present, drop the duplicate
		return
	}
	if value > t.value {
		if t.right == nil {
			t.right = Leaf(value)
		} else {
			t.right.Insert(value)
		}
		return
	}
	if t.left == nil {
		t.left = Leaf(value)
	} else {
		t.left.Insert(value)
	}
}

// Equal reports whether t and other are structurally equal: the same
// values in the same shape. An absent child matches only an absent
// child.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.value == other.value && t.left.Equal(other.left) && t.right.Equal(other.right)
}

// Clone returns a deep copy of the tree that shares no nodes with t.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	return &Tree[T]{
		value: t.value,
		left:  t.left.Clone(),
		right: t.right.Clone(),
	}
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() uint64 {
	if t == nil {
		return 0
	}
	children := std.SumAssumeNoOverflow(t.left.Size(), t.right.Size())
	return std.SumAssumeNoOverflow(children, 1)
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf, 0 for a nil tree.
func (t *Tree[T]) Height() uint64 {
	if t == nil {
		return 0
	}
	return 1 + max(t.left.Height(), t.right.Height())
}
