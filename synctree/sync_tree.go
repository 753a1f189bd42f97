// Package synctree wraps a bintree.Tree for concurrent use: any number
// of readers search an immutable snapshot while writers take turns
// cloning the current tree, inserting into the clone, and publishing
// it as the new snapshot.
package synctree

import (
	"sync"

	"github.com/MichaelRFairhurst/go-binary-tree/bintree"
	"golang.org/x/exp/constraints"
)

type atomicRoot[T constraints.Ordered] struct {
	mu  *sync.Mutex
	val *bintree.Tree[T]
}

func newAtomicRoot[T constraints.Ordered](t *bintree.Tree[T]) *atomicRoot[T] {
	return &atomicRoot[T]{mu: new(sync.Mutex), val: t}
}

func (a *atomicRoot[T]) load() *bintree.Tree[T] {
	a.mu.Lock()
	val := a.val
	a.mu.Unlock()
	return val
}

func (a *atomicRoot[T]) store(t *bintree.Tree[T]) {
	a.mu.Lock()
	a.val = t
	a.mu.Unlock()
}

// A SyncTree supports concurrent reads by deep-cloning the tree on
// every insert. A published root is never mutated again, so readers
// search it without holding any lock past the root load.
//
// Writes are serialized by a single writer mutex; each insert copies
// the whole tree, so this suits read-heavy use.
type SyncTree[T constraints.Ordered] struct {
	clean *atomicRoot[T]
	mu    *sync.Mutex
}

// NewSyncTree wraps root, which may be nil for an initially empty
// tree. The caller must not mutate root after handing it over.
func NewSyncTree[T constraints.Ordered](root *bintree.Tree[T]) *SyncTree[T] {
	return &SyncTree[T]{clean: newAtomicRoot(root), mu: new(sync.Mutex)}
}

// Contains reports whether value is in the current snapshot.
func (s *SyncTree[T]) Contains(value T) bool {
	clean := s.clean.load()
	return clean.Contains(value)
}

// Assuming mu is held, return an owned copy of the current clean tree.
func (s *SyncTree[T]) dirty() *bintree.Tree[T] {
	clean := s.clean.load()
	return clean.Clone()
}

// Insert adds value and publishes the resulting tree as the new
// snapshot. Inserting a value already present publishes an equal tree,
// keeping Insert's duplicate-dropping semantics.
func (s *SyncTree[T]) Insert(value T) {
	s.mu.Lock()
	dirty := s.dirty()
	if dirty == nil {
		dirty = bintree.Leaf(value)
	} else {
		dirty.Insert(value)
	}
	s.clean.store(dirty)
	s.mu.Unlock()
}

// Snapshot returns the current tree, or nil if nothing has been
// inserted into an empty SyncTree. The caller must treat it as
// read-only; inserting into a snapshot races with concurrent readers.
func (s *SyncTree[T]) Snapshot() *bintree.Tree[T] {
	return s.clean.load()
}

// Size returns the number of values in the current snapshot.
func (s *SyncTree[T]) Size() uint64 {
	return s.clean.load().Size()
}
