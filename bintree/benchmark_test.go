package bintree

import (
	"testing"

	"github.com/goose-lang/primitive"
)

func benchmarkTree(b *testing.B, n uint64) *Tree[uint64] {
	vals := make([]uint64, n)
	for i := range vals {
		vals[i] = uint64(i)
	}
	tree, err := FromSorted(vals)
	if err != nil {
		b.Fatalf("failed to build tree: %v", err)
	}
	return tree
}

func BenchmarkContains(b *testing.B) {
	const n = 100000
	tree := benchmarkTree(b, n)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tree.Contains(primitive.RandomUint64() % (2 * n))
	}
}

func BenchmarkInsert(b *testing.B) {
	tree := Leaf(primitive.RandomUint64())

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tree.Insert(primitive.RandomUint64())
	}
}

func BenchmarkFromSorted(b *testing.B) {
	const n = 100000
	vals := make([]uint64, n)
	for i := range vals {
		vals[i] = uint64(i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = FromSorted(vals)
	}
}
