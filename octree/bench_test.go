package octree

import (
	"testing"
)

const benchDepth = 12

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		points = randomPoints(1234567890, benchDepth, b.N)
		m      = make(map[point]int)
	)

	b.ResetTimer()

	for i, p := range points {
		m[p] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		points = randomPoints(1234567890, benchDepth, b.N)
		m      = make(map[point]int)
	)

	for i, p := range points {
		m[p] = i
	}

	b.ResetTimer()

	for _, p := range points {
		_ = m[p]
	}
}

func BenchmarkOctree_Set(b *testing.B) {
	var (
		points = randomPoints(1234567890, benchDepth, b.N)
		tree   = newTree[int](b, benchDepth)
	)

	b.ResetTimer()

	for i, p := range points {
		_ = tree.Set(p[0], p[1], p[2], i)
	}
}

func BenchmarkOctree_Get(b *testing.B) {
	var (
		points = randomPoints(1234567890, benchDepth, b.N)
		tree   = newTree[int](b, benchDepth)
	)

	for i, p := range points {
		_ = tree.Set(p[0], p[1], p[2], i)
	}

	b.ResetTimer()

	for _, p := range points {
		_, _ = tree.Get(p[0], p[1], p[2])
	}
}

func BenchmarkOctree_DenseCube(b *testing.B) {
	const depth = 5

	points := cube(depth)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree := newTree[int](b, depth)

		for j, p := range points {
			_ = tree.Set(p[0], p[1], p[2], j)
		}
		for _, p := range points {
			_, _ = tree.Get(p[0], p[1], p[2])
		}
	}
}
