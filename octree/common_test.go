package octree

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stretchr/testify/require"
)

type point [3]int32

func newObservedTree[T any](t testing.TB, depth uint, opts ...Option) (*Tree[T], *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	tree, err := New[T](depth, append(opts, WithLogger(zap.New(core)))...)
	require.NoError(t, err)

	return tree, logs
}

func newTree[T any](t testing.TB, depth uint, opts ...Option) *Tree[T] {
	t.Helper()

	tree, err := New[T](depth, opts...)
	require.NoError(t, err)

	return tree
}

// randomPoints returns up to total distinct points within the bounds of depth.
func randomPoints(seed int64, depth uint, total int) []point {
	var (
		fake   = gofakeit.New(seed)
		lo, hi = int(-(int64(1) << (depth - 1))), int(int64(1)<<(depth-1) - 1)
		seen   = make(map[point]struct{}, total)
		points = make([]point, 0, total)
	)

	for len(points) < total {
		p := point{
			int32(fake.Number(lo, hi)),
			int32(fake.Number(lo, hi)),
			int32(fake.Number(lo, hi)),
		}

		if _, dup := seen[p]; dup {
			continue
		}

		seen[p] = struct{}{}
		points = append(points, p)
	}

	return points
}

// cube returns every point of a tree of the given depth.
func cube(depth uint) []point {
	var (
		half   = int32(1) << (depth - 1)
		points = make([]point, 0, 1<<(3*depth))
	)

	for x := -half; x < half; x++ {
		for y := -half; y < half; y++ {
			for z := -half; z < half; z++ {
				points = append(points, point{x, y, z})
			}
		}
	}

	return points
}
