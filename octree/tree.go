package octree

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aglyzov/go-octree/internal/options"
	"github.com/aglyzov/go-octree/morton"
)

// MaxDepth is the deepest supported tree.
const MaxDepth = morton.MaxDepth

// Tree maps (x, y, z) coordinates to values of type T.
type Tree[T any] struct {
	root        node[T]
	depth       uint
	leaves      int
	branches    int
	boundsCheck bool
	logger      *zap.Logger
}

// New returns an empty tree of the given depth. A tree of depth d holds 2^d
// cells along each axis. Depth 0 is a single cell: the root itself becomes
// the leaf and every coordinate maps to it.
func New[T any](depth uint, opts ...Option) (*Tree[T], error) {
	if depth > MaxDepth {
		return nil, errors.Wrapf(ErrInvalidDepth, "depth %d is above %d", depth, MaxDepth)
	}

	cfg := &config{logger: zap.NewNop()}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	tree := &Tree[T]{
		depth:       depth,
		boundsCheck: cfg.boundsCheck,
		logger:      cfg.logger.Named("octree"),
	}

	tree.logger.Debug("octree created",
		zap.Uint("depth", depth),
		zap.Bool("bounds_check", cfg.boundsCheck),
	)

	return tree, nil
}

// Depth returns the number of levels between the root and a leaf.
func (t *Tree[T]) Depth() uint {
	return t.depth
}

// Len returns the number of distinct coordinates stored.
func (t *Tree[T]) Len() int {
	return t.leaves
}

// NodeCount returns the number of materialized nodes (branches and leaves).
func (t *Tree[T]) NodeCount() int {
	return t.branches + t.leaves
}

// Get returns the value stored at (x, y, z). A leaf met above the full depth
// can only come from a corrupted tree and is reported as not found.
func (t *Tree[T]) Get(x, y, z int32) (T, bool) {
	var zero T

	if t.boundsCheck && !t.inRange(x, y, z) {
		return zero, false
	}

	var (
		key   = morton.Encode(x, y, z, t.depth)
		cur   = &t.root
		level uint
	)

	for cur.kind == BranchNode {
		cur = &cur.children[key.Octant()]
		key = key.Next()
		level++
	}

	if cur.kind != LeafNode {
		return zero, false // not found
	}

	if level != t.depth {
		t.logger.Warn("leaf found off full depth",
			zap.Int32("x", x), zap.Int32("y", y), zap.Int32("z", z),
			zap.Uint("level", level),
			zap.Uint("depth", t.depth),
		)
		return zero, false
	}

	return cur.value, true
}

// Set stores val at (x, y, z) replacing any previous value. Nodes created on
// the way down to a failing check are kept.
func (t *Tree[T]) Set(x, y, z int32, val T) error {
	if t.boundsCheck && !t.inRange(x, y, z) {
		lo, hi := morton.Bounds(t.depth)
		return t.failed(x, y, z, errors.Wrapf(ErrOutOfRange,
			"(%d, %d, %d) is outside [%d..%d] at depth %d", x, y, z, lo, hi, t.depth))
	}

	var (
		key   = morton.Encode(x, y, z, t.depth)
		cur   = &t.root
		level uint
	)

	for {
		switch cur.kind {
		case BranchNode:
			if level >= t.depth {
				return t.failed(x, y, z, errors.Wrapf(ErrDepthExceeded,
					"branch at level %d of depth %d", level, t.depth))
			}

			cur = cur.child(key.Octant())
			key = key.Next()
			level++

		case LeafNode:
			if level < t.depth {
				return t.failed(x, y, z, errors.Wrapf(ErrMalformedTree,
					"leaf at level %d of depth %d", level, t.depth))
			}

			cur.value = val // overwrite in place

			return nil

		default:
			if level < t.depth {
				// expand and look at the same node again
				cur.makeBranch()
				t.branches++

				continue
			}

			cur.makeLeaf(val)
			t.leaves++

			return nil
		}
	}
}

func (t *Tree[T]) inRange(x, y, z int32) bool {
	return morton.InRange(x, t.depth) && morton.InRange(y, t.depth) && morton.InRange(z, t.depth)
}

func (t *Tree[T]) failed(x, y, z int32, err error) error {
	t.logger.Warn("insert failed",
		zap.Int32("x", x), zap.Int32("y", y), zap.Int32("z", z),
		zap.Error(err),
	)

	return err
}
