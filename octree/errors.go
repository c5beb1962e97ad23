package octree

import "github.com/pkg/errors"

var (
	// ErrDepthExceeded is returned by Set when a branch is found at or below
	// the configured depth: the key and the tree disagree about depth.
	ErrDepthExceeded = errors.New("octree: depth exceeded")

	// ErrMalformedTree is returned by Set when a leaf is found above the
	// configured depth.
	ErrMalformedTree = errors.New("octree: leaf above full depth")

	// ErrOutOfRange is returned by Set on a bounds-checked tree for a
	// coordinate that cannot be represented without aliasing.
	ErrOutOfRange = errors.New("octree: coordinate out of range")

	// ErrInvalidDepth is returned by New for a depth a key cannot address.
	ErrInvalidDepth = errors.New("octree: invalid depth")
)
