package octree

import (
	"lukechampine.com/uint128"

	"github.com/aglyzov/go-octree/morton"
)

// Range calls fn for every stored value in Z-order until fn returns false.
// Coordinates are reported in their canonical form within the tree bounds,
// so a value stored through an aliased coordinate shows up at its wrapped
// position. fn must not modify the tree.
func (t *Tree[T]) Range(fn func(x, y, z int32, val T) bool) {
	t.walk(&t.root, morton.Key{}, 0, fn)
}

func (t *Tree[T]) walk(n *node[T], path morton.Key, level uint, fn func(x, y, z int32, val T) bool) bool {
	switch n.kind {
	case LeafNode:
		x, y, z := morton.Decode(path, t.depth)
		return fn(x, y, z, n.value)

	case BranchNode:
		for i := range n.children {
			if n.occupied>>i&1 == 0 {
				continue
			}

			var (
				group = uint128.From64(uint64(i)).Lsh(level * morton.LevelBits)
				next  = morton.Key{Uint128: path.Or(group)}
			)

			if !t.walk(&n.children[i], next, level+1, fn) {
				return false
			}
		}
	}

	return true
}
