package octree

import (
	"github.com/hideo55/go-popcount"
)

// Stats describes the shape of a tree.
type Stats struct {
	Depth      uint
	Leaves     int
	Branches   int
	EmptySlots int // child slots of branches that were never materialized
}

// Stats walks the whole tree and counts its nodes.
func (t *Tree[T]) Stats() Stats {
	st := Stats{Depth: t.depth}

	countNodes(&t.root, &st)

	return st
}

func countNodes[T any](n *node[T], st *Stats) {
	switch n.kind {
	case LeafNode:
		st.Leaves++
	case BranchNode:
		st.Branches++
		st.EmptySlots += Fanout - int(popcount.Count(uint64(n.occupied)))

		for i := range n.children {
			if n.occupied>>i&1 != 0 {
				countNodes(&n.children[i], st)
			}
		}
	}
}
