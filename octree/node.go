package octree

// NodeKind tells the three node shapes apart.
type NodeKind uint8

// A node is empty until something is inserted below it, then becomes either a
// branch with Fanout children or, at full depth, a leaf holding one value.
const (
	EmptyNode = NodeKind(iota)
	BranchNode
	LeafNode
)

// Fanout is the number of children of every branch.
const Fanout = 8

func (k NodeKind) String() string {
	switch k {
	case EmptyNode:
		return "empty"
	case BranchNode:
		return "branch"
	case LeafNode:
		return "leaf"
	default:
		return "unknown"
	}
}

// node is a tagged union: children is set only for branches and value only
// for leaves. The zero value is an empty node.
type node[T any] struct {
	kind     NodeKind
	occupied uint8 // bit i is set once children[i] has been materialized
	children *[Fanout]node[T]
	value    T
}

func (n *node[T]) makeBranch() {
	n.kind = BranchNode
	n.children = new([Fanout]node[T])
}

func (n *node[T]) makeLeaf(val T) {
	n.kind = LeafNode
	n.value = val
}

// child returns the child at the given octant marking it as occupied.
func (n *node[T]) child(octant uint8) *node[T] {
	n.occupied |= 1 << octant
	return &n.children[octant]
}
