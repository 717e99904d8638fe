package hierarchical

// Node identifies one endpoint of a merge: either an original object (a
// leaf) or a cluster created at an earlier merge step (internal). This
// keeps the tree-building API free of the signed-integer encoding used
// internally and in wire-compatible output.
type Node struct {
	leaf  bool
	index int
}

// Leaf wraps an original object index.
func Leaf(object int) Node { return Node{leaf: true, index: object} }

// Internal wraps the 0-based step index of the merge that created this
// cluster; step i created the node conventionally encoded as id -(i+1).
func Internal(step int) Node { return Node{leaf: false, index: step} }

// IsLeaf reports whether the node is an original object rather than a
// cluster produced by an earlier merge.
func (n Node) IsLeaf() bool { return n.leaf }

// Index returns the object index for a leaf, or the step index for an
// internal node.
func (n Node) Index() int { return n.index }

// id encodes n using the signed-integer convention: non-negative for
// leaves, -(step+1) for internal nodes.
func (n Node) id() int {
	if n.leaf {
		return n.index
	}
	return -(n.index + 1)
}

// nodeFromID decodes the signed-integer convention back into a Node.
func nodeFromID(id int) Node {
	if id < 0 {
		return Internal(-id - 1)
	}
	return Leaf(id)
}

// Merge records one agglomeration step: the two nodes joined and the
// linkage distance between them at the moment of merging.
type Merge struct {
	Left, Right Node
	Distance    float64
}

// Tree is the ordered sequence of merges produced by a linkage engine; step
// i (0-based) in Merges created the node Internal(i).
type Tree struct {
	Merges []Merge
}
