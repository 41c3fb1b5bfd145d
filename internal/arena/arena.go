package arena

// NodeID is a stable, dense identity for a node inside an Arena.
type NodeID int32

// NilID marks the absence of a node (no parent, no sibling, no link).
const NilID NodeID = -1

// Undefined is the sentinel for an unset annotation field (min_max / optimistic_min_max).
const Undefined int64 = -1

// Annotation is the per-node summary described by the suffix tree's cost model:
// the best (lowest-cost) source leaf in the node's subtree, plus an "optimistic"
// variant that also admits exhausted sources, tiebroken by the D array.
type Annotation struct {
	MinMax            int64 // lowest known candidate cost (COST while every known candidate is exhausted), or Undefined
	TextPos           int   // leaf achieving MinMax
	OptimisticMinMax  int64 // as MinMax, but may also hold an exhausted (cost == COST) candidate
	OptimisticTextPos int   // leaf achieving OptimisticMinMax
}

func newAnnotation() Annotation {
	return Annotation{MinMax: Undefined, OptimisticMinMax: Undefined}
}

// Node is one edge-plus-subtree of the suffix tree: the edge from Parent to this
// node is labeled Text[EdgeStart..edgeEnd], where a leaf's edgeEnd is the Arena's
// shared "virtual end" rather than a value stored on the node itself.
type Node struct {
	Parent       NodeID
	FirstChild   NodeID
	LeftSibling  NodeID
	RightSibling NodeID
	SuffixLink   NodeID

	EdgeStart int
	edgeEnd   int // meaningful only when !IsLeaf
	IsLeaf    bool

	PathPosition int // starting text position of the suffix this leaf ends, or of
	// any suffix passing through this internal node
	StrDepth int // total edge-label length from root, set once after construction

	Annotation Annotation
}

// Arena owns all nodes of one suffix tree and the shared "virtual end" used by
// Ukkonen's construction so that leaf edges never need individual updates.
type Arena struct {
	nodes []Node
	end   int
}

// New returns an empty Arena. Reserve sizes the backing slice for a tree over
// n text positions (at most 2n-1 nodes, the standard suffix-tree bound).
func New(reserve int) *Arena {
	cap := 2*reserve + 1
	if cap < 4 {
		cap = 4
	}
	return &Arena{nodes: make([]Node, 0, cap)}
}

// SetEnd updates the shared virtual leaf end advanced once per Ukkonen phase.
func (a *Arena) SetEnd(e int) { a.end = e }

// End returns the current virtual leaf end.
func (a *Arena) End() int { return a.end }

// Len reports how many nodes have been created.
func (a *Arena) Len() int { return len(a.nodes) }

// CreateNode allocates a node, appends it to parent's child list (tail,
// insertion order), and initializes its annotation to Undefined. Pass
// NilID as parent only for the root.
func (a *Arena) CreateNode(parent NodeID, edgeStart, edgeEnd, pathPosition int, isLeaf bool) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{
		Parent:       parent,
		FirstChild:   NilID,
		LeftSibling:  NilID,
		RightSibling: NilID,
		SuffixLink:   NilID,
		EdgeStart:    edgeStart,
		edgeEnd:      edgeEnd,
		IsLeaf:       isLeaf,
		PathPosition: pathPosition,
		Annotation:   newAnnotation(),
	})
	if parent != NilID {
		a.appendChild(parent, id)
	}
	return id
}

func (a *Arena) appendChild(parent, child NodeID) {
	p := &a.nodes[parent]
	if p.FirstChild == NilID {
		p.FirstChild = child
		return
	}
	tail := p.FirstChild
	for a.nodes[tail].RightSibling != NilID {
		tail = a.nodes[tail].RightSibling
	}
	a.LinkSiblings(tail, child)
}

// LinkSiblings sets reciprocal sibling links between left and right,
// tolerating NilID on either side.
func (a *Arena) LinkSiblings(left, right NodeID) {
	if left != NilID {
		a.nodes[left].RightSibling = right
	}
	if right != NilID {
		a.nodes[right].LeftSibling = left
	}
}

// Detach removes id from its parent's child sibling list. id itself is left
// intact (edge, depth, annotation) so it can be re-attached elsewhere, as
// happens when an edge is split during construction.
func (a *Arena) Detach(id NodeID) {
	n := &a.nodes[id]
	left, right := n.LeftSibling, n.RightSibling
	if left != NilID {
		a.nodes[left].RightSibling = right
	} else if n.Parent != NilID && a.nodes[n.Parent].FirstChild == id {
		a.nodes[n.Parent].FirstChild = right
	}
	if right != NilID {
		a.nodes[right].LeftSibling = left
	}
	n.LeftSibling, n.RightSibling = NilID, NilID
}

// Attach appends id to parent's child list and sets id's Parent.
func (a *Arena) Attach(parent, id NodeID) {
	a.nodes[id].Parent = parent
	a.appendChild(parent, id)
}

// Node returns a mutable pointer to the node identified by id.
func (a *Arena) Node(id NodeID) *Node { return &a.nodes[id] }

// EdgeEnd returns the effective end of the edge leading to id: the shared
// virtual end for leaves, the stored value for internal nodes.
func (a *Arena) EdgeEnd(id NodeID) int {
	n := &a.nodes[id]
	if n.IsLeaf {
		return a.end
	}
	return n.edgeEnd
}

// EdgeLen returns the label length of the edge leading to id.
func (a *Arena) EdgeLen(id NodeID) int {
	return a.EdgeEnd(id) - a.nodes[id].EdgeStart + 1
}

// DeleteSubtree detaches id from its parent and frees its descendants in
// post-order. Node identities of surviving nodes are unaffected; freed slots
// are not reused. Construction never calls this — it exists for callers that
// tear down (or prune) part of a tree between factorization runs.
func (a *Arena) DeleteSubtree(id NodeID) {
	if id == NilID {
		return
	}
	if p := a.nodes[id].Parent; p != NilID {
		a.Detach(id)
	}
	a.free(id)
}

func (a *Arena) free(id NodeID) {
	child := a.nodes[id].FirstChild
	for child != NilID {
		next := a.nodes[child].RightSibling
		a.free(child)
		child = next
	}
	a.nodes[id] = Node{Parent: NilID, FirstChild: NilID, LeftSibling: NilID, RightSibling: NilID, SuffixLink: NilID}
}
