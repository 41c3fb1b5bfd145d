package suffixtree

import (
	"github.com/lzforge/costlz/internal/arena"
	"github.com/lzforge/costlz/segtree"
)

// New builds an annotated suffix tree over input using Ukkonen's online
// construction, then allocates and initializes the live cost (U), distance
// (D), and propagation-support arrays used by Search and PropagateFromLeaf.
//
// The input must be non-empty and must not contain a zero byte: zero is
// reserved as the tree's end-of-string sentinel, appended internally so the
// construction always finishes in a fully explicit tree (every suffix,
// including the one ending at the sentinel, terminates at its own leaf).
func New(input []byte, opts ...Option) (*Tree, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	n := len(input)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for _, b := range input {
		if b == 0 {
			return nil, ErrZeroByte
		}
	}

	m := n + 1 // +1 for the appended sentinel
	text := make([]byte, m+1)
	copy(text[1:], input)
	text[m] = 0 // sentinel: the one byte value input is guaranteed not to contain

	b := newBuilder(text, m)
	b.run()

	t := &Tree{
		cost: int64(cfg.Cost),
		a:    b.a,
		root: b.rootID,
		text: text,
		m:    m,
		n:    n,
	}
	t.finalize()
	return t, nil
}

// builder holds Ukkonen's transient construction state: the active point
// (node, edge, length), the remaining-suffix counter, and the single pending
// "suffixless" internal node created earlier in the current phase.
type builder struct {
	a      *arena.Arena
	text   []byte
	m      int
	rootID arena.NodeID

	activeNode   arena.NodeID
	activeEdge   int
	activeLength int
	remainder    int
	lastNewNode  arena.NodeID
}

func newBuilder(text []byte, m int) *builder {
	a := arena.New(m)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	return &builder{
		a:            a,
		text:         text,
		m:            m,
		rootID:       root,
		activeNode:   root,
		activeLength: 0,
		lastNewNode:  arena.NilID,
	}
}

func (b *builder) run() {
	for pos := 1; pos <= b.m; pos++ {
		b.extend(pos)
	}
}

// extend runs the Single Phase Algorithm for phase pos: advance the virtual
// leaf end, then run Single Extension Algorithm steps until rule 3 fires
// (the suffix is already present) or all pending suffixes are inserted.
func (b *builder) extend(pos int) {
	b.a.SetEnd(pos)
	b.remainder++
	b.lastNewNode = arena.NilID

	for b.remainder > 0 {
		if b.activeLength == 0 {
			b.activeEdge = pos
		}
		c := b.text[b.activeEdge]
		child, ok := b.findChild(b.activeNode, c)
		if !ok {
			// Rule 2, new_son: no outgoing edge for c — append a fresh leaf.
			b.a.CreateNode(b.activeNode, pos, 0, pos-b.remainder+1, true)
			b.linkPending(b.activeNode)
		} else {
			edgeLen := b.a.EdgeLen(child)
			if b.activeLength >= edgeLen {
				// Skip trick: walk onto the child's edge without comparing characters.
				b.activeEdge += edgeLen
				b.activeLength -= edgeLen
				b.activeNode = child
				continue
			}
			cn := b.a.Node(child)
			if b.text[cn.EdgeStart+b.activeLength] == b.text[pos] {
				// Rule 3: suffix already present, phase ends here.
				if b.activeNode != b.rootID {
					b.linkPending(b.activeNode)
				}
				b.activeLength++
				return
			}
			// Rule 2, split: diverge mid-edge.
			oldEdgeStart, oldPathPosition := cn.EdgeStart, cn.PathPosition
			splitEnd := oldEdgeStart + b.activeLength - 1
			split := b.a.CreateNode(b.activeNode, oldEdgeStart, splitEnd, oldPathPosition, false)

			// Re-fetch: CreateNode may have grown the arena's backing slice,
			// which would invalidate the cn pointer taken above.
			b.a.Detach(child)
			b.a.Node(child).EdgeStart = oldEdgeStart + b.activeLength
			b.a.Attach(split, child)

			b.a.CreateNode(split, pos, 0, pos-b.remainder+1, true)

			if b.lastNewNode != arena.NilID {
				b.a.Node(b.lastNewNode).SuffixLink = split
			}
			b.lastNewNode = split
		}

		b.remainder--
		if b.activeNode == b.rootID && b.activeLength > 0 {
			b.activeLength--
			b.activeEdge = pos - b.remainder + 1
		} else if b.activeNode != b.rootID {
			link := b.a.Node(b.activeNode).SuffixLink
			if link == arena.NilID {
				link = b.rootID
			}
			b.activeNode = link
		}
	}
}

// linkPending assigns a suffix link to the node created earlier in this phase
// that is still waiting for one (the "suffixless" internal node), then clears
// it: at most one such node exists at any time.
func (b *builder) linkPending(to arena.NodeID) {
	if b.lastNewNode != arena.NilID {
		b.a.Node(b.lastNewNode).SuffixLink = to
		b.lastNewNode = arena.NilID
	}
}

func (b *builder) findChild(node arena.NodeID, c byte) (arena.NodeID, bool) {
	child := b.a.Node(node).FirstChild
	for child != arena.NilID {
		cn := b.a.Node(child)
		if b.text[cn.EdgeStart] == c {
			return child, true
		}
		child = cn.RightSibling
	}
	return arena.NilID, false
}

// finalize runs the single post-construction DFS named in spec.md §4.3: fill
// StrDepth for every node, inversePointers for every leaf, and the running
// maxStrDepth sweep used to prune annotation propagation.
func (t *Tree) finalize() {
	t.inversePointers = make([]arena.NodeID, t.m+1)
	reach := make([]int, t.m+1)
	t.setDepth(t.root, 0, reach)

	t.maxStrDepth = make([]int, t.m+1)
	running := 0
	for p := 1; p <= t.m; p++ {
		if reach[p] > running {
			running = reach[p]
		}
		t.maxStrDepth[p] = running
	}

	t.u = make([]int64, t.m+1)
	infinity := int64(t.m + 1)
	for p := range t.u {
		t.u[p] = infinity
	}
	t.d = make([]int64, t.m+1)
	for p := range t.d {
		t.d[p] = -1
	}
	t.seg = segtree.New(t.m, infinity)
	t.lastExhausted = 0
}

func (t *Tree) setDepth(id arena.NodeID, parentDepth int, reach []int) {
	n := t.a.Node(id)
	depth := parentDepth
	if id != t.root {
		depth = parentDepth + t.a.EdgeLen(id)
	}
	n.StrDepth = depth
	if n.IsLeaf {
		t.inversePointers[n.PathPosition] = id
		if end := n.PathPosition + depth - 1; end > reach[n.PathPosition] {
			reach[n.PathPosition] = end
		}
	}
	for child := n.FirstChild; child != arena.NilID; child = t.a.Node(child).RightSibling {
		t.setDepth(child, depth, reach)
	}
}
