package suffixtree

import "github.com/lzforge/costlz/internal/arena"

// Search finds the longest admissible match for T[q..] against the tree:
// a source text position whose copy keeps every position's cost at or below
// COST, and the number of symbols that source can supply.
//
// A zero-value Match (Pos == 0, Length == 0) means no admissible source
// exists at all — the caller should emit a literal-only phrase.
func (t *Tree) Search(q int) (Match, error) {
	var current Match
	matched := 0

	node, ok := t.findSon(t.root, t.text[q])
	for ok {
		n := t.a.Node(node)
		ann := n.Annotation

		if ann.OptimisticMinMax == arena.Undefined {
			return current, nil
		}

		if ann.OptimisticMinMax == t.cost {
			if ann.OptimisticTextPos == 0 {
				return current, ErrInvalidSource
			}
			if d := t.dAt(ann.OptimisticTextPos); d > int64(current.Length) {
				current = Match{Pos: ann.OptimisticTextPos, Length: int(d)}
			}
			return current, nil
		}
		if ann.OptimisticTextPos == 0 {
			return current, ErrInvalidSource
		}

		advance, full := t.scanEdge(node, q, matched)
		matched += advance
		current = Match{Pos: ann.OptimisticTextPos, Length: matched}

		if !full || q+matched > t.m {
			return current, nil
		}
		node, ok = t.findSon(node, t.text[q+matched])
	}
	return current, nil
}

// findSon scans node's children (a doubly-linked sibling list, no sorting)
// for the one whose edge starts with c.
func (t *Tree) findSon(node arena.NodeID, c byte) (arena.NodeID, bool) {
	child := t.a.Node(node).FirstChild
	for child != arena.NilID {
		cn := t.a.Node(child)
		if t.text[cn.EdgeStart] == c {
			return child, true
		}
		child = cn.RightSibling
	}
	return arena.NilID, false
}

// scanEdge compares T[q+matched..] against the edge leading to node,
// returning how many additional characters matched and whether the whole
// edge was consumed.
func (t *Tree) scanEdge(node arena.NodeID, q, matched int) (advance int, full bool) {
	n := t.a.Node(node)
	edgeStart := n.EdgeStart
	edgeLen := t.a.EdgeLen(node)

	i := 0
	for i < edgeLen {
		qIdx := q + matched + i
		if qIdx > t.m {
			break
		}
		if t.text[edgeStart+i] != t.text[qIdx] {
			break
		}
		i++
	}
	return i, i == edgeLen
}
