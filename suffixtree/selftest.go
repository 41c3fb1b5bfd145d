package suffixtree

import (
	"fmt"

	"github.com/lzforge/costlz/internal/arena"
)

// FindSubstring performs a classical, annotation-free descent matching
// pattern against the tree topology and returns how many leading bytes of
// pattern were matched. For any pattern that is a genuine substring of the
// indexed text, the result equals len(pattern).
func (t *Tree) FindSubstring(pattern []byte) int {
	node := t.root
	matched := 0
	for matched < len(pattern) {
		child, ok := t.findSon(node, pattern[matched])
		if !ok {
			return matched
		}
		edgeStart := t.a.Node(child).EdgeStart
		edgeLen := t.a.EdgeLen(child)
		i := 0
		for i < edgeLen && matched < len(pattern) {
			if t.text[edgeStart+i] != pattern[matched] {
				return matched
			}
			i++
			matched++
		}
		node = child
	}
	return matched
}

// LeafCount returns the number of leaves in the tree, which must equal
// Len()+1 (one per suffix of text, including the sentinel-only suffix) for
// any correctly built tree.
func (t *Tree) LeafCount() int {
	count := 0
	var walk func(id arena.NodeID)
	walk = func(id arena.NodeID) {
		n := t.a.Node(id)
		if n.IsLeaf {
			count++
		}
		for child := n.FirstChild; child != arena.NilID; child = t.a.Node(child).RightSibling {
			walk(child)
		}
	}
	walk(t.root)
	return count
}

// SelfTest verifies the "tree correctness" property: every non-empty
// substring of the indexed input (excluding the sentinel) is found by
// FindSubstring with its full length. It returns ok == true on success, or
// ok == false and a description of the first failing substring otherwise.
//
// This is O(n^3) in the worst case (every substring, scanned from scratch)
// and is meant for short inputs — the same role spec scenario 8.4 gives it —
// not for routine use on large files.
func (t *Tree) SelfTest() (ok bool, failure string) {
	n := t.n
	for i := 1; i <= n; i++ {
		for j := i; j <= n; j++ {
			pattern := t.text[i : j+1]
			got := t.FindSubstring(pattern)
			want := j - i + 1
			if got != want {
				return false, fmt.Sprintf("substring [%d,%d] (%q): matched %d of %d", i, j, pattern, got, want)
			}
		}
	}
	return true, ""
}
