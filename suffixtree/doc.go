// Package suffixtree implements an annotated generalized-position suffix tree
// over a single byte string, purpose-built for bounded-cost LZ factorization.
//
// It bundles the three subsystems that must stay in lockstep to make a
// cost-aware longest-match lookup cheap:
//
//   - Construction: Ukkonen's online algorithm (build.go) builds the full
//     suffix tree in one linear pass, using suffix links, the skip trick, and
//     a shared "virtual end" so leaf edges never need individual updates
//     mid-construction.
//   - Annotation: every internal node tracks, for its subtree, the leaf that
//     currently offers the best (lowest-cost) copy source under a live,
//     externally mutated cost array (annotate.go). A second "optimistic"
//     annotation additionally tracks the best source among exhausted
//     (cost == COST) leaves, tiebroken by distance-to-next-exhausted (D), so
//     Search can fall back to it once nothing better exists.
//   - Search: a root-to-leaf descent (search.go) that follows optimistic
//     annotations to find the longest prefix of T[q..] whose source respects
//     the COST ceiling, without ever re-scanning the subtree it walks.
//
// These three live in one package because they share one Tree and its
// annotation fields — the same way this codebase keeps several tightly
// coupled max-flow algorithms together when they share one residual
// representation.
//
// # Usage
//
//	tree, err := suffixtree.New(input, suffixtree.WithCost(cost))
//	if err != nil {
//	    // ErrEmptyInput, ErrZeroByte, or a panic from a bad WithCost value
//	}
//	m, err := tree.Search(textPos)       // longest admissible match from textPos
//	tree.SetU(textPos, newCost)          // record a position's updated cost
//	tree.PropagateFromLeaf(textPos, len) // refresh ancestor annotations
//
// # Errors
//
//	ErrEmptyInput    - New called with a zero-length input.
//	ErrZeroByte      - input contains the reserved zero byte.
//	ErrBadCost       - WithCost given a non-positive ceiling (panics).
//	ErrCostExceeded  - SetU asked to record a cost above COST.
//	ErrInvalidSource - Search reached a node annotated with source position 0.
//
// # Complexity
//
//	Construction: O(m) over text of length m = n+1 (input plus sentinel).
//	Search:       O(match length + tree height) per call.
//	Propagation:  bounded by phrase length times tree height per call.
package suffixtree
