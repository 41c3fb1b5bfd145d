// Package factor drives the greedy bounded-cost LZ factorization loop on top
// of an annotated suffix tree: search for the longest admissible match,
// emit a phrase, account for its cost, and propagate the updated annotations
// before advancing.
//
// # Usage
//
//	f, err := factor.New(input, factor.WithCost(cost))
//	if err != nil {
//	    // ErrEmptyInput, ErrZeroByte, or a panic from a bad WithCost value
//	}
//	phrases, err := f.Run()
//	if err != nil {
//	    // ErrCostExceeded or ErrInvalidSource surfaced from the tree —
//	    // both indicate a Searcher bug, never bad input.
//	}
//
// # Errors
//
//	ErrEmptyInput    - New called with a zero-length input.
//	ErrZeroByte      - input contains the reserved zero byte.
//	ErrBadCost       - WithCost given a non-positive ceiling (panics).
//	ErrCostExceeded  - a phrase's cost assignment would exceed COST.
//	ErrInvalidSource - the Searcher returned a zero source position.
//
// # Complexity
//
// O(n) phrases in the worst case, each costing O(tree height) for its search
// and propagation; see suffixtree's complexity notes for the per-call bounds.
package factor
