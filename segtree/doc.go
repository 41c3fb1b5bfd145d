// Package segtree provides a range-max segment tree over a mutable array of
// nonnegative per-position costs.
//
// It backs the suffix tree's cost-aware search: given a candidate copy source
// at text position p and a match length d, the search needs the maximum cost
// on U[p..p+d-1] to decide whether that source is still admissible under the
// ceiling COST. Because a position's cost can only ever increase while it
// stays admissible (it is a count of how many times that position has been
// copied), a plain range-max with early termination once the ceiling is
// reached is all the query needs.
//
// Complexity:
//
//	Update: O(log n)
//	Max:    O(log n), short-circuiting a branch as soon as its running
//	        maximum reaches the supplied ceiling — nothing in this domain
//	        can exceed it, so there is no need to examine the rest of the range.
package segtree
