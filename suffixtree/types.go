package suffixtree

import (
	"github.com/lzforge/costlz/internal/arena"
	"github.com/lzforge/costlz/segtree"
)

// Config holds construction-time settings for a Tree.
type Config struct {
	// Cost is the reuse-cost ceiling COST: once a position's copy count
	// reaches Cost it is "exhausted" and only selectable via the D-biased
	// optimistic fallback.
	Cost int
}

// Option configures a Tree at construction time.
type Option func(*Config)

// WithCost sets the cost ceiling. It panics if cost is not positive, the same
// way functional options elsewhere in this codebase reject nonsensical
// configuration at call time rather than deferring to a runtime error.
func WithCost(cost int) Option {
	if cost <= 0 {
		panic(ErrBadCost.Error())
	}
	return func(c *Config) { c.Cost = cost }
}

func defaultConfig() Config {
	return Config{Cost: 1}
}

// Match is the result of a Searcher descent: a candidate source position
// (1-based, into the tree's text) and the number of symbols admissible
// starting there.
type Match struct {
	Pos    int
	Length int
}

// Tree is the annotated suffix tree: topology built once by Ukkonen's
// algorithm, plus the live cost array U, the D (distance-to-exhausted) array,
// and the per-node annotations that Search and PropagateFromLeaf keep in
// sync with U.
type Tree struct {
	cost int64

	a    *arena.Arena
	root arena.NodeID

	text []byte // 1-based; text[0] is unused, text[1..m] is input+sentinel
	m    int     // length of text actually indexed (n+1, including the sentinel)
	n    int     // length of the caller's input, excluding the sentinel

	seg *segtree.Tree

	u               []int64
	d               []int64
	maxStrDepth     []int
	inversePointers []arena.NodeID

	lastExhausted int
}

// Len returns n, the length of the original input (excluding the sentinel).
func (t *Tree) Len() int { return t.n }

// Cost returns the configured COST ceiling.
func (t *Tree) Cost() int64 { return t.cost }

// U returns the current cost at text position p (1-based). Positions not yet
// part of the factorized prefix read back as the "infinity" sentinel used at
// construction, so they can never be chosen as a copy source.
func (t *Tree) U(p int) int64 { return t.u[p] }

// ByteAt returns the indexed byte at 1-based text position p, which may be
// the trailing sentinel at p == Len()+1.
func (t *Tree) ByteAt(p int) byte { return t.text[p] }

func (t *Tree) dAt(p int) int64 {
	if p < 1 || p >= len(t.d) {
		return -1
	}
	return t.d[p]
}
