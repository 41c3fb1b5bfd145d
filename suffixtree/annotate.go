package suffixtree

import "github.com/lzforge/costlz/internal/arena"

// SetU records a new cost for text position p, updates the segment tree that
// backs range-cost queries, and — when the new cost reaches COST — maintains
// the D array: D[p] becomes 0, and every position back to the previous
// exhausted position gets its distance to p filled in by walking backwards.
//
// It fails with ErrCostExceeded if v is above the COST ceiling: that would
// mean a Search offered a source that cannot keep this position admissible,
// which is a bug in the caller rather than something this method can recover
// from locally.
func (t *Tree) SetU(p int, v int64) error {
	if v > t.cost {
		return ErrCostExceeded
	}
	t.u[p] = v
	if err := t.seg.Update(p, v); err != nil {
		return err
	}
	if v == t.cost {
		t.d[p] = 0
		for q := p - 1; q > t.lastExhausted; q-- {
			t.d[q] = t.d[q+1] + 1
		}
		t.lastExhausted = p
	}
	return nil
}

// PropagateFromLeaf refreshes the annotations of every ancestor that can see
// the phrase just emitted at [textPos, textPos+length): for each text
// position i from textPos+length back to the first position whose reach
// (max_str_depth) no longer covers textPos, re-evaluate that position's leaf
// as a candidate source against every ancestor deep enough to care.
func (t *Tree) PropagateFromLeaf(textPos, length int) {
	finalPos := textPos + length
	if finalPos > t.m {
		finalPos = t.m
	}
	for i := finalPos; i >= 1; i-- {
		if t.maxStrDepth[i] < textPos {
			break
		}
		leaf := t.inversePointers[i]
		t.changeAnnotationFromLeaf(leaf, finalPos, textPos-i)
	}
}

// changeAnnotationFromLeaf walks from leaf up through ancestors whose
// str_depth exceeds length, updating each one's min_max and optimistic_min_max
// to consider leaf's text position as a candidate copy source.
func (t *Tree) changeAnnotationFromLeaf(leaf arena.NodeID, finalPos, length int) {
	p := t.a.Node(leaf).PathPosition
	for cur := t.a.Node(leaf).Parent; cur != arena.NilID; {
		v := t.a.Node(cur)
		if v.StrDepth <= length {
			break
		}
		if p+v.StrDepth-1 <= finalPos {
			cost, _ := t.seg.Max(p, p+v.StrDepth-1, t.cost)
			t.admitMinMax(v, p, cost)
			t.admitOptimistic(v, p, cost)
			t.reconcileOptimisticWithChildren(v)
		}
		cur = v.Parent
	}
}

// admitMinMax applies the min_max acceptance rule: while every known
// candidate is exhausted (min_max == COST), a strictly cheaper candidate
// always wins, and an equally exhausted one wins only on a better D. Once a
// non-exhausted candidate exists, only a cheaper cost can replace it.
func (t *Tree) admitMinMax(v *arena.Node, p int, cost int64) {
	switch v.Annotation.MinMax {
	case arena.Undefined:
		v.Annotation.MinMax = cost
		v.Annotation.TextPos = p
	case t.cost:
		if cost < t.cost {
			v.Annotation.MinMax = cost
			v.Annotation.TextPos = p
		} else if t.dAt(p) > t.dAt(v.Annotation.TextPos) {
			v.Annotation.TextPos = p
		}
	default:
		if cost < v.Annotation.MinMax {
			v.Annotation.MinMax = cost
			v.Annotation.TextPos = p
		}
	}
}

// admitOptimistic applies the same acceptance rule as admitMinMax to
// optimistic_min_max, so an exhausted candidate is kept when nothing better
// is known and Search can still fall back to it via the D tiebreak.
func (t *Tree) admitOptimistic(v *arena.Node, p int, cost int64) {
	switch v.Annotation.OptimisticMinMax {
	case arena.Undefined:
		v.Annotation.OptimisticMinMax = cost
		v.Annotation.OptimisticTextPos = p
	case t.cost:
		if cost < t.cost {
			v.Annotation.OptimisticMinMax = cost
			v.Annotation.OptimisticTextPos = p
		} else if t.dAt(p) > t.dAt(v.Annotation.OptimisticTextPos) {
			v.Annotation.OptimisticTextPos = p
		}
	default:
		if cost < v.Annotation.OptimisticMinMax {
			v.Annotation.OptimisticMinMax = cost
			v.Annotation.OptimisticTextPos = p
		}
	}
}

// reconcileOptimisticWithChildren re-admits the best optimistic candidate
// already held by any child (the "newMinMaxHolder": the child with the
// smallest optimistic_min_max, tiebroken by D), so a point update at a deep
// leaf keeps bubbling its effect up through siblings' existing annotations
// rather than only through the single path back to root.
func (t *Tree) reconcileOptimisticWithChildren(v *arena.Node) {
	child := v.FirstChild
	best := arena.Undefined
	var bestPos int
	found := false
	for child != arena.NilID {
		cn := t.a.Node(child)
		om := cn.Annotation.OptimisticMinMax
		switch {
		case om == arena.Undefined:
			// no candidate in this child's subtree yet
		case !found:
			best, bestPos, found = om, cn.Annotation.OptimisticTextPos, true
		case best == t.cost && om == t.cost:
			if t.dAt(cn.Annotation.OptimisticTextPos) > t.dAt(bestPos) {
				bestPos = cn.Annotation.OptimisticTextPos
			}
		case om < best:
			best, bestPos = om, cn.Annotation.OptimisticTextPos
		}
		child = cn.RightSibling
	}
	if found {
		t.admitOptimistic(v, bestPos, best)
	}
}
