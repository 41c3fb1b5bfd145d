package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lzforge/costlz/internal/arena"
)

func TestCreateNode_RootHasNoParent(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	assert.Equal(t, arena.NilID, a.Node(root).Parent)
	assert.Equal(t, 1, a.Len())
}

func TestCreateNode_AppendsChildrenInInsertionOrder(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	c1 := a.CreateNode(root, 1, 1, 1, true)
	c2 := a.CreateNode(root, 2, 2, 2, true)
	c3 := a.CreateNode(root, 3, 3, 3, true)

	var order []arena.NodeID
	for c := a.Node(root).FirstChild; c != arena.NilID; c = a.Node(c).RightSibling {
		order = append(order, c)
	}
	assert.Equal(t, []arena.NodeID{c1, c2, c3}, order)
}

func TestLeafEdgeEndTracksVirtualEnd(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	leaf := a.CreateNode(root, 1, 0, 1, true)

	a.SetEnd(3)
	assert.Equal(t, 3, a.EdgeEnd(leaf))
	assert.Equal(t, 3, a.EdgeLen(leaf))

	a.SetEnd(5)
	assert.Equal(t, 5, a.EdgeEnd(leaf))
}

func TestInternalNodeEdgeEndIsFixed(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	internal := a.CreateNode(root, 1, 2, 1, false)

	a.SetEnd(100)
	assert.Equal(t, 2, a.EdgeEnd(internal))
	assert.Equal(t, 2, a.EdgeLen(internal))
}

func TestDetachAndAttach_MovesNodeBetweenParents(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	p1 := a.CreateNode(root, 1, 1, 1, false)
	p2 := a.CreateNode(root, 2, 2, 2, false)
	child := a.CreateNode(p1, 3, 3, 3, true)

	a.Detach(child)
	assert.Equal(t, arena.NilID, a.Node(p1).FirstChild)

	a.Attach(p2, child)
	assert.Equal(t, p2, a.Node(child).Parent)
	assert.Equal(t, child, a.Node(p2).FirstChild)
}

func TestDetach_MiddleSibling_PreservesNeighbors(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	c1 := a.CreateNode(root, 1, 1, 1, true)
	c2 := a.CreateNode(root, 2, 2, 2, true)
	c3 := a.CreateNode(root, 3, 3, 3, true)

	a.Detach(c2)
	assert.Equal(t, c3, a.Node(c1).RightSibling)
	assert.Equal(t, c1, a.Node(c3).LeftSibling)
}

func TestDeleteSubtree_DetachesFromParent(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	c1 := a.CreateNode(root, 1, 1, 1, true)
	c2 := a.CreateNode(root, 2, 2, 2, true)

	a.DeleteSubtree(c1)
	assert.Equal(t, c2, a.Node(root).FirstChild)
}

func TestAnnotationStartsUndefined(t *testing.T) {
	a := arena.New(8)
	root := a.CreateNode(arena.NilID, 0, 0, 0, false)
	ann := a.Node(root).Annotation
	assert.Equal(t, arena.Undefined, ann.MinMax)
	assert.Equal(t, arena.Undefined, ann.OptimisticMinMax)
}
