package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildQueryTree assembles the tree for "x.foo" by hand:
// (program (document (query (local_variable "x") (bare_field "foo"))))
func buildQueryTree() *Node {
	b := NewBuilder()
	b.Open(Program)
	b.Open(Document)
	b.Open(Query)
	b.Leaf(LocalVariable, true, 0, 1)  // x
	b.Leaf(Kind("."), false, 1, 2)     // .
	b.Leaf(BareField, true, 2, 5)      // foo
	b.Close()
	b.Close()
	b.Close()
	return b.Finish()
}

func TestBuilderSpansAreChildUnions(t *testing.T) {
	root := buildQueryTree()

	assert.Equal(t, Span{Start: 0, End: 5}, root.Span())
	query := root.Child(0).Child(0)
	assert.Equal(t, Query, query.Kind())
	assert.Equal(t, Span{Start: 0, End: 5}, query.Span())
	assert.Equal(t, Span{Start: 1, End: 2}, query.Child(1).Span())
}

func TestBuilderEmptyNodePlacement(t *testing.T) {
	b := NewBuilder()
	b.Open(Program)
	b.Leaf(Kind("DIGITS"), true, 0, 2)
	b.Open(Document)
	b.Close()
	b.Close()
	root := b.Finish()

	empty := root.Child(1)
	assert.Equal(t, Document, empty.Kind())
	assert.Equal(t, Span{Start: 2, End: 2}, empty.Span(), "Empty node sits after the last leaf")
	assert.Zero(t, empty.Span().Len())
}

func TestCloseAsRetags(t *testing.T) {
	b := NewBuilder()
	b.Open(Program)
	b.Open(CoalesceGroup)
	b.Leaf(Kind("("), false, 0, 1)
	b.Leaf(BareField, true, 1, 2)
	b.Leaf(Kind(")"), false, 2, 3)
	b.CloseAs(ErrorNode)
	b.Close()
	root := b.Finish()

	assert.Equal(t, ErrorNode, root.Child(0).Kind())
	assert.True(t, root.Child(0).IsError())
	assert.Equal(t, Span{Start: 0, End: 3}, root.Child(0).Span())
}

func TestNamedChildrenFiltersAnonymous(t *testing.T) {
	root := buildQueryTree()
	query := root.Child(0).Child(0)

	assert.Equal(t, 3, query.NumChildren())
	named := query.NamedChildren()
	assert.Len(t, named, 2, "The '.' leaf is anonymous")
	assert.Equal(t, LocalVariable, named[0].Kind())
	assert.Equal(t, BareField, named[1].Kind())
}

func TestChildByKind(t *testing.T) {
	root := buildQueryTree()
	query := root.Child(0).Child(0)

	assert.NotNil(t, query.ChildByKind(BareField))
	assert.Nil(t, query.ChildByKind(CoalesceGroup))
}

func TestChildOutOfRangePanics(t *testing.T) {
	root := buildQueryTree()

	assert.Panics(t, func() { root.Child(1) }, "Out-of-range access is host misuse")
	assert.Panics(t, func() { root.Child(-1) })
}

func TestWalkVisitsInSourceOrder(t *testing.T) {
	root := buildQueryTree()

	var kinds []Kind
	root.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []Kind{Program, Document, Query, LocalVariable, Kind("."), BareField}, kinds)

	var pruned []Kind
	root.Walk(func(n *Node) bool {
		pruned = append(pruned, n.Kind())
		return n.Kind() != Query
	})
	assert.Equal(t, []Kind{Program, Document, Query}, pruned, "Returning false skips the subtree")
}

func TestTreeText(t *testing.T) {
	source := "x.foo"
	tree := NewTree(source, buildQueryTree(), nil)

	assert.Equal(t, source, tree.Source())
	assert.Equal(t, "x.foo", tree.Text(tree.Root()))
	query := tree.Root().Child(0).Child(0)
	assert.Equal(t, "foo", tree.Text(query.Child(2)))
	assert.Empty(t, tree.Errors())
}
