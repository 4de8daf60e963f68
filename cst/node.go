// Package cst holds the concrete syntax tree produced by the parser. The
// tree keeps every byte of the input: punctuation, separators, and
// whitespace are retained as anonymous leaves, so concatenating the leaf
// text of any tree reproduces its source exactly.
package cst

import "fmt"

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Node is one vertex of the tree. Interior nodes own their children in
// source order; leaves have none. A node's span always equals the union of
// its children's spans. Nodes are immutable once the tree is built and are
// never shared between trees.
type Node struct {
	kind     Kind
	named    bool
	leaf     bool
	span     Span
	children []*Node
}

func (n *Node) Kind() Kind { return n.kind }

// Named reports whether the node is semantically meaningful (a production or
// a value-carrying leaf) rather than punctuation or trivia.
func (n *Node) Named() bool { return n.named }

func (n *Node) Span() Span { return n.span }

func (n *Node) IsLeaf() bool { return n.leaf }

func (n *Node) IsError() bool { return n.kind == ErrorNode }

func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child in source order. An out-of-range index is
// host misuse, not input error, and panics.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		panic(fmt.Sprintf("cst: child index %d out of range [0, %d)", i, len(n.children)))
	}
	return n.children[i]
}

// Children returns the children in source order. The slice is shared with
// the node and must not be mutated.
func (n *Node) Children() []*Node { return n.children }

// NamedChildren returns only the named children, preserving source order.
func (n *Node) NamedChildren() []*Node {
	var named []*Node
	for _, c := range n.children {
		if c.named {
			named = append(named, c)
		}
	}
	return named
}

// ChildByKind returns the first child of the given kind, or nil.
func (n *Node) ChildByKind(k Kind) *Node {
	for _, c := range n.children {
		if c.kind == k {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first in source order. Returning
// false from visit skips the node's children.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(visit)
	}
}
