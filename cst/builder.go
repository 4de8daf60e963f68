package cst

import "fmt"

// Builder assembles nodes bottom-up from the open/leaf/close event stream the
// parser emits. Events must arrive in source order; spans are derived, never
// supplied, so a parent's span is always the exact union of its children's.
type Builder struct {
	stack  []*Node
	offset int // end of the last leaf, for placing empty nodes
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Open starts an interior node of the given kind. Every interior kind except
// ErrorNode is named; error nodes are named too, matching their visibility
// in tree walks.
func (b *Builder) Open(kind Kind) {
	b.stack = append(b.stack, &Node{kind: kind, named: true})
}

// Leaf appends a terminal node to the innermost open node.
func (b *Builder) Leaf(kind Kind, named bool, start, end int) {
	if len(b.stack) == 0 {
		panic("cst: leaf emitted with no open node")
	}
	n := &Node{kind: kind, named: named, leaf: true, span: Span{Start: start, End: end}}
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, n)
	b.offset = end
}

// Close finishes the innermost open node and attaches it to its parent.
func (b *Builder) Close() {
	b.close(nil)
}

// CloseAs finishes the innermost open node under a different kind. The
// parser uses this when a construct turns out to be malformed after its node
// was opened, e.g. a parenthesized group with a single alternative.
func (b *Builder) CloseAs(kind Kind) {
	b.close(&kind)
}

func (b *Builder) close(kind *Kind) {
	if len(b.stack) == 0 {
		panic("cst: close with no open node")
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if kind != nil {
		n.kind = *kind
	}
	if len(n.children) > 0 {
		n.span = Span{Start: n.children[0].span.Start, End: n.children[len(n.children)-1].span.End}
	} else {
		n.span = Span{Start: b.offset, End: b.offset}
	}
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.children = append(top.children, n)
	} else {
		b.stack = append(b.stack, n) // root closed; keep for Finish
	}
}

// Finish returns the root. All opened nodes must have been closed.
func (b *Builder) Finish() *Node {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("cst: finish with %d open nodes", len(b.stack)))
	}
	return b.stack[0]
}
