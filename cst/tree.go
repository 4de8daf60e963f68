package cst

import "fieldpath/token"

// SyntaxError is one diagnostic produced during a parse: a lexical error
// (unterminated quoted field, illegal character) or a syntactic one (a token
// sequence matching no production). Errors never abort a parse; they ride
// along with the partial tree.
type SyntaxError struct {
	Code     string // diagnostic code, e.g. E0201
	Message  string // expected-vs-found description
	Position token.Position
	Length   int // bytes covered by the offending span, at least 1
}

func (e SyntaxError) Error() string {
	return e.Message
}

// Tree is the result of one parse: the source text, the root node, and the
// ordered diagnostics. Trees are immutable; a tree and its nodes are owned by
// the caller of Parse and shared with nothing else.
type Tree struct {
	source string
	root   *Node
	errors []SyntaxError
}

// NewTree wraps a built root. Intended for the parser; hosts obtain trees
// from parser.Parse.
func NewTree(source string, root *Node, errors []SyntaxError) *Tree {
	return &Tree{source: source, root: root, errors: errors}
}

// Root returns the Program node.
func (t *Tree) Root() *Node { return t.root }

// Source returns the exact input text the tree was parsed from.
func (t *Tree) Source() string { return t.source }

// Errors returns the diagnostics in source order. Empty for well-formed
// input, and the same on every reparse of the same text.
func (t *Tree) Errors() []SyntaxError { return t.errors }

// Text returns the source slice a node covers.
func (t *Tree) Text(n *Node) string {
	return t.source[n.span.Start:n.span.End]
}
