package cst

import (
	"fmt"
	"strings"
)

// String renders the tree as an s-expression of named nodes, with leaf text
// quoted. Anonymous punctuation and trivia are omitted; they remain
// reachable through the node API.
//
//	(program (document (query (local_variable "x") (bare_field "foo"))))
func (t *Tree) String() string {
	var b strings.Builder
	t.writeSexp(&b, t.root)
	return b.String()
}

func (t *Tree) writeSexp(b *strings.Builder, n *Node) {
	if n.leaf {
		fmt.Fprintf(b, "(%s %q)", n.kind, t.Text(n))
		return
	}
	b.WriteByte('(')
	b.WriteString(string(n.kind))
	for _, c := range n.children {
		if !c.named {
			continue
		}
		b.WriteByte(' ')
		t.writeSexp(b, c)
	}
	b.WriteByte(')')
}
