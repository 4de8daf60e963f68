package parser

import (
	"fmt"

	"fieldpath/cst"
	"fieldpath/token"
)

func (p *Parser) at(t token.Type) bool {
	return p.tok.Type == t
}

// accept emits the current token as a leaf of the innermost open node and
// advances to the next token in the current mode.
func (p *Parser) accept() {
	p.acceptAs(cst.LeafKind(p.tok.Type), p.tok.Type.Named())
}

// acceptAs emits the current token as a leaf with an explicit kind, used
// where grammar position refines the token class (an IDENT at the root of a
// query is a local_variable; inside a path it is a bare_field).
func (p *Parser) acceptAs(kind cst.Kind, named bool) {
	p.builder.Leaf(kind, named, p.tok.Start, p.tok.End)
	p.tok = p.scanner.Next(p.tok.End, p.mode)
}

// setMode switches the lexical mode and rescans the current position under
// it. The scanner is a pure function of (offset, mode), so rescanning is
// always safe.
func (p *Parser) setMode(m token.Mode) {
	if p.mode == m {
		return
	}
	p.mode = m
	p.tok = p.scanner.Next(p.tok.Start, m)
}

// skipBlank retains non-newline whitespace as anonymous leaves of the
// innermost open node.
func (p *Parser) skipBlank() {
	for p.at(token.WHITESPACE) {
		p.accept()
	}
}

// skipSeparators retains whitespace, newline runs, and semicolons, used at
// document level where separators nest freely.
func (p *Parser) skipSeparators() {
	for p.at(token.WHITESPACE) || p.tok.Type.Separator() {
		p.accept()
	}
}

// peekPastBlank returns the first non-whitespace token at or after the
// current one, without consuming anything.
func (p *Parser) peekPastBlank() token.Token {
	t := p.tok
	for t.Type == token.WHITESPACE {
		t = p.scanner.Next(t.End, p.mode)
	}
	return t
}

// floatFollows reports whether the digit run is the integer part of a float:
// the next byte must be '.' and the byte after it a digit. One character of
// lookahead past the dot is all the tie-break needs.
func (p *Parser) floatFollows(digits token.Token) bool {
	if digits.End >= len(p.source) || p.source[digits.End] != '.' {
		return false
	}
	return digits.End+1 < len(p.source) && isDigit(p.source[digits.End+1])
}

func (p *Parser) errorExpected(code, what string) {
	p.errorAt(code, fmt.Sprintf("expected %s, found %s", what, describe(p.tok)), p.tok.Start, p.tok.End)
}

func (p *Parser) errorAt(code, message string, start, end int) {
	length := end - start
	if length < 1 {
		length = 1
	}
	p.errors = append(p.errors, cst.SyntaxError{
		Code:     code,
		Message:  message,
		Position: token.PositionAt(p.source, start),
		Length:   length,
	})
}

func describe(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of input"
	case token.NEWLINE:
		return "newline"
	case token.ILLEGAL:
		return fmt.Sprintf("%q", t.Lexeme)
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

// recoverStatement bounds an error's blast radius to one statement: the
// tokens up to the next separator or end of input are wrapped in an ERROR
// node and parsing resumes at document level.
func (p *Parser) recoverStatement() {
	if p.at(token.EOF) || p.tok.Type.Separator() {
		return
	}
	p.builder.Open(cst.ErrorNode)
	p.skipToSeparator()
	p.builder.Close()
}

// skipToSeparator consumes tokens into the innermost open node until a
// separator or end of input.
func (p *Parser) skipToSeparator() {
	for !p.at(token.EOF) && !p.tok.Type.Separator() {
		p.accept()
	}
}
