// Package parser is the front end for the fieldpath mini-language: integer
// and float literals, local variables, and dotted field-access paths with
// quoted fields, @-prefixed immediate fields, and (a|b) coalesce groups.
//
// Parse never rejects an input. Malformed spans become ERROR nodes in the
// tree and entries in the tree's error list, and parsing resumes at the next
// statement separator, so a host editor always has a tree to work with.
package parser

import (
	"fieldpath/cst"
	ferr "fieldpath/internal/errors"
	"fieldpath/token"
)

type Parser struct {
	scanner *Scanner
	source  string
	builder *cst.Builder
	mode    token.Mode
	tok     token.Token
	errors  []cst.SyntaxError
}

// Parse turns one document into a concrete syntax tree. It is a pure
// function of its input: no state survives between calls, and concurrent
// calls need no coordination.
func Parse(source string) *cst.Tree {
	p := &Parser{
		scanner: NewScanner(source),
		source:  source,
		builder: cst.NewBuilder(),
		mode:    token.ModeStatement,
	}
	p.tok = p.scanner.Next(0, p.mode)

	p.builder.Open(cst.Program)
	p.parseDocument()
	p.builder.Close()

	return cst.NewTree(source, p.builder.Finish(), p.errors)
}

func (p *Parser) parseDocument() {
	p.builder.Open(cst.Document)
	p.skipSeparators()
	for !p.at(token.EOF) {
		p.parseExpr()
		p.skipBlank()
		if p.at(token.EOF) {
			break
		}
		if !p.tok.Type.Separator() {
			p.errorExpected(ferr.ErrExpectedSeparator, "';' or newline after expression")
			p.recoverStatement()
		}
		p.skipSeparators()
	}
	p.builder.Close()
}

func (p *Parser) parseExpr() {
	switch p.tok.Type {
	case token.MINUS, token.DIGITS:
		p.parseLiteral()
	case token.IDENT:
		p.parseQuery()
	case token.ILLEGAL:
		p.errorAt(ferr.ErrInvalidCharacter, "invalid character "+describe(p.tok), p.tok.Start, p.tok.End)
		p.recoverStatement()
	default:
		p.errorExpected(ferr.ErrExpectedExpression, "expression")
		p.recoverStatement()
	}
}

// parseLiteral handles IntegerLiteral and FloatLiteral. The node kind is
// decided before anything is emitted: a digit run is the integer part of a
// float exactly when a '.' and a digit immediately follow it.
func (p *Parser) parseLiteral() {
	kind := cst.IntegerLiteral
	if p.at(token.DIGITS) && p.floatFollows(p.tok) {
		kind = cst.FloatLiteral
	} else if p.at(token.MINUS) {
		next := p.peekAfter(p.tok)
		if next.Type == token.DIGITS && p.floatFollows(next) {
			kind = cst.FloatLiteral
		}
	}

	p.builder.Open(kind)
	if p.at(token.MINUS) {
		p.accept()
		p.skipBlank()
	}
	if !p.at(token.DIGITS) {
		p.errorExpected(ferr.ErrExpectedDigits, "digits after '-'")
		p.skipToSeparator()
		p.builder.CloseAs(cst.ErrorNode)
		return
	}
	p.accept()
	if kind == cst.FloatLiteral {
		p.accept() // the contiguous '.', verified by floatFollows
		p.accept() // fractional digit run
	}
	p.builder.Close()
}

// peekAfter returns the first non-whitespace token after t without consuming
// anything.
func (p *Parser) peekAfter(t token.Token) token.Token {
	next := p.scanner.Next(t.End, p.mode)
	for next.Type == token.WHITESPACE {
		next = p.scanner.Next(next.End, p.mode)
	}
	return next
}

func (p *Parser) parseQuery() {
	p.builder.Open(cst.Query)
	p.acceptAs(cst.LocalVariable, true)
	for {
		if p.at(token.DOT) {
			p.parseSegment()
			continue
		}
		// Whitespace before a '.' belongs to the query; otherwise leave it
		// for the document so statement nodes end at their last segment.
		if p.at(token.WHITESPACE) && p.peekPastBlank().Type == token.DOT {
			p.skipBlank()
			continue
		}
		break
	}
	p.builder.Close()
}

func (p *Parser) parseSegment() {
	p.accept() // '.'
	p.skipBlank()
	switch p.tok.Type {
	case token.IDENT:
		p.acceptAs(cst.BareField, true)
	case token.AT_FIELD:
		p.acceptAs(cst.ImmediateField, true)
	case token.QUOTE:
		p.parseQuotedField(token.ModeStatement)
	case token.LPAREN:
		p.parseCoalesceGroup()
	default:
		p.errorExpected(ferr.ErrExpectedField, "field name after '.'")
		p.recoverStatement()
	}
}

// parseQuotedField consumes '"' STRING_TEXT '"'. The body is kept raw,
// escapes and all; decoding is the consumer's concern. restore is the mode
// to return to after the closing quote.
func (p *Parser) parseQuotedField(restore token.Mode) {
	open := p.tok
	p.builder.Open(cst.QuotedField)
	p.accept() // opening '"'
	p.setMode(token.ModeQuoted)
	if p.at(token.STRING_TEXT) {
		p.accept()
	}
	if p.at(token.QUOTE) {
		p.accept()
		p.setMode(restore)
		p.builder.Close()
		return
	}
	// EOF before a closing quote
	p.errorAt(ferr.ErrUnterminatedQuote, "unterminated quoted field", open.Start, len(p.source))
	p.setMode(restore)
	p.builder.CloseAs(cst.ErrorNode)
}

// parseCoalesceGroup consumes '(' alt ('|' alt)+ ')'. Alternative order is
// preserved exactly as written; the group assigns it no meaning. A group
// with fewer than two alternatives is malformed and becomes an ERROR node,
// never a bare field.
func (p *Parser) parseCoalesceGroup() {
	open := p.tok
	p.builder.Open(cst.CoalesceGroup)
	p.accept() // '('
	p.setMode(token.ModeCoalesce)

	alts := 0
	malformed := false
	for {
		p.skipBlank()
		switch p.tok.Type {
		case token.IDENT:
			p.builder.Open(cst.FieldAlt)
			p.acceptAs(cst.BareField, true)
			p.builder.Close()
			alts++
		case token.QUOTE:
			p.builder.Open(cst.FieldAlt)
			p.parseQuotedField(token.ModeCoalesce)
			p.builder.Close()
			alts++
		default:
			p.errorExpected(ferr.ErrExpectedField, "field name in coalesce group")
			malformed = true
			for !p.at(token.EOF) && !p.at(token.PIPE) && !p.at(token.RPAREN) && !p.tok.Type.Separator() {
				p.accept()
			}
		}
		p.skipBlank()
		if p.at(token.PIPE) {
			p.accept()
			continue
		}
		break
	}

	end := p.tok.End
	if p.at(token.RPAREN) {
		p.accept()
	} else {
		p.errorExpected(ferr.ErrMalformedCoalesce, "')' to close coalesce group")
		malformed = true
		end = p.tok.Start
	}
	p.setMode(token.ModeStatement)

	if !malformed && alts < 2 {
		p.errorAt(ferr.ErrMalformedCoalesce, "coalesce group requires at least two alternatives", open.Start, end)
		malformed = true
	}
	if malformed {
		p.builder.CloseAs(cst.ErrorNode)
	} else {
		p.builder.Close()
	}
}
