package parser

import "fieldpath/token"

// Scanner turns source text into tokens one at a time. It holds nothing but
// the immutable source: the cursor and the lexical mode arrive with every
// call, so scanning can resume or replay from any saved (offset, mode) pair.
type Scanner struct {
	source string
}

func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Next returns the token starting at offset under the given mode. It never
// fails: bytes no rule accepts come back as single-byte ILLEGAL tokens, and
// end of input yields the same zero-width EOF token on every call.
func (s *Scanner) Next(offset int, mode token.Mode) token.Token {
	if offset >= len(s.source) {
		return token.Token{Type: token.EOF, Start: len(s.source), End: len(s.source)}
	}
	if mode == token.ModeQuoted {
		return s.scanQuoted(offset)
	}

	c := s.source[offset]
	switch c {
	case ' ', '\t', '\r':
		end := offset + 1
		for end < len(s.source) && (s.source[end] == ' ' || s.source[end] == '\t' || s.source[end] == '\r') {
			end++
		}
		return s.tok(token.WHITESPACE, offset, end)
	case '\n':
		// consecutive newlines collapse into one separator token
		end := offset + 1
		for end < len(s.source) && s.source[end] == '\n' {
			end++
		}
		return s.tok(token.NEWLINE, offset, end)
	case ';':
		return s.tok(token.SEMICOLON, offset, offset+1)
	case '-':
		return s.tok(token.MINUS, offset, offset+1)
	case '.':
		return s.tok(token.DOT, offset, offset+1)
	case '"':
		return s.tok(token.QUOTE, offset, offset+1)
	case '(':
		return s.tok(token.LPAREN, offset, offset+1)
	case '|':
		if mode == token.ModeCoalesce {
			return s.tok(token.PIPE, offset, offset+1)
		}
		return s.tok(token.ILLEGAL, offset, offset+1)
	case ')':
		if mode == token.ModeCoalesce {
			return s.tok(token.RPAREN, offset, offset+1)
		}
		return s.tok(token.ILLEGAL, offset, offset+1)
	}

	switch {
	case isDigit(c):
		end := offset + 1
		for end < len(s.source) && (isDigit(s.source[end]) || s.source[end] == '_') {
			end++
		}
		return s.tok(token.DIGITS, offset, end)
	case isAlpha(c), c == '@':
		return s.scanName(offset)
	}

	return s.tok(token.ILLEGAL, offset, offset+1)
}

// scanName lexes an identifier run with maximal munch. A run that contains
// '@' anywhere, leading or interior, is an immediate-field name; otherwise it
// serves as a local variable or bare field depending on grammar position.
func (s *Scanner) scanName(offset int) token.Token {
	end := offset
	seenAt := false
	for end < len(s.source) {
		c := s.source[end]
		if c == '@' {
			seenAt = true
		} else if !isAlpha(c) && !isDigit(c) {
			break
		}
		end++
	}
	if seenAt {
		return s.tok(token.AT_FIELD, offset, end)
	}
	return s.tok(token.IDENT, offset, end)
}

// scanQuoted lexes inside a quoted field: either the closing quote, or one
// STRING_TEXT token spanning everything up to it. '\' escapes exactly the
// next byte, whatever it is; the text is kept raw, escapes included. Reaching
// end of input here means the field is unterminated, which the parser
// reports when it sees STRING_TEXT followed by EOF instead of a quote.
func (s *Scanner) scanQuoted(offset int) token.Token {
	if s.source[offset] == '"' {
		return s.tok(token.QUOTE, offset, offset+1)
	}
	end := offset
	for end < len(s.source) && s.source[end] != '"' {
		if s.source[end] == '\\' {
			end += 2
		} else {
			end++
		}
	}
	if end > len(s.source) {
		end = len(s.source) // trailing '\' escaped past the end
	}
	return s.tok(token.STRING_TEXT, offset, end)
}

func (s *Scanner) tok(t token.Type, start, end int) token.Token {
	return token.Token{Type: t, Lexeme: s.source[start:end], Start: start, End: end}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}
