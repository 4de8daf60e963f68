// Package token defines the terminal vocabulary of the fieldpath language:
// token kinds, scanner modes, and source positions.
package token

type Type string

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	// Trivia and separators
	WHITESPACE Type = "WHITESPACE" // spaces, tabs, carriage returns (never newlines)
	NEWLINE    Type = "NEWLINE"    // a run of one or more '\n'
	SEMICOLON  Type = ";"

	// Literals and names
	DIGITS      Type = "DIGITS"      // run of [0-9_]
	IDENT       Type = "IDENT"       // local variable or bare field name
	AT_FIELD    Type = "AT_FIELD"    // identifier run containing '@'
	STRING_TEXT Type = "STRING_TEXT" // quoted-field body, escapes preserved raw

	// Punctuation
	MINUS  Type = "-"
	DOT    Type = "."
	QUOTE  Type = "\""
	LPAREN Type = "("
	PIPE   Type = "|"
	RPAREN Type = ")"
)

// Named reports whether tokens of this type carry field or value text, as
// opposed to punctuation, separators, and trivia.
func (t Type) Named() bool {
	switch t {
	case DIGITS, IDENT, AT_FIELD, STRING_TEXT:
		return true
	}
	return false
}

// Separator reports whether the token ends a statement.
func (t Type) Separator() bool {
	return t == SEMICOLON || t == NEWLINE
}

// Mode selects the character-class rules the scanner applies. The same byte
// can start different tokens in different modes: '|' is punctuation inside a
// coalesce group and an illegal character elsewhere, and inside a quoted
// field every byte up to the closing quote is string text.
type Mode int

const (
	ModeStatement Mode = iota // default statement context
	ModeCoalesce              // between '(' and ')' of a coalesce group
	ModeQuoted                // between the quotes of a quoted field
)

// Token is a lexical unit with its exact source slice. Start and End are
// byte offsets into the input, End exclusive. Tokens are immutable once
// emitted.
type Token struct {
	Type   Type
	Lexeme string
	Start  int
	End    int
}

// Position is a human-oriented source location used in diagnostics.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte index
}

// PositionAt computes the line/column position of a byte offset. Offsets past
// the end of source clamp to the final position.
func PositionAt(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col, Offset: offset}
}
