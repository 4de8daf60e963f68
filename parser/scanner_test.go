package parser

import (
	"testing"

	"fieldpath/token"
)

// scanAll pulls tokens from offset 0 in the given mode until EOF.
func scanAll(source string, mode token.Mode) []token.Token {
	s := NewScanner(source)
	var tokens []token.Token
	offset := 0
	for {
		tok := s.Next(offset, mode)
		if tok.Type == token.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
		offset = tok.End
	}
}

func TestStatementTokens(t *testing.T) {
	input := "x.foo -12 ; 3.14"
	expected := []token.Type{
		token.IDENT, token.DOT, token.IDENT, token.WHITESPACE,
		token.MINUS, token.DIGITS, token.WHITESPACE, token.SEMICOLON,
		token.WHITESPACE, token.DIGITS, token.DOT, token.DIGITS,
	}

	tokens := scanAll(input, token.ModeStatement)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestNewlineRunCollapses(t *testing.T) {
	tokens := scanAll("\n\n\nx", token.ModeStatement)

	if tokens[0].Type != token.NEWLINE || tokens[0].Lexeme != "\n\n\n" {
		t.Errorf("expected one NEWLINE covering the run, got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != token.IDENT {
		t.Errorf("expected IDENT after newline run, got %s", tokens[1].Type)
	}
}

func TestCarriageReturnIsBlank(t *testing.T) {
	tokens := scanAll("x\r\ny", token.ModeStatement)
	expected := []token.Type{token.IDENT, token.WHITESPACE, token.NEWLINE, token.IDENT}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestDigitsWithUnderscores(t *testing.T) {
	tokens := scanAll("1_000_000", token.ModeStatement)

	if len(tokens) != 1 {
		t.Fatalf("expected one token, got %d", len(tokens))
	}
	if tokens[0].Type != token.DIGITS || tokens[0].Lexeme != "1_000_000" {
		t.Errorf("expected DIGITS '1_000_000', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
}

func TestIdentifierMaximalMunch(t *testing.T) {
	tokens := scanAll("foo_bar9", token.ModeStatement)

	if len(tokens) != 1 || tokens[0].Type != token.IDENT || tokens[0].Lexeme != "foo_bar9" {
		t.Fatalf("expected one IDENT 'foo_bar9', got %+v", tokens)
	}
}

func TestAtFieldScanning(t *testing.T) {
	cases := map[string]token.Type{
		"@timestamp": token.AT_FIELD,
		"foo@bar":    token.AT_FIELD, // interior '@' converts the whole run
		"foo":        token.IDENT,
	}

	for input, expected := range cases {
		tokens := scanAll(input, token.ModeStatement)
		if len(tokens) != 1 {
			t.Fatalf("%q: expected one token, got %d", input, len(tokens))
		}
		if tokens[0].Type != expected || tokens[0].Lexeme != input {
			t.Errorf("%q: expected %s, got %s %q", input, expected, tokens[0].Type, tokens[0].Lexeme)
		}
	}
}

func TestPipeAndParenAreModal(t *testing.T) {
	s := NewScanner("|)")

	if tok := s.Next(0, token.ModeCoalesce); tok.Type != token.PIPE {
		t.Errorf("expected PIPE in coalesce mode, got %s", tok.Type)
	}
	if tok := s.Next(1, token.ModeCoalesce); tok.Type != token.RPAREN {
		t.Errorf("expected RPAREN in coalesce mode, got %s", tok.Type)
	}
	if tok := s.Next(0, token.ModeStatement); tok.Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL '|' in statement mode, got %s", tok.Type)
	}
	if tok := s.Next(1, token.ModeStatement); tok.Type != token.ILLEGAL {
		t.Errorf("expected ILLEGAL ')' in statement mode, got %s", tok.Type)
	}
}

func TestQuotedModeBody(t *testing.T) {
	source := `a\"b"rest`
	s := NewScanner(source)

	body := s.Next(0, token.ModeQuoted)
	if body.Type != token.STRING_TEXT || body.Lexeme != `a\"b` {
		t.Fatalf("expected raw body with escape preserved, got %s %q", body.Type, body.Lexeme)
	}

	closer := s.Next(body.End, token.ModeQuoted)
	if closer.Type != token.QUOTE {
		t.Errorf("expected closing QUOTE, got %s %q", closer.Type, closer.Lexeme)
	}
}

func TestQuotedModeEscapeAtEnd(t *testing.T) {
	s := NewScanner(`ab\`)

	body := s.Next(0, token.ModeQuoted)
	if body.Type != token.STRING_TEXT || body.End != 3 {
		t.Fatalf("expected STRING_TEXT clamped to end of input, got %s [%d,%d)", body.Type, body.Start, body.End)
	}
	if tok := s.Next(body.End, token.ModeQuoted); tok.Type != token.EOF {
		t.Errorf("expected EOF after clamped body, got %s", tok.Type)
	}
}

func TestEOFIdempotent(t *testing.T) {
	s := NewScanner("x")

	first := s.Next(1, token.ModeStatement)
	second := s.Next(1, token.ModeStatement)
	if first != second || first.Type != token.EOF {
		t.Errorf("EOF should be stable: %+v vs %+v", first, second)
	}
}

func TestIllegalByte(t *testing.T) {
	tokens := scanAll("#", token.ModeStatement)

	if len(tokens) != 1 || tokens[0].Type != token.ILLEGAL {
		t.Fatalf("expected one ILLEGAL token, got %+v", tokens)
	}
}

func TestScanningIsReplayable(t *testing.T) {
	s := NewScanner("x.foo")

	a := s.Next(2, token.ModeStatement)
	s.Next(0, token.ModeStatement) // unrelated scan in between
	b := s.Next(2, token.ModeStatement)
	if a != b {
		t.Errorf("same (offset, mode) should yield the same token: %+v vs %+v", a, b)
	}
}
