package errors

// Diagnostic codes for the fieldpath front end, used in error messages and
// by hosts that want stable identifiers for squiggle filtering.
//
// Code ranges:
// E0100-E0199: lexical errors
// E0200-E0299: syntactic errors
const (
	// E0101: end of input reached inside a quoted field
	ErrUnterminatedQuote = "E0101"

	// E0102: a byte no lexical rule accepts in the current mode
	ErrInvalidCharacter = "E0102"

	// E0201: statement position holds no literal or query
	ErrExpectedExpression = "E0201"

	// E0202: two statements without a ';' or newline between them
	ErrExpectedSeparator = "E0202"

	// E0203: '.' or coalesce position with no field name
	ErrExpectedField = "E0203"

	// E0204: coalesce group unterminated or with fewer than two alternatives
	ErrMalformedCoalesce = "E0204"

	// E0205: '-' or '.' with no digit run where a literal requires one
	ErrExpectedDigits = "E0205"
)
