package cst

import "fieldpath/token"

// Kind identifies what a node represents. Interior nodes use the grammar
// production names below; leaves reuse the token type, so punctuation leaves
// are named by their text (".", ";", "(") and value leaves by their class
// ("IDENT", "DIGITS").
type Kind string

const (
	Program        Kind = "program"
	Document       Kind = "document"
	IntegerLiteral Kind = "integer_literal"
	FloatLiteral   Kind = "float_literal"
	Query          Kind = "query"
	LocalVariable  Kind = "local_variable"
	BareField      Kind = "bare_field"
	QuotedField    Kind = "quoted_field"
	ImmediateField Kind = "immediate_field"
	CoalesceGroup  Kind = "coalesce_group"
	FieldAlt       Kind = "field_alt"
	ErrorNode      Kind = "ERROR"
)

// LeafKind maps a token type to the kind its leaf node carries.
func LeafKind(t token.Type) Kind {
	return Kind(t)
}
