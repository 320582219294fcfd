package token

// kindLabels gives each Kind a human-readable name for diagnostics and
// Token.String, the same role the teacher's tokenNames map plays for
// TokenType. Kinds with a fixed spelling (punctuators and keywords) are
// labeled by that spelling in init below, so this literal only needs to
// cover kinds without one.
var kindLabels = [numKinds]string{
	Invalid:          "INVALID",
	EndOfFile:        "EOF",
	PPNotKeyword:     "IDENTIFIER",
	PPEndOfDirective: "EOD",
	PPNumber:         "PP_NUMBER",
	PPMacroParam:     "MACRO_PARAM",
	PPLayeTokenMacro: "LAYE_TOKEN_MACRO",
	PPLayeExprMacro:  "LAYE_EXPR_MACRO",
	PPLayeNumber:     "LAYE_NUMBER",

	Identifier:    "IDENTIFIER",
	RawIdentifier: "IDENTIFIER",

	IntegerConstant:  "INTEGER_CONSTANT",
	FloatingConstant: "FLOATING_CONSTANT",

	CharacterConstant:      "CHAR_CONSTANT",
	WideCharacterConstant:  "WIDE_CHAR_CONSTANT",
	UTF8CharacterConstant:  "UTF8_CHAR_CONSTANT",
	UTF16CharacterConstant: "UTF16_CHAR_CONSTANT",
	UTF32CharacterConstant: "UTF32_CHAR_CONSTANT",

	StringLiteral:       "STRING_LITERAL",
	WideStringLiteral:   "WIDE_STRING_LITERAL",
	UTF8StringLiteral:   "UTF8_STRING_LITERAL",
	UTF16StringLiteral:  "UTF16_STRING_LITERAL",
	UTF32StringLiteral:  "UTF32_STRING_LITERAL",

	HeaderName: "HEADER_NAME",
}

func init() {
	// Everything with a fixed spelling (punctuators and keywords) is
	// labeled by that spelling; only kinds left blank above need a name.
	for _, row := range kindTable {
		if kindLabels[row.kind] == "" && row.spelling != "" {
			kindLabels[row.kind] = row.spelling
		}
	}
}
