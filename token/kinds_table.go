package token

// kindInfo is one row of the declarative kind table: a Kind, its canonical
// spelling (empty for kinds with no fixed spelling), and the dialect mask
// under which that spelling is reserved as a keyword (KeyNotKeyword for
// punctuators, literals, and other non-keyword kinds).
type kindInfo struct {
	kind     Kind
	spelling string
	keys     KeyAvailability
}

// kindTable mirrors original_source/include/choir/tokens.h's X-macro list in
// order. It is the single place spellings and keyword availability are
// declared; every lookup table below is derived from it at init time.
var kindTable = [...]kindInfo{
	{Invalid, "", KeyNotKeyword},
	{EndOfFile, "", KeyNotKeyword},

	{PPNotKeyword, "", KeyNotKeyword},
	{PPEndOfDirective, "", KeyNotKeyword},
	{PPNumber, "", KeyNotKeyword},
	{PPMacroParam, "", KeyNotKeyword},
	{PPLayeTokenMacro, "", KeyNotKeyword},
	{PPLayeExprMacro, "", KeyNotKeyword},
	{PPLayeNumber, "", KeyNotKeyword},

	{PPIf, "if", KeyNotKeyword},
	{PPElif, "elif", KeyNotKeyword},
	{PPElse, "else", KeyNotKeyword},
	{PPEndif, "endif", KeyNotKeyword},
	{PPIfdef, "ifdef", KeyNotKeyword},
	{PPIfndef, "ifndef", KeyNotKeyword},
	{PPElifdef, "elifdef", KeyNotKeyword},
	{PPElifndef, "elifndef", KeyNotKeyword},
	{PPDefined, "defined", KeyNotKeyword},
	{PPHasInclude, "__has_include", KeyNotKeyword},
	{PPHasEmbed, "__has_embed", KeyNotKeyword},
	{PPHasCAttribute, "__has_c_attribute", KeyNotKeyword},
	{PPHasIncludeNext, "__has_include_next", KeyNotKeyword},
	{PPHasBuiltin, "__has_builtin", KeyNotKeyword},
	{PPHasAttribute, "__has_attribute", KeyNotKeyword},
	{PPHasFeature, "__has_feature", KeyNotKeyword},
	{PPHasExtension, "__has_extension", KeyNotKeyword},
	{PPIsIdentifier, "__is_identifier", KeyNotKeyword},
	{PPInclude, "include", KeyNotKeyword},
	{PPIncludeNext, "include_next", KeyNotKeyword},
	{PPEmbed, "embed", KeyNotKeyword},
	{PPDefine, "define", KeyNotKeyword},
	{PPUndef, "undef", KeyNotKeyword},
	{PPVAOpt, "__VA_OPT__", KeyNotKeyword},
	{PPVAArgs, "__VA_ARGS__", KeyNotKeyword},
	{PPLineDirective, "line", KeyNotKeyword},
	{PPError, "error", KeyNotKeyword},
	{PPWarning, "warning", KeyNotKeyword},
	{PPPragma, "pragma", KeyNotKeyword},
	{PPLineMacro, "__LINE__", KeyNotKeyword},
	{PPFileMacro, "__FILE__", KeyNotKeyword},
	{PPUnderscorePragma, "_Pragma", KeyNotKeyword},

	{Identifier, "", KeyNotKeyword},
	{RawIdentifier, "", KeyNotKeyword},

	{IntegerConstant, "", KeyNotKeyword},
	{FloatingConstant, "", KeyNotKeyword},

	{CharacterConstant, "", KeyNotKeyword},
	{WideCharacterConstant, "", KeyNotKeyword},
	{UTF8CharacterConstant, "", KeyNotKeyword},
	{UTF16CharacterConstant, "", KeyNotKeyword},
	{UTF32CharacterConstant, "", KeyNotKeyword},

	{StringLiteral, "", KeyNotKeyword},
	{WideStringLiteral, "", KeyNotKeyword},
	{UTF8StringLiteral, "", KeyNotKeyword},
	{UTF16StringLiteral, "", KeyNotKeyword},
	{UTF32StringLiteral, "", KeyNotKeyword},

	{HeaderName, "", KeyNotKeyword},

	{Hash, "#", KeyNotKeyword},
	{HashHash, "##", KeyNotKeyword},
	{OpenParen, "(", KeyNotKeyword},
	{CloseParen, ")", KeyNotKeyword},
	{OpenSquare, "[", KeyNotKeyword},
	{CloseSquare, "]", KeyNotKeyword},
	{OpenCurly, "{", KeyNotKeyword},
	{CloseCurly, "}", KeyNotKeyword},
	{Comma, ",", KeyNotKeyword},
	{SemiColon, ";", KeyNotKeyword},
	{Dot, ".", KeyNotKeyword},
	{DotDotDot, "...", KeyNotKeyword},
	{Colon, ":", KeyNotKeyword},
	{ColonColon, "::", KeyNotKeyword},
	{Equal, "=", KeyNotKeyword},
	{EqualEqual, "==", KeyNotKeyword},
	{EqualGreater, "=>", KeyNotKeyword},
	{Bang, "!", KeyNotKeyword},
	{BangEqual, "!=", KeyNotKeyword},
	{Less, "<", KeyNotKeyword},
	{LessEqual, "<=", KeyNotKeyword},
	{LessLess, "<<", KeyNotKeyword},
	{LessLessEqual, "<<=", KeyNotKeyword},
	{Greater, ">", KeyNotKeyword},
	{GreaterEqual, ">=", KeyNotKeyword},
	{GreaterGreater, ">>", KeyNotKeyword},
	{GreaterGreaterEqual, ">>=", KeyNotKeyword},
	{Plus, "+", KeyNotKeyword},
	{PlusEqual, "+=", KeyNotKeyword},
	{PlusPlus, "++", KeyNotKeyword},
	{Minus, "-", KeyNotKeyword},
	{MinusEqual, "-=", KeyNotKeyword},
	{MinusMinus, "--", KeyNotKeyword},
	{MinusGreater, "->", KeyNotKeyword},
	{Star, "*", KeyNotKeyword},
	{StarEqual, "*=", KeyNotKeyword},
	{Slash, "/", KeyNotKeyword},
	{SlashEqual, "/=", KeyNotKeyword},
	{Percent, "%", KeyNotKeyword},
	{PercentEqual, "%=", KeyNotKeyword},
	{Caret, "^", KeyNotKeyword},
	{CaretEqual, "^=", KeyNotKeyword},
	{Tilde, "~", KeyNotKeyword},
	{Ampersand, "&", KeyNotKeyword},
	{AmpersandEqual, "&=", KeyNotKeyword},
	{AmpersandAmpersand, "&&", KeyNotKeyword},
	{Pipe, "|", KeyNotKeyword},
	{PipeEqual, "|=", KeyNotKeyword},
	{PipePipe, "||", KeyNotKeyword},
	{Question, "?", KeyNotKeyword},

	// Laye-only punctuators.
	{HashSquare, "#[", KeyNotKeyword},
	{DotDot, "..", KeyNotKeyword},
	{DotDotEqual, "..=", KeyNotKeyword},
	{LessEqualGreater, "<=>", KeyNotKeyword},
	{TildeEqual, "~=", KeyNotKeyword},
	{QuestionQuestion, "??", KeyNotKeyword},
	{QuestionQuestionEqual, "??=", KeyNotKeyword},

	// Keywords shared with, or exclusive to, C (plus extensions).
	{KwAlignas, "alignas", KeyC},
	{KwAlignof, "alignof", KeyC23 | KeyLaye},
	{KwAuto, "auto", KeyC},
	{KwBool, "bool", KeyBool | KeyC23 | KeyLaye},
	{KwBreak, "break", KeyAll},
	{KwCase, "case", KeyAll},
	{KwChar, "char", KeyC},
	{KwConst, "const", KeyAll},
	{KwConstexpr, "constexpr", KeyAll},
	{KwContinue, "continue", KeyAll},
	{KwDefault, "default", KeyAll},
	{KwDo, "do", KeyAll},
	{KwDouble, "double", KeyC},
	{KwElse, "else", KeyAll},
	{KwEnum, "enum", KeyAll},
	{KwExtern, "extern", KeyC},
	{KwFalse, "false", KeyBool | KeyC23 | KeyLaye},
	{KwFloat, "float", KeyC},
	{KwFor, "for", KeyAll},
	{KwGoto, "goto", KeyAll},
	{KwIf, "if", KeyAll},
	{KwInline, "inline", KeyC99 | KeyGNU | KeyLaye},
	{KwInt, "int", KeyAll},
	{KwLong, "long", KeyC},
	{KwNullptr, "nullptr", KeyC23},
	{KwRegister, "register", KeyAll},
	{KwRestrict, "restrict", KeyC99},
	{KwReturn, "return", KeyAll},
	{KwShort, "short", KeyC},
	{KwSigned, "signed", KeyC},
	{KwSizeof, "sizeof", KeyAll},
	{KwStatic, "static", KeyAll},
	{KwStaticAssert, "static_assert", KeyC},
	{KwStruct, "struct", KeyAll},
	{KwSwitch, "switch", KeyAll},
	{KwThreadLocal, "thread_local", KeyAll},
	{KwTrue, "true", KeyBool | KeyC23 | KeyLaye},
	{KwTypedef, "typedef", KeyC},
	{KwTypeof, "typeof", KeyC23 | KeyGNU | KeyLaye},
	{KwTypeofUnqual, "typeof_unqual", KeyC23 | KeyLaye},
	{KwUnion, "union", KeyC},
	{KwUnsigned, "unsigned", KeyC},
	{KwVoid, "void", KeyAll},
	{KwVolatile, "volatile", KeyC},
	{KwWhile, "while", KeyAll},
	{KwBitInt, "_BitInt", KeyC},
	{KwAtomic, "_Atomic", KeyC},
	{KwComplex, "_Complex", KeyC},
	{KwDecimal128, "_Decimal128", KeyC},
	{KwDecimal32, "_Decimal32", KeyC},
	{KwDecimal64, "_Decimal64", KeyC},
	{KwGeneric, "_Generic", KeyC},
	{KwImaginary, "_Imaginary", KeyC},
	{KwNoreturnC, "_Noreturn", KeyC},
	{KwUnderscoreAlignas, "_Alignas", KeyC},
	{KwUnderscoreAlignof, "_Alignof", KeyC},
	{KwUnderscoreBool, "_Bool", KeyC},
	{KwUnderscoreStaticAssert, "_Static_assert", KeyC},
	{KwUnderscoreThreadLocal, "_Thread_local", KeyC},
	{KwAsm, "asm", KeyC | KeyGNU},
	{KwGNUAsm, "__asm__", KeyC | KeyGNU},
	{KwAttribute, "__attribute__", KeyC | KeyGNU},
	{KwAutoType, "__auto_type", KeyC | KeyGNU},
	{KwThread, "__thread", KeyC | KeyGNU},

	// Keywords exclusive to Laye.
	{KwAlias, "alias", KeyLaye},
	{KwAnd, "and", KeyLaye},
	{KwAs, "as", KeyLaye},
	{KwAssert, "assert", KeyLaye},
	{KwBoolSized, "", KeyLaye},
	{KwFFIBool, "__builtin_ffi_bool", KeyLaye},
	{KwFFIChar, "__builtin_ffi_char", KeyLaye},
	{KwFFIShort, "__builtin_ffi_short", KeyLaye},
	{KwFFIInt, "__builtin_ffi_int", KeyLaye},
	{KwFFILong, "__builtin_ffi_long", KeyLaye},
	{KwFFILongLong, "__builtin_ffi_long_long", KeyLaye},
	{KwFFIFloat, "__builtin_ffi_float", KeyLaye},
	{KwFFIDouble, "__builtin_ffi_double", KeyLaye},
	{KwFFILongDouble, "__builtin_ffi_long_double", KeyLaye},
	{KwCallconv, "callconv", KeyLaye},
	{KwCast, "cast", KeyLaye},
	{KwCountof, "countof", KeyLaye},
	{KwDefer, "defer", KeyLaye},
	{KwDelegate, "delegate", KeyLaye},
	{KwDelete, "delete", KeyLaye},
	{KwDiscard, "discard", KeyLaye},
	{KwDiscardable, "discardable", KeyLaye},
	{KwEval, "eval", KeyLaye},
	{KwExport, "export", KeyLaye},
	{KwFallthrough, "fallthrough", KeyLaye},
	{KwFloat32, "float32", KeyLaye},
	{KwFloat64, "float64", KeyLaye},
	{KwForeign, "foreign", KeyLaye},
	{KwFrom, "from", KeyLaye},
	{KwGlobal, "global", KeyLaye},
	{KwImport, "import", KeyLaye},
	{KwIntSized, "", KeyLaye},
	{KwIs, "is", KeyLaye},
	{KwModule, "module", KeyLaye},
	{KwMut, "mut", KeyLaye},
	{KwNew, "new", KeyLaye},
	{KwNil, "nil", KeyLaye},
	{KwNoreturn, "noreturn", KeyLaye},
	{KwNot, "not", KeyLaye},
	{KwOffsetof, "offsetof", KeyLaye},
	{KwOperator, "operator", KeyLaye},
	{KwOr, "or", KeyLaye},
	{KwPragmaLaye, "pragma", KeyLaye},
	{KwRankof, "rankof", KeyLaye},
	{KwRef, "ref", KeyLaye},
	{KwStrict, "strict", KeyLaye},
	{KwTemplate, "template", KeyLaye},
	{KwTest, "test", KeyLaye},
	{KwUnreachable, "unreachable", KeyLaye},
	{KwVar, "var", KeyLaye},
	{KwVarargs, "varargs", KeyLaye},
	{KwVariant, "variant", KeyLaye},
	{KwXor, "xor", KeyLaye},
	{KwXyzzy, "xyzzy", KeyLaye},
	{KwYield, "yield", KeyLaye},
}

var (
	kindNames       [numKinds]string
	kindKeys        [numKinds]KeyAvailability
	keywordsBySpell = map[string][]Kind{}
	punctBySpell    = map[string]Kind{}
)

func init() {
	for _, row := range kindTable {
		kindNames[row.kind] = row.spelling
		kindKeys[row.kind] = row.keys
		if row.spelling == "" {
			continue
		}
		if row.keys != KeyNotKeyword {
			keywordsBySpell[row.spelling] = append(keywordsBySpell[row.spelling], row.kind)
		} else if row.kind >= Hash && row.kind <= QuestionQuestionEqual {
			punctBySpell[row.spelling] = row.kind
		}
	}
}

// Spelling returns the canonical spelling for a Kind, or "" if the kind has
// none (identifiers, literals, and the two pattern-matched sized-type
// keyword placeholders).
func Spelling(k Kind) string {
	if k < 0 || k >= numKinds {
		return ""
	}
	return kindNames[k]
}

// Availability returns the dialect mask under which spelling k is reserved,
// or KeyNotKeyword if k is never a keyword.
func Availability(k Kind) KeyAvailability {
	if k < 0 || k >= numKinds {
		return KeyNotKeyword
	}
	return kindKeys[k]
}

// LookupPunct returns the punctuator Kind for an exact spelling and whether
// one was found. Callers performing maximal munch should try the longest
// candidate substring first.
func LookupPunct(spelling string) (Kind, bool) {
	k, ok := punctBySpell[spelling]
	return k, ok
}

// LookupKeyword returns the keyword Kind whose spelling matches and whose
// availability mask intersects m. A spelling reserved under more than one
// non-overlapping dialect (none currently are) would require a mask
// intersection search; today every keyword spelling maps to exactly one
// Kind; the mask still decides whether it is active.
func LookupKeyword(spelling string, m KeyAvailability) (Kind, bool) {
	for _, k := range keywordsBySpell[spelling] {
		if IsKeyword(kindKeys[k], m) {
			return k, true
		}
	}
	return Invalid, false
}
