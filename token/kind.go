// Package token declares the single source of truth for every token kind
// the lexer can produce: special markers, preprocessing-directive keywords,
// literal kinds, punctuators, and the combined C+Laye keyword set. Grounded
// on original_source/include/choir/tokens.h and include/laye/tokens.h,
// which are identical apart from naming prefix.
//
// Keyword classification itself is deferred to the preprocessor (spec
// non-goal): the lexer always emits PPNotKeyword for identifier-shaped
// text. IsKeyword lets a consumer reclassify a PPNotKeyword's spelling
// against an active dialect mask.
package token

// KeyAvailability is a bitset describing under which dialect/extension
// configuration an identifier spelling is treated as a reserved keyword.
type KeyAvailability uint16

const (
	// KeyNotKeyword marks a Kind that is never a keyword (punctuators,
	// literals, preprocessing markers and directive names).
	KeyNotKeyword KeyAvailability = 0
	// KeyC: keyword in all variants of C.
	KeyC KeyAvailability = 1 << 0
	// KeyLaye: keyword in all variants of Laye.
	KeyLaye KeyAvailability = 1 << 1
	// KeyC99: keyword introduced to C in C99.
	KeyC99 KeyAvailability = 1 << 2
	// KeyC23: keyword introduced to C in C23.
	KeyC23 KeyAvailability = 1 << 3
	// KeyGNU: keyword when GNU extensions are enabled.
	KeyGNU KeyAvailability = 1 << 4
	// KeyMS: keyword when Microsoft extensions are enabled.
	KeyMS KeyAvailability = 1 << 5
	// KeyMSCompat: keyword when Microsoft compatibility mode is enabled.
	KeyMSCompat KeyAvailability = 1 << 6
	// KeyClang: keyword when Clang extensions are enabled.
	KeyClang KeyAvailability = 1 << 7
	// KeyChoir: keyword when Choir extensions are enabled.
	KeyChoir KeyAvailability = 1 << 8
	// KeyBool: keyword when 'bool' is a built-in type in C.
	KeyBool KeyAvailability = 1 << 9

	// KeyMax is the highest individual flag value.
	KeyMax = KeyBool
	// KeyAll: keyword in every variant of C and Laye.
	KeyAll = KeyMax | (KeyMax - 1)
)

// IsKeyword reports whether a keyword-table entry with the given
// availability mask is a keyword under the active dialect mask m. The BOOL
// flag only participates when m itself declares bool a built-in type,
// matching spec.md §6's resolution rule.
func IsKeyword(keyAvail, m KeyAvailability) bool {
	if keyAvail == KeyNotKeyword {
		return false
	}
	return keyAvail&m != 0
}

// Kind identifies the classification of a token. The zero value is
// Invalid.
type Kind int

const (
	Invalid Kind = iota
	EndOfFile

	// Preprocessing markers.
	PPNotKeyword
	PPEndOfDirective
	PPNumber
	PPMacroParam
	PPLayeTokenMacro
	PPLayeExprMacro
	PPLayeNumber

	// Preprocessing directive keywords (C23 6.10).
	PPIf
	PPElif
	PPElse
	PPEndif
	PPIfdef
	PPIfndef
	PPElifdef
	PPElifndef
	PPDefined
	PPHasInclude
	PPHasEmbed
	PPHasCAttribute
	PPHasIncludeNext
	PPHasBuiltin
	PPHasAttribute
	PPHasFeature
	PPHasExtension
	PPIsIdentifier
	PPInclude
	PPIncludeNext
	PPEmbed
	PPDefine
	PPUndef
	PPVAOpt
	PPVAArgs
	PPLineDirective
	PPError
	PPWarning
	PPPragma
	PPLineMacro
	PPFileMacro
	PPUnderscorePragma

	// Identifiers.
	Identifier
	RawIdentifier

	// Numeric constants.
	IntegerConstant
	FloatingConstant

	// Character constants.
	CharacterConstant
	WideCharacterConstant
	UTF8CharacterConstant
	UTF16CharacterConstant
	UTF32CharacterConstant

	// String literals.
	StringLiteral
	WideStringLiteral
	UTF8StringLiteral
	UTF16StringLiteral
	UTF32StringLiteral

	// Header names.
	HeaderName

	// Punctuators common to C and Laye, plus C-only and Laye-only ones.
	Hash
	HashHash
	OpenParen
	CloseParen
	OpenSquare
	CloseSquare
	OpenCurly
	CloseCurly
	Comma
	SemiColon
	Dot
	DotDotDot
	Colon
	ColonColon
	Equal
	EqualEqual
	EqualGreater
	Bang
	BangEqual
	Less
	LessEqual
	LessLess
	LessLessEqual
	Greater
	GreaterEqual
	GreaterGreater
	GreaterGreaterEqual
	Plus
	PlusEqual
	PlusPlus
	Minus
	MinusEqual
	MinusMinus
	MinusGreater
	Star
	StarEqual
	Slash
	SlashEqual
	Percent
	PercentEqual
	Caret
	CaretEqual
	Tilde
	Ampersand
	AmpersandEqual
	AmpersandAmpersand
	Pipe
	PipeEqual
	PipePipe
	Question
	HashSquare
	DotDot
	DotDotEqual
	LessEqualGreater
	TildeEqual
	QuestionQuestion
	QuestionQuestionEqual

	// Keywords common to C (C11/C99/C23) plus GNU/MS/Clang extensions.
	KwAlignas
	KwAlignof
	KwAuto
	KwBool
	KwBreak
	KwCase
	KwChar
	KwConst
	KwConstexpr
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFalse
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwNullptr
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStaticAssert
	KwStruct
	KwSwitch
	KwThreadLocal
	KwTrue
	KwTypedef
	KwTypeof
	KwTypeofUnqual
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
	KwBitInt
	KwAtomic
	KwComplex
	KwDecimal128
	KwDecimal32
	KwDecimal64
	KwGeneric
	KwImaginary
	KwNoreturnC
	KwUnderscoreAlignas
	KwUnderscoreAlignof
	KwUnderscoreBool
	KwUnderscoreStaticAssert
	KwUnderscoreThreadLocal
	KwAsm
	KwGNUAsm
	KwAttribute
	KwAutoType
	KwThread

	// Keywords exclusive to Laye.
	KwAlias
	KwAnd
	KwAs
	KwAssert
	KwBoolSized
	KwFFIBool
	KwFFIChar
	KwFFIShort
	KwFFIInt
	KwFFILong
	KwFFILongLong
	KwFFIFloat
	KwFFIDouble
	KwFFILongDouble
	KwCallconv
	KwCast
	KwCountof
	KwDefer
	KwDelegate
	KwDelete
	KwDiscard
	KwDiscardable
	KwEval
	KwExport
	KwFallthrough
	KwFloat32
	KwFloat64
	KwForeign
	KwFrom
	KwGlobal
	KwImport
	KwIntSized
	KwIs
	KwModule
	KwMut
	KwNew
	KwNil
	KwNoreturn
	KwNot
	KwOffsetof
	KwOperator
	KwOr
	KwPragmaLaye
	KwRankof
	KwRef
	KwStrict
	KwTemplate
	KwTest
	KwUnreachable
	KwVar
	KwVarargs
	KwVariant
	KwXor
	KwXyzzy
	KwYield

	numKinds
)
