package token

import (
	"fmt"

	"github.com/laye-lang/choir-c/source"
)

// Flags records per-token boolean facts the preprocessor and parser need
// but which do not affect the token's identity: where it sits relative to
// surrounding trivia, and whether macro expansion is currently disabled for
// it (the "blue paint" used to stop self-referential recursive expansion).
type Flags uint8

const (
	// AtStartOfLine is set when no non-whitespace character precedes this
	// token on its source line.
	AtStartOfLine Flags = 1 << iota
	// HasWhitespaceBefore is set when the token's leading trivia is
	// non-empty. Spaces, tabs and comments on the same line right after a
	// token are that token's trailing trivia, so they set this flag on the
	// following token only when it starts a later line.
	HasWhitespaceBefore
	// ExpansionDisabled marks an identifier as currently ineligible for
	// macro expansion.
	ExpansionDisabled
)

// Value is the sealed interface implemented by a token's literal payload.
// Go has no sum type, so the lexer stores a Token's decoded literal value
// behind this interface instead of a single struct with fields that are
// meaningless for most kinds; a type switch recovers the concrete payload.
// Only the unexported isValue method restricts implementers to this
// package.
type Value interface {
	isValue()
}

// TextValue holds the arena-interned spelling of an identifier, raw
// identifier, pp-number, or string/header-name literal. StringLiteral
// (and its wide/UTF variants) and HeaderName tokens use Text for their
// (still-escaped) spelling; string literal escape decoding is left to the
// consumer building on this lexer.
type TextValue struct {
	Text string
}

func (TextValue) isValue() {}

// CharValue holds the decoded code point of a character constant, along
// with the number of code points the literal's body actually contained
// (implementation-defined for more than one, per C23 6.4.5p13 and Laye's
// equivalent rule).
type CharValue struct {
	Value     rune
	NumCodepoints int
}

func (CharValue) isValue() {}

// IntValue holds a Laye integer literal's decoded magnitude. C integer
// constants are not evaluated by the lexer; they are carried as
// TextValue/PPNumber spellings for the preprocessor to interpret, matching
// spec.md's preprocessing-number handling.
type IntValue struct {
	Value uint64
}

func (IntValue) isValue() {}

// FloatValue holds a Laye floating literal's decoded magnitude.
type FloatValue struct {
	Value float64
}

func (FloatValue) isValue() {}

// Token is a single preprocessing token: a Kind, the source range it
// spans, flags describing its surrounding trivia, and an optional decoded
// literal Value.
type Token struct {
	Kind  Kind
	Range source.Range
	Flags Flags
	Value Value
}

// AtStartOfLine reports whether t is the first token on its source line.
func (t Token) AtStartOfLine() bool { return t.Flags&AtStartOfLine != 0 }

// HasWhitespaceBefore reports whether t had non-empty leading trivia (see
// the HasWhitespaceBefore flag).
func (t Token) HasWhitespaceBefore() bool { return t.Flags&HasWhitespaceBefore != 0 }

// ExpansionDisabled reports whether t is currently painted blue against
// macro expansion.
func (t Token) ExpansionDisabled() bool { return t.Flags&ExpansionDisabled != 0 }

// Text returns the interned text carried by a TextValue payload, or "" if
// t does not carry one.
func (t Token) Text() string {
	if tv, ok := t.Value.(TextValue); ok {
		return tv.Text
	}
	return ""
}

func (t Token) String() string {
	spelling := Spelling(t.Kind)
	if spelling == "" {
		spelling = t.Text()
	}
	return fmt.Sprintf("%s(%q) at %s", kindLabel(t.Kind), spelling, t.Range)
}

func kindLabel(k Kind) string {
	if k < 0 || k >= numKinds {
		return "INVALID"
	}
	return kindLabels[k]
}
