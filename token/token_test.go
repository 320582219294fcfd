package token

import (
	"strings"
	"testing"

	"github.com/laye-lang/choir-c/source"
)

func TestSpellingAndAvailability(t *testing.T) {
	if Spelling(Plus) != "+" {
		t.Errorf("Spelling(Plus) = %q, want %q", Spelling(Plus), "+")
	}
	if Spelling(Identifier) != "" {
		t.Errorf("Spelling(Identifier) = %q, want empty", Spelling(Identifier))
	}
	if Availability(KwIf) != KeyAll {
		t.Errorf("Availability(KwIf) = %v, want KeyAll", Availability(KwIf))
	}
	if Availability(Plus) != KeyNotKeyword {
		t.Errorf("Availability(Plus) = %v, want KeyNotKeyword", Availability(Plus))
	}
}

func TestLookupPunctMaximalCandidates(t *testing.T) {
	cases := map[string]Kind{
		"+":   Plus,
		"++":  PlusPlus,
		"+=":  PlusEqual,
		"...": DotDotDot,
		"..":  DotDot,
		"..=": DotDotEqual,
		"??=": QuestionQuestionEqual,
	}
	for spelling, want := range cases {
		got, ok := LookupPunct(spelling)
		if !ok || got != want {
			t.Errorf("LookupPunct(%q) = (%v, %v), want (%v, true)", spelling, got, ok, want)
		}
	}
	if _, ok := LookupPunct("@"); ok {
		t.Errorf("LookupPunct(%q) unexpectedly found a kind", "@")
	}
}

func TestLookupKeywordRespectsMask(t *testing.T) {
	k, ok := LookupKeyword("var", KeyLaye)
	if !ok || k != KwVar {
		t.Fatalf("LookupKeyword(var, Laye) = (%v, %v), want (KwVar, true)", k, ok)
	}
	if _, ok := LookupKeyword("var", KeyC); ok {
		t.Errorf("LookupKeyword(var, C) unexpectedly matched; 'var' is not a C keyword")
	}
	if _, ok := LookupKeyword("restrict", KeyC99); !ok {
		t.Errorf("LookupKeyword(restrict, C99) should match")
	}
	if _, ok := LookupKeyword("restrict", KeyGNU); ok {
		t.Errorf("LookupKeyword(restrict, GNU) should not match without C99")
	}
}

func TestLookupKeywordOperatorSpelling(t *testing.T) {
	// spec.md flags "opperator" as a typo in the original table; the
	// corrected spelling is what this lexer recognizes.
	if _, ok := LookupKeyword("opperator", KeyLaye); ok {
		t.Errorf("LookupKeyword matched the misspelled 'opperator'")
	}
	k, ok := LookupKeyword("operator", KeyLaye)
	if !ok || k != KwOperator {
		t.Errorf("LookupKeyword(operator, Laye) = (%v, %v), want (KwOperator, true)", k, ok)
	}
}

func TestIsKeywordBoolGating(t *testing.T) {
	if IsKeyword(Availability(KwBool), KeyC99) {
		t.Errorf("'bool' should not be a keyword under plain C99 without BOOL_BUILTIN")
	}
	if !IsKeyword(Availability(KwBool), KeyC99|KeyBool) {
		t.Errorf("'bool' should be a keyword once the bool-builtin flag is set")
	}
}

func TestTokenStringIncludesRangeAndText(t *testing.T) {
	src := source.New("t.c", []byte("x"))
	tok := Token{
		Kind:  Identifier,
		Range: source.Range{Source: src, Begin: 0, End: 1},
		Value: TextValue{Text: "x"},
	}
	s := tok.String()
	if !strings.Contains(s, "x") {
		t.Errorf("Token.String() = %q, want it to mention the token text", s)
	}
	if !strings.Contains(s, "t.c[0:1]") {
		t.Errorf("Token.String() = %q, want it to mention the range %q", s, "t.c[0:1]")
	}
}

func TestTokenFlags(t *testing.T) {
	tok := Token{Flags: AtStartOfLine | HasWhitespaceBefore}
	if !tok.AtStartOfLine() || !tok.HasWhitespaceBefore() {
		t.Errorf("flags not reported correctly: %+v", tok)
	}
	if tok.ExpansionDisabled() {
		t.Errorf("ExpansionDisabled should be false by default")
	}
}
