package dialect

import (
	"testing"

	"github.com/laye-lang/choir-c/token"
)

func TestKeywordMaskPlainC23(t *testing.T) {
	c := DefaultC()
	m := c.KeywordMask()
	want := token.KeyC | token.KeyC99 | token.KeyC23 | token.KeyBool
	if m != want {
		t.Errorf("KeywordMask() = %v, want %v", m, want)
	}
	if !token.IsKeyword(token.Availability(token.KwBool), m) {
		t.Error("'bool' should be a keyword under default C23 config")
	}
	if token.IsKeyword(token.Availability(token.KwVar), m) {
		t.Error("'var' should not be a keyword in C")
	}
}

func TestKeywordMaskLaye(t *testing.T) {
	m := DefaultLaye().KeywordMask()
	if !token.IsKeyword(token.Availability(token.KwVar), m) {
		t.Error("'var' should be a keyword in Laye")
	}
	if token.IsKeyword(token.Availability(token.KwTypedef), m) {
		t.Error("'typedef' should not be a keyword in Laye")
	}
}

func TestKeywordMaskGNUExtension(t *testing.T) {
	c := Config{Language: C, Standard: C99, GNU: true}
	m := c.KeywordMask()
	if !token.IsKeyword(token.Availability(token.KwTypeof), m) {
		t.Error("'typeof' should be available under C99+GNU")
	}
	if !token.IsKeyword(token.Availability(token.KwRestrict), m) {
		t.Error("'restrict' should be available under C99")
	}
}

func TestLoadFromFile(t *testing.T) {
	c, err := Load("testdata/c23_gnu.toml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Language != C || c.Standard != C23 || !c.GNU || !c.BoolBuiltin {
		t.Errorf("Load() = %+v, unexpected fields", c)
	}

	laye, err := Load("testdata/laye.toml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if laye.Language != Laye {
		t.Errorf("Load() = %+v, want Language=Laye", laye)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("testdata/bad.toml"); err == nil {
		t.Error("expected an error decoding a type-mismatched TOML file")
	}
	if _, err := Load("testdata/does-not-exist.toml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
