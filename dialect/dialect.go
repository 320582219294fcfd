// Package dialect resolves the Go-native version of spec.md §6's "active
// dialect configuration" into a token.KeyAvailability mask, and loads
// named configurations from TOML fixtures. Grounded on the teacher's
// config/config.go pattern: a tagged struct decoded with
// github.com/BurntSushi/toml, plus a Default constructor.
package dialect

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/laye-lang/choir-c/token"
)

// Language selects which half of the dual-dialect front end a Config
// targets.
type Language string

const (
	C    Language = "c"
	Laye Language = "laye"
)

// Standard selects the base C standard revision. It is ignored when
// Language is Laye.
type Standard string

const (
	C99 Standard = "c99"
	C11 Standard = "c11"
	C23 Standard = "c23"
)

// Config is the Go-native form of spec.md §6's active dialect
// configuration: which language and standard are active, and which
// vendor/compiler extension families are enabled.
type Config struct {
	Language    Language `toml:"language"`
	Standard    Standard `toml:"standard"`
	GNU         bool     `toml:"gnu"`
	MS          bool     `toml:"ms"`
	MSCompat    bool     `toml:"ms_compat"`
	Clang       bool     `toml:"clang"`
	Choir       bool     `toml:"choir"`
	BoolBuiltin bool     `toml:"bool_builtin"`
}

// DefaultC returns the Config for plain C23 with no vendor extensions and
// 'bool' available as a built-in (the modern default).
func DefaultC() Config {
	return Config{Language: C, Standard: C23, BoolBuiltin: true}
}

// DefaultLaye returns the Config for Laye, which has no standard-revision
// axis and always treats 'bool' as built in.
func DefaultLaye() Config {
	return Config{Language: Laye, BoolBuiltin: true}
}

// KeywordMask computes the token.KeyAvailability mask M active under c,
// per spec.md §6's keyword availability resolution. BOOL only
// participates when BoolBuiltin is set; it is otherwise independent of
// Language.
func (c Config) KeywordMask() token.KeyAvailability {
	var m token.KeyAvailability

	switch c.Language {
	case Laye:
		m |= token.KeyLaye
	default:
		m |= token.KeyC
		switch c.Standard {
		case C99, C11:
			m |= token.KeyC99
		case C23:
			m |= token.KeyC99 | token.KeyC23
		}
	}

	if c.GNU {
		m |= token.KeyGNU
	}
	if c.MS {
		m |= token.KeyMS
	}
	if c.MSCompat {
		m |= token.KeyMSCompat
	}
	if c.Clang {
		m |= token.KeyClang
	}
	if c.Choir {
		m |= token.KeyChoir
	}
	if c.BoolBuiltin {
		m |= token.KeyBool
	}

	return m
}

// Load decodes a Config from the TOML file at path, in the shape:
//
//	language = "c"
//	standard = "c23"
//	gnu = true
//	bool_builtin = true
//
// It is a thin convenience for test fixtures and for an embedding
// preprocessor; it performs no file discovery beyond reading path.
func Load(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("dialect: loading %s: %w", path, err)
	}
	return c, nil
}
