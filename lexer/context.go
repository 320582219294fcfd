package lexer

import (
	"github.com/laye-lang/choir-c/arena"
	"github.com/laye-lang/choir-c/diag"
)

// Context bundles the collaborators every Lexer needs. spec.md's Context
// also names a token-kind table, but in this port that table is
// stateless package-level data (token.kindTable), not per-instance state,
// so it has no field here — the same way the teacher keeps tokenNames as
// a package var rather than plumbing it through every call.
type Context struct {
	Arena *arena.Arena
	Diag  *diag.Sink
}
