// Package source describes the immutable byte-range source text the lexer
// reads from.
package source

import "fmt"

// Source is an immutable source descriptor: a name, its UTF-8 text, and
// whether it should be treated as a system header (lexed more permissively
// by later stages). A Source is owned by the driver/embedder; the lexer
// only ever borrows one.
type Source struct {
	Name     string
	Text     []byte
	IsSystem bool
}

// New returns a Source wrapping name and text. text is not copied; callers
// must not mutate it afterwards.
func New(name string, text []byte) *Source {
	return &Source{Name: name, Text: text}
}

// Len returns the number of bytes in the source text.
func (s *Source) Len() int {
	return len(s.Text)
}

// Location is a signed byte offset into a specific Source's text. A
// Location is only meaningful paired with the Source it was produced from.
type Location int

// Range is a half-open byte range [Begin, End) within Source's text. Begin
// == End denotes an insertion point rather than a span of text.
type Range struct {
	Source *Source
	Begin  Location
	End    Location
}

// Valid reports whether r's invariant 0 <= Begin <= End <= len(text) holds.
func (r Range) Valid() bool {
	if r.Source == nil {
		return r.Begin == 0 && r.End == 0
	}
	n := Location(len(r.Source.Text))
	return 0 <= r.Begin && r.Begin <= r.End && r.End <= n
}

// Text returns the substring of the source text covered by r.
func (r Range) Text() []byte {
	if r.Source == nil {
		return nil
	}
	return r.Source.Text[r.Begin:r.End]
}

// String renders r as "name[begin:end]" for diagnostics and debugging.
func (r Range) String() string {
	name := "<unknown>"
	if r.Source != nil {
		name = r.Source.Name
	}
	return fmt.Sprintf("%s[%d:%d]", name, r.Begin, r.End)
}
