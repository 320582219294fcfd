package lexer

import (
	"github.com/laye-lang/choir-c/source"
	"github.com/laye-lang/choir-c/utf8x"
)

// charStream decodes a source's text one code point at a time, folding
// newline variants and (in C mode) backslash-newline line continuations
// at decode time. Grounded on original_source/lib/laye/lex.c's
// ly_lexer_peek_raw/ly_lexer_next_character: folding happens here, not in
// the token lexer, so every consumer sees already-canonicalized newlines.
type charStream struct {
	src      *source.Source
	mode     ModeSet
	position source.Location
	stride   int
	current  rune

	line          int
	atStartOfLine bool
}

func newCharStream(src *source.Source) *charStream {
	s := &charStream{src: src, line: 1, atStartOfLine: true}
	cp, stride, ok := s.peekRaw(0)
	if ok {
		s.current, s.stride = cp, stride
	}
	return s
}

// peekRaw decodes one folded code point starting at byte position pos. It
// does not mutate stream state. ok is false at or past end of text, or on
// a decode error (treated identically to end of text by callers: lexing
// never blocks on malformed UTF-8, it just stops producing code points).
func (s *charStream) peekRaw(pos source.Location) (codepoint rune, stride int, ok bool) {
	cp, stride, res := utf8x.Decode(s.src.Text, int(pos))
	if res != utf8x.Success {
		return 0, 0, false
	}

	next := pos + source.Location(stride)

	if next < source.Location(len(s.src.Text)) {
		// '\n\r' folds to a single '\n'.
		if cp == '\n' {
			if ahead, aheadStride, aheadOK := s.rawDecodeAt(next); aheadOK && ahead == '\r' {
				stride += aheadStride
				next += source.Location(aheadStride)
			}
		}

		// '\r' folds to '\n'; a following '\n' is consumed with it.
		if cp == '\r' {
			cp = '\n'
			if ahead, aheadStride, aheadOK := s.rawDecodeAt(next); aheadOK && ahead == '\n' {
				stride += aheadStride
				next += source.Location(aheadStride)
			}
		}

		// In C mode, a backslash followed by either newline form folds to
		// a single space, consuming the backslash, the newline, and (if
		// present) its paired other-half newline.
		if s.mode.Has(C) && cp == '\\' {
			if ahead, aheadStride, aheadOK := s.rawDecodeAt(next); aheadOK && (ahead == '\r' || ahead == '\n') {
				cp = ' '
				stride += aheadStride
				next += source.Location(aheadStride)

				other := rune('\n')
				if ahead == '\n' {
					other = '\r'
				}
				if ahead2, ahead2Stride, ahead2OK := s.rawDecodeAt(next); ahead2OK && ahead2 == other {
					stride += ahead2Stride
					next += source.Location(ahead2Stride)
				}
			}
		}
	}

	// A '\r' that is the last byte of the text still folds to '\n'.
	if cp == '\r' {
		cp = '\n'
	}

	return cp, stride, true
}

func (s *charStream) rawDecodeAt(pos source.Location) (rune, int, bool) {
	cp, stride, res := utf8x.Decode(s.src.Text, int(pos))
	return cp, stride, res == utf8x.Success
}

// peek returns the code point ahead code points past the current one,
// without mutating stream state, or 0 if that falls at or past end of
// text. peek(0) returns the current code point. Negative ahead is a
// programming error.
func (s *charStream) peek(ahead int) rune {
	if ahead < 0 {
		panic("lexer: peek does not support negative lookahead")
	}
	if ahead == 0 {
		return s.current
	}

	pos := s.position + source.Location(s.stride)
	var cp rune
	for i := 0; i < ahead; i++ {
		var stride int
		var ok bool
		cp, stride, ok = s.peekRaw(pos)
		if !ok {
			return 0
		}
		pos += source.Location(stride)
	}
	return cp
}

// advance consumes the current code point, decoding the next one. It
// increments the line counter and sets atStartOfLine when it traverses a
// canonical '\n'; the token lexer is responsible for clearing
// atStartOfLine again once it has recorded a non-newline token.
func (s *charStream) advance() {
	if s.stride == 0 {
		s.current = 0
		return
	}

	if s.current == '\n' {
		s.line++
		s.atStartOfLine = true
	}

	s.position += source.Location(s.stride)
	cp, stride, ok := s.peekRaw(s.position)
	if !ok {
		s.current, s.stride = 0, 0
		return
	}
	s.current, s.stride = cp, stride
}

// atEOF reports whether the stream has no more code points to offer.
func (s *charStream) atEOF() bool {
	return s.stride == 0
}
