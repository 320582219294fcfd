package lexer

import (
	"github.com/laye-lang/choir-c/diag"
	"github.com/laye-lang/choir-c/source"
)

// scanTrivia consumes whitespace, shebangs, and comments around a token.
// Grounded on original_source/lib/laye/lex.c's
// ly_lexer_read_relevant_trivia. leading selects scan_leading() behavior
// (newlines consumed, unless Directive is set) vs scan_trailing()
// (newlines terminate the scan).
func (l *Lexer) scanTrivia(leading bool) {
	s := l.stream

	for !s.atEOF() {
		c := s.current
		switch c {
		case '#':
			if s.position == 0 && s.peek(1) == '!' {
				s.advance() // '#'
				s.advance() // '!'
				for !s.atEOF() && s.current != '\n' {
					s.advance()
				}
				continue
			}
			return

		case '/':
			if s.peek(1) == '/' {
				s.advance() // '/'
				s.advance() // '/'
				for !s.atEOF() && s.current != '\n' {
					s.advance()
				}
				if !leading {
					return
				}
				continue
			}
			if s.peek(1) == '*' {
				commentStart := s.position
				s.advance() // '/'
				s.advance() // '*'
				l.scanBlockComment(commentStart)
				continue
			}
			return

		case ' ', '\t', '\v':
			s.advance()
			continue

		case '\n':
			if !leading {
				return
			}
			if l.mode().Has(Directive) {
				return
			}
			s.advance()
			continue

		default:
			return
		}
	}
}

func (l *Lexer) scanBlockComment(beginPos source.Location) {
	s := l.stream
	nesting := 1
	var prev rune

	for !s.atEOF() && nesting > 0 {
		c := s.current
		if c == '/' && prev == '*' {
			nesting--
		} else if l.mode().Has(Laye) && c == '*' && prev == '/' {
			nesting++
		}
		prev = c
		s.advance()
	}

	if nesting > 0 && !l.mode().Has(RejectedBranch) {
		l.diag.Emit(diag.Record{
			Level:      diag.Error,
			Source:     l.stream.src,
			ByteOffset: beginPos,
			Message:    "unclosed delimited comment",
		})
	}
}
