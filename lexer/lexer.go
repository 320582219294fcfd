// Package lexer implements the mode-driven preprocessing-token lexer:
// character-stream folding, trivia scanning, and the maximal-munch token
// reader. Grounded throughout on original_source/lib/laye/lex.c
// (ly_lexer_read_pp_token and its helpers), generalized from Laye-only
// scanning to the dual C/Laye dispatch spec.md describes.
package lexer

import (
	"github.com/laye-lang/choir-c/diag"
	"github.com/laye-lang/choir-c/source"
	"github.com/laye-lang/choir-c/token"
)

// Lexer reads preprocessing tokens from a single source. It is not safe
// for concurrent use; independent lexers may run on independent goroutines
// provided they do not share a Context's Arena or Sink without external
// synchronization.
type Lexer struct {
	ctx    Context
	diag   *diag.Sink
	stream *charStream
	modes  []ModeSet
}

// New returns a Lexer positioned at the start of src, with initial as the
// base (unpoppable) entry of its mode stack.
func New(ctx Context, src *source.Source, initial ModeSet) *Lexer {
	l := &Lexer{
		ctx:    ctx,
		diag:   ctx.Diag,
		stream: newCharStream(src),
		modes:  []ModeSet{initial},
	}
	l.stream.mode = initial
	// Re-decode the first code point now that the mode is known, so a
	// C-mode line continuation at byte 0 is folded like any other.
	if cp, stride, ok := l.stream.peekRaw(0); ok {
		l.stream.current, l.stream.stride = cp, stride
	}
	return l
}

// mode returns the active mode set: the top of the mode stack.
func (l *Lexer) mode() ModeSet {
	return l.modes[len(l.modes)-1]
}

// PushMode saves the current mode and installs m as active.
func (l *Lexer) PushMode(m ModeSet) {
	l.modes = append(l.modes, m)
	l.stream.mode = m
}

// PopMode restores the mode active before the most recent PushMode.
// Popping the base entry pushed by New is a programming error and is
// Fatal, matching spec.md §7's "unbalanced mode-stack pop" input-contract
// violation.
func (l *Lexer) PopMode() {
	if len(l.modes) <= 1 {
		l.fatal(l.stream.position, "unbalanced mode stack pop")
	}
	l.modes = l.modes[:len(l.modes)-1]
	l.stream.mode = l.mode()
}

func (l *Lexer) fatal(pos source.Location, message string) {
	l.diag.Emit(diag.Record{Level: diag.Fatal, Source: l.stream.src, ByteOffset: pos, Message: message})
}

func (l *Lexer) errorf(pos source.Location, message string) {
	if l.mode().Has(RejectedBranch) {
		return
	}
	l.diag.Emit(diag.Record{Level: diag.Error, Source: l.stream.src, ByteOffset: pos, Message: message})
}

func buildFlags(atStartOfLine, hasWhitespaceBefore bool) token.Flags {
	var f token.Flags
	if atStartOfLine {
		f |= token.AtStartOfLine
	}
	if hasWhitespaceBefore {
		f |= token.HasWhitespaceBefore
	}
	return f
}

// ReadPPToken reads and returns the next preprocessing token. It always
// consumes at least one code point, except at end of text where it
// returns END_OF_FILE with an empty range on every subsequent call.
func (l *Lexer) ReadPPToken() token.Token {
	s := l.stream

	beginTriviaPos := s.position
	l.scanTrivia(true)

	atStartOfLine := s.atStartOfLine
	hasWhitespaceBefore := beginTriviaPos != s.position
	tokenBegin := s.position

	if s.atEOF() {
		return token.Token{
			Kind:  token.EndOfFile,
			Range: source.Range{Source: s.src, Begin: tokenBegin, End: tokenBegin},
			Flags: buildFlags(atStartOfLine, hasWhitespaceBefore),
		}
	}

	c := s.current
	s.advance()

	kind, value := l.dispatch(c, tokenBegin)

	if c != '\n' {
		s.atStartOfLine = false
	}

	endPos := s.position
	if endPos <= tokenBegin {
		l.fatal(tokenBegin, "lexer did not consume a character")
	}

	rng := source.Range{Source: s.src, Begin: tokenBegin, End: endPos}
	l.scanTrivia(false)

	return token.Token{
		Kind:  kind,
		Range: rng,
		Flags: buildFlags(atStartOfLine, hasWhitespaceBefore),
		Value: value,
	}
}

func (l *Lexer) dispatch(c rune, tokenBegin source.Location) (token.Kind, token.Value) {
	s := l.stream

	switch {
	case c == '\n':
		if !l.mode().Has(Directive) {
			l.fatal(tokenBegin, "the newline character is white space unless within a preprocessing directive")
		}
		return token.PPEndOfDirective, nil

	case l.mode().Has(HeaderNames) && (c == '<' || c == '"'):
		return l.readHeaderName(c, tokenBegin)

	case c == 'u' && s.current == '8' && isQuote(s.peek(1)):
		s.advance() // '8'
		return l.readLiteral(token.UTF8CharacterConstant, token.UTF8StringLiteral, false, tokenBegin)
	case c == 'u' && isQuote(s.current):
		return l.readLiteral(token.UTF16CharacterConstant, token.UTF16StringLiteral, false, tokenBegin)
	case c == 'U' && isQuote(s.current):
		return l.readLiteral(token.UTF32CharacterConstant, token.UTF32StringLiteral, false, tokenBegin)
	case c == 'L' && isQuote(s.current):
		return l.readLiteral(token.WideCharacterConstant, token.WideStringLiteral, false, tokenBegin)
	case c == 'R' && isQuote(s.current):
		return l.readLiteral(token.CharacterConstant, token.StringLiteral, true, tokenBegin)
	case isQuote(c):
		return l.readLiteralBody(c, token.CharacterConstant, token.StringLiteral, false, tokenBegin)

	case isIdentStart(c):
		l.readIdentifierTail()
		return token.PPNotKeyword, token.TextValue{Text: l.intern(tokenBegin)}

	case l.mode().Has(C) && (isDigit(c) || (c == '.' && isDigit(s.current))):
		l.readPPNumberTail()
		return token.PPNumber, token.TextValue{Text: l.intern(tokenBegin)}

	case l.mode().Has(Laye) && isDigit(c):
		l.readIntegerDigitsTail()
		return token.IntegerConstant, token.IntValue{Value: parseDecimal(l.spelling(tokenBegin))}

	default:
		return l.readPunctuator(c, tokenBegin)
	}
}

func isQuote(c rune) bool { return c == '\'' || c == '"' }

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentStart(c rune) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentContinue(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func (l *Lexer) readIdentifierTail() {
	for isIdentContinue(l.stream.current) {
		l.stream.advance()
	}
}

func (l *Lexer) readPPNumberTail() {
	s := l.stream
	for {
		c := s.current
		switch {
		case c == '\'' && isDigit(s.peek(1)):
			s.advance()
			s.advance()
		case (c == 'e' || c == 'E' || c == 'p' || c == 'P') && (s.peek(1) == '+' || s.peek(1) == '-'):
			s.advance()
			s.advance()
		case c == '.' || isIdentContinue(c):
			s.advance()
		default:
			return
		}
	}
}

func (l *Lexer) readIntegerDigitsTail() {
	for isDigit(l.stream.current) {
		l.stream.advance()
	}
}

func parseDecimal(spelling string) uint64 {
	var v uint64
	for _, r := range spelling {
		if r < '0' || r > '9' {
			continue
		}
		v = v*10 + uint64(r-'0')
	}
	return v
}

// intern copies the token's source text (from tokenBegin to the stream's
// current position) into the arena and returns the interned view.
func (l *Lexer) intern(tokenBegin source.Location) string {
	return l.ctx.Arena.AllocString(l.spelling(tokenBegin))
}

func (l *Lexer) spelling(tokenBegin source.Location) string {
	return string(l.stream.src.Text[tokenBegin:l.stream.position])
}

// readLiteral is called right after a prefix letter (u, u8, U, L, R) has
// been consumed, with the opening quote still unconsumed in s.current. It
// consumes the quote itself before scanning the body.
func (l *Lexer) readLiteral(charKind, strKind token.Kind, raw bool, tokenBegin source.Location) (token.Kind, token.Value) {
	quote := l.stream.current
	l.stream.advance() // opening quote
	return l.finishLiteral(quote, charKind, strKind, raw, tokenBegin)
}

// readLiteralBody is called for an unprefixed literal, where the dispatch
// loop's own lead-character advance already consumed the opening quote
// (quote == c); s.current is already the first body character.
func (l *Lexer) readLiteralBody(quote rune, charKind, strKind token.Kind, raw bool, tokenBegin source.Location) (token.Kind, token.Value) {
	return l.finishLiteral(quote, charKind, strKind, raw, tokenBegin)
}

// finishLiteral scans from the current position (the first body
// character, opening quote already consumed by the caller) through the
// matching close.
func (l *Lexer) finishLiteral(quote rune, charKind, strKind token.Kind, raw bool, tokenBegin source.Location) (token.Kind, token.Value) {
	s := l.stream

	closed := false
	for !s.atEOF() && s.current != '\n' {
		if s.current == quote {
			s.advance()
			closed = true
			break
		}
		if !raw && s.current == '\\' {
			s.advance()
			if s.atEOF() {
				break
			}
			s.advance()
			continue
		}
		s.advance()
	}

	if !closed {
		what := "character constant"
		if quote == '"' {
			what = "string literal"
		}
		l.errorf(tokenBegin, "unterminated "+what)
	}

	kind := strKind
	if quote == '\'' {
		kind = charKind
	}
	return kind, token.TextValue{Text: l.intern(tokenBegin)}
}

// readHeaderName is called with open's opening delimiter already consumed
// by the dispatch loop's lead-character advance; s.current is already the
// first body character.
func (l *Lexer) readHeaderName(open rune, tokenBegin source.Location) (token.Kind, token.Value) {
	s := l.stream
	closeChar := '>'
	if open == '"' {
		closeChar = '"'
	}

	closed := false
	for !s.atEOF() && s.current != '\n' {
		if s.current == closeChar {
			s.advance()
			closed = true
			break
		}
		s.advance()
	}

	if !closed {
		l.errorf(tokenBegin, "unterminated header name")
	}

	return token.HeaderName, token.TextValue{Text: l.intern(tokenBegin)}
}

func (l *Lexer) tryAdvance(expected rune) bool {
	if l.stream.current == expected {
		l.stream.advance()
		return true
	}
	return false
}

// readPunctuator dispatches on an already-consumed lead character c,
// grounded line-for-line on ly_lexer_read_pp_token's punctuator switch,
// generalized to the shared C+Laye punctuator set plus each dialect's
// exclusive punctuators.
func (l *Lexer) readPunctuator(c rune, tokenBegin source.Location) (token.Kind, token.Value) {
	s := l.stream
	isC := l.mode().Has(C)
	isLaye := l.mode().Has(Laye)

	switch c {
	case '#':
		if isC && l.tryAdvance('#') {
			return token.HashHash, nil
		}
		if isLaye && l.tryAdvance('[') {
			return token.HashSquare, nil
		}
		return token.Hash, nil

	case '(':
		return token.OpenParen, nil
	case ')':
		return token.CloseParen, nil
	case '[':
		return token.OpenSquare, nil
	case ']':
		return token.CloseSquare, nil
	case '{':
		return token.OpenCurly, nil
	case '}':
		return token.CloseCurly, nil
	case ',':
		return token.Comma, nil
	case ';':
		return token.SemiColon, nil

	case '.':
		if isC && s.current == '.' && s.peek(1) == '.' {
			s.advance()
			s.advance()
			return token.DotDotDot, nil
		}
		if isLaye && l.tryAdvance('.') {
			if l.tryAdvance('=') {
				return token.DotDotEqual, nil
			}
			return token.DotDot, nil
		}
		return token.Dot, nil

	case ':':
		if l.tryAdvance(':') {
			return token.ColonColon, nil
		}
		return token.Colon, nil

	case '=':
		if l.tryAdvance('=') {
			return token.EqualEqual, nil
		}
		if isLaye && l.tryAdvance('>') {
			return token.EqualGreater, nil
		}
		return token.Equal, nil

	case '!':
		if l.tryAdvance('=') {
			return token.BangEqual, nil
		}
		return token.Bang, nil

	case '<':
		if l.tryAdvance('=') {
			if isLaye && l.tryAdvance('>') {
				return token.LessEqualGreater, nil
			}
			return token.LessEqual, nil
		}
		if l.tryAdvance('<') {
			if l.tryAdvance('=') {
				return token.LessLessEqual, nil
			}
			return token.LessLess, nil
		}
		return token.Less, nil

	case '>':
		if l.tryAdvance('=') {
			return token.GreaterEqual, nil
		}
		if l.tryAdvance('>') {
			if l.tryAdvance('=') {
				return token.GreaterGreaterEqual, nil
			}
			return token.GreaterGreater, nil
		}
		return token.Greater, nil

	case '+':
		if l.tryAdvance('=') {
			return token.PlusEqual, nil
		}
		if l.tryAdvance('+') {
			return token.PlusPlus, nil
		}
		return token.Plus, nil

	case '-':
		if l.tryAdvance('=') {
			return token.MinusEqual, nil
		}
		if l.tryAdvance('-') {
			return token.MinusMinus, nil
		}
		if l.tryAdvance('>') {
			return token.MinusGreater, nil
		}
		return token.Minus, nil

	case '*':
		if l.tryAdvance('=') {
			return token.StarEqual, nil
		}
		return token.Star, nil

	case '/':
		if l.tryAdvance('=') {
			return token.SlashEqual, nil
		}
		return token.Slash, nil

	case '%':
		if l.tryAdvance('=') {
			return token.PercentEqual, nil
		}
		return token.Percent, nil

	case '^':
		if l.tryAdvance('=') {
			return token.CaretEqual, nil
		}
		return token.Caret, nil

	case '~':
		if isLaye && l.tryAdvance('=') {
			return token.TildeEqual, nil
		}
		return token.Tilde, nil

	case '&':
		if l.tryAdvance('=') {
			return token.AmpersandEqual, nil
		}
		if l.tryAdvance('&') {
			return token.AmpersandAmpersand, nil
		}
		return token.Ampersand, nil

	case '|':
		if l.tryAdvance('=') {
			return token.PipeEqual, nil
		}
		if l.tryAdvance('|') {
			return token.PipePipe, nil
		}
		return token.Pipe, nil

	case '?':
		if isLaye && l.tryAdvance('?') {
			if l.tryAdvance('=') {
				return token.QuestionQuestionEqual, nil
			}
			return token.QuestionQuestion, nil
		}
		return token.Question, nil

	default:
		l.errorf(tokenBegin, "invalid character in source text")
		return token.Invalid, nil
	}
}
