package parser

import (
	"io"
	"unicode/utf16"

	"github.com/tliron/commonlog"
)

// MaxLexemeLen is the longest lexeme, in code units, the lexer accepts.
const MaxLexemeLen = 98

// UnitSource yields code units one at a time. The second result is false
// once the input is exhausted. *source.Units implements it.
type UnitSource interface {
	Next() (uint16, bool)
}

type pendingUnit struct {
	unit uint16
	ok   bool
}

// Lexer turns a code unit stream into tokens. It holds exactly one current
// code unit plus at most two units of lookahead, so multi-character
// operators never have to push input back into the source.
type Lexer struct {
	src      UnitSource
	keywords *Keywords
	latch    *Latch
	log      commonlog.Logger

	ch      uint16
	class   CharClass
	pos     Position
	primed  bool
	pending []pendingUnit

	start  Position
	lexeme []uint16
}

// NewLexer creates a lexer reading from src. The lexer owns a fresh Latch
// unless it is created by a Parser, which shares its own.
func NewLexer(src UnitSource, opts ...Option) *Lexer {
	o := buildOptions(opts)
	return newLexer(src, o, &Latch{})
}

func newLexer(src UnitSource, o options, latch *Latch) *Lexer {
	l := &Lexer{
		src:      src,
		keywords: o.keywords,
		latch:    latch,
		log:      commonlog.GetLogger("tr701.lexer"),
		pos:      Position{File: o.file, Line: 1, Column: 1},
		pending:  make([]pendingUnit, 0, 2),
		lexeme:   make([]uint16, 0, MaxLexemeLen),
	}
	latch.OnFirst(func(*Error) { l.release() })
	return l
}

// Err returns the first error seen by this lexer, if any.
func (l *Lexer) Err() error {
	return l.latch.Err()
}

func (l *Lexer) release() {
	if c, ok := l.src.(io.Closer); ok {
		c.Close()
	}
	l.src = nil
	l.pending = l.pending[:0]
	l.class = ClassEnd
}

func (l *Lexer) fetch() (uint16, bool) {
	if len(l.pending) > 0 {
		p := l.pending[0]
		copy(l.pending, l.pending[1:])
		l.pending = l.pending[:len(l.pending)-1]
		return p.unit, p.ok
	}
	if l.src == nil {
		return 0, false
	}
	return l.src.Next()
}

// advance moves to the next code unit and classifies it.
func (l *Lexer) advance() {
	if l.primed && l.class != ClassEnd {
		l.pos.Offset++
		if l.ch == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
	}
	l.primed = true

	u, ok := l.fetch()
	if !ok {
		l.ch = 0
		l.class = ClassEnd
		return
	}
	l.ch = u
	l.class = Classify(u)
}

// peek returns the code unit n positions after the current one, for n of
// 1 or 2, without consuming anything.
func (l *Lexer) peek(n int) (uint16, CharClass) {
	for len(l.pending) < n {
		var p pendingUnit
		if l.src != nil {
			p.unit, p.ok = l.src.Next()
		}
		l.pending = append(l.pending, p)
	}
	p := l.pending[n-1]
	if !p.ok {
		return 0, ClassEnd
	}
	return p.unit, Classify(p.unit)
}

func (l *Lexer) addChar() error {
	if len(l.lexeme) >= MaxLexemeLen {
		return l.fail("lexeme is longer than %d code units", MaxLexemeLen)
	}
	l.lexeme = append(l.lexeme, l.ch)
	return nil
}

func (l *Lexer) text() string {
	return string(utf16.Decode(l.lexeme))
}

func (l *Lexer) fail(format string, args ...any) error {
	return l.latch.Set(newError(ClassLexical, Token{Kind: TokenUnrecognized, Pos: l.start, Literal: l.text()}, format, args...))
}

func (l *Lexer) eof() Token {
	return Token{Kind: TokenEOF, Pos: l.pos, Literal: EOFLiteral}
}

// NextToken returns the next token. After the first error every call
// returns the end-of-input token together with that error.
func (l *Lexer) NextToken() (Token, error) {
	if l.latch.IsSet() {
		return l.eof(), l.latch.Err()
	}
	if !l.primed {
		l.advance()
	}
	tok, err := l.scan()
	if err != nil {
		return l.eof(), err
	}
	if l.log.AllowLevel(commonlog.Debug) {
		l.log.Debugf("next token is: %s, next lexeme is: %s", tok.Kind, tok.Literal)
	}
	return tok, nil
}

func (l *Lexer) scan() (Token, error) {
	for {
		l.lexeme = l.lexeme[:0]
		for l.class == ClassWhitespace {
			l.advance()
		}
		l.start = l.pos

		switch l.class {
		case ClassLetter:
			return l.scanWord()
		case ClassDigit:
			return l.scanNumber()
		case ClassCommentMarker:
			if err := l.skipComment(); err != nil {
				return Token{}, err
			}
		case ClassEnd:
			return l.eof(), nil
		default:
			return l.scanOperator()
		}
	}
}

func (l *Lexer) token(kind TokenKind) Token {
	return Token{Kind: kind, Pos: l.start, Literal: l.text()}
}

func (l *Lexer) isIdentPart() bool {
	switch l.class {
	case ClassLetter, ClassDigit:
		return true
	case ClassOther:
		return l.ch == '_'
	}
	return false
}

func (l *Lexer) scanWord() (Token, error) {
	for l.isIdentPart() {
		if err := l.addChar(); err != nil {
			return Token{}, err
		}
		l.advance()
	}
	tok := l.token(TokenIdent)
	tok.Kind = l.keywords.Lookup(tok.Literal)
	return tok, nil
}

func (l *Lexer) scanDigits() error {
	for l.class == ClassDigit {
		if err := l.addChar(); err != nil {
			return err
		}
		l.advance()
	}
	return nil
}

func (l *Lexer) scanNumber() (Token, error) {
	if err := l.scanDigits(); err != nil {
		return Token{}, err
	}
	if l.ch != DecimalSeparator || l.class != ClassOther {
		return l.token(TokenIntLiteral), nil
	}
	// A separator not followed by a digit terminates the statement instead.
	if _, class := l.peek(1); class != ClassDigit {
		return l.token(TokenIntLiteral), nil
	}
	if err := l.addChar(); err != nil {
		return Token{}, err
	}
	l.advance()
	if err := l.scanDigits(); err != nil {
		return Token{}, err
	}
	return l.token(TokenFloatLiteral), nil
}

func (l *Lexer) skipComment() error {
	l.advance()
	for {
		switch l.class {
		case ClassEnd:
			return l.fail("unterminated comment")
		case ClassCommentMarker:
			l.advance()
			return nil
		}
		l.advance()
	}
}

var singleCharTokens = map[uint16]TokenKind{
	'+':  TokenPlus,
	'-':  TokenMinus,
	'*':  TokenStar,
	'/':  TokenSlash,
	'^':  TokenCaret,
	'%':  TokenPercent,
	'(':  TokenLParen,
	')':  TokenRParen,
	'{':  TokenLBrace,
	'}':  TokenRBrace,
	'[':  TokenLBracket,
	']':  TokenRBracket,
	',':  TokenComma,
	'\'': TokenApostrophe,
	'"':  TokenQuote,
	'.':  TokenDot,
}

// take consumes n code units into the lexeme and returns a token of kind.
func (l *Lexer) take(kind TokenKind, n int) (Token, error) {
	for i := 0; i < n; i++ {
		if err := l.addChar(); err != nil {
			return Token{}, err
		}
		l.advance()
	}
	return l.token(kind), nil
}

func (l *Lexer) scanOperator() (Token, error) {
	next, _ := l.peek(1)

	switch l.ch {
	case '=':
		if next == ComparisonSuffix {
			return l.take(TokenEQ, 2)
		}
		return l.take(TokenUnrecognized, 1)

	case '!':
		if next == ComparisonSuffix {
			return l.take(TokenNE, 2)
		}
		return l.take(TokenNot, 1)

	case '<':
		if next == '=' {
			return l.take(TokenLE, 2)
		}
		if next == '<' {
			if after, _ := l.peek(2); after == '<' {
				return l.take(TokenAssign, 3)
			}
		}
		return l.take(TokenLT, 1)

	case '>':
		if next == '=' {
			return l.take(TokenGE, 2)
		}
		return l.take(TokenGT, 1)

	case '&':
		if next == '&' {
			return l.take(TokenAnd, 2)
		}
		return l.take(TokenUnrecognized, 1)

	case '|':
		if next == '|' {
			return l.take(TokenOr, 2)
		}
		return l.take(TokenUnrecognized, 1)
	}

	if kind, ok := singleCharTokens[l.ch]; ok {
		return l.take(kind, 1)
	}
	if utf16.IsSurrogate(rune(l.ch)) && l.ch < 0xDC00 && utf16.IsSurrogate(rune(next)) && next >= 0xDC00 {
		return l.take(TokenUnrecognized, 2)
	}
	return l.take(TokenUnrecognized, 1)
}

// ScanLiteral reads the raw body of a character or string literal. The
// caller has just received the opening delimiter token; the body runs up
// to, but not including, the next delim, which is left for NextToken.
func (l *Lexer) ScanLiteral(kind TokenKind, delim uint16) (Token, error) {
	if l.latch.IsSet() {
		return l.eof(), l.latch.Err()
	}
	l.lexeme = l.lexeme[:0]
	l.start = l.pos
	for l.class != ClassEnd && l.ch != delim {
		if err := l.addChar(); err != nil {
			return l.eof(), err
		}
		l.advance()
	}
	if l.class == ClassEnd {
		what := "string"
		if kind == TokenCharLiteral {
			what = "character"
		}
		return l.eof(), l.fail("unterminated %s literal", what)
	}
	return l.token(kind), nil
}

// Tokenize lexes src to the end and returns every token, the final
// end-of-input token included.
func Tokenize(src UnitSource, opts ...Option) ([]Token, error) {
	l := NewLexer(src, opts...)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}
