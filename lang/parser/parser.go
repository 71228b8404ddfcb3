package parser

import (
	"fmt"
	"unicode/utf16"
)

type Option func(*options)

type options struct {
	file     string
	keywords *Keywords
	tracer   Tracer
}

func buildOptions(opts []Option) options {
	o := options{keywords: DefaultKeywords()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = newLogTracer()
	}
	return o
}

// WithFile sets the file name reported in token positions.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithKeywords replaces the default keyword table.
func WithKeywords(kw *Keywords) Option {
	return func(o *options) {
		if kw != nil {
			o.keywords = kw
		}
	}
}

// WithTracer reports every grammar procedure to t instead of the debug log.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// Parser checks a token stream against the TR-701 grammar. It holds one
// token of lookahead and never backtracks. A Parser runs a single parse;
// create a new one for every input.
type Parser struct {
	opts   options
	lex    *Lexer
	latch  *Latch
	tracer Tracer
	tok    Token
	done   bool
}

// New creates a parser reading code units from src.
func New(src UnitSource, opts ...Option) *Parser {
	o := buildOptions(opts)
	latch := &Latch{}
	return &Parser{
		opts:   o,
		lex:    newLexer(src, o, latch),
		latch:  latch,
		tracer: o.tracer,
	}
}

// Check parses src as a complete program and returns the first error.
func Check(src UnitSource, opts ...Option) error {
	return New(src, opts...).Parse()
}

// Parse runs the grammar from the program rule. It returns nil when the
// whole input is a valid program, or the first *Error otherwise. Calling
// Parse again returns the same result without reading more input.
func (p *Parser) Parse() error {
	if p.done {
		return p.latch.Err()
	}
	p.done = true
	if err := p.advance(); err != nil {
		return err
	}
	return p.parseProgram()
}

// Lookahead returns the current lookahead token.
func (p *Parser) Lookahead() Token {
	return p.tok
}

// Err returns the latched error, if any.
func (p *Parser) Err() error {
	return p.latch.Err()
}

func (p *Parser) trace(rule string) func() {
	p.tracer.Enter(rule)
	return func() {
		p.tracer.Exit(rule)
	}
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	p.tok = tok
	return err
}

func (p *Parser) check(kind TokenKind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) failAt(tok Token, class ErrorClass, format string, args ...any) error {
	err := p.latch.Set(newError(class, tok, format, args...))
	p.tok = Token{Kind: TokenEOF, Pos: p.tok.Pos, Literal: EOFLiteral}
	return err
}

func (p *Parser) fail(class ErrorClass, format string, args ...any) error {
	return p.failAt(p.tok, class, format, args...)
}

// unexpected reports the lookahead as out of place. Unrecognized symbols
// are reported as lexical errors regardless of where they appear.
func (p *Parser) unexpected(format string, args ...any) error {
	if p.tok.Kind == TokenUnrecognized {
		return p.fail(ClassLexical, "unrecognized symbol %q", p.tok.Literal)
	}
	return p.fail(ClassSyntax, "%s, found %s", fmt.Sprintf(format, args...), describe(p.tok))
}

func describe(tok Token) string {
	if tok.Kind == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Literal)
}

func (p *Parser) expect(kind TokenKind, context string) error {
	if !p.check(kind) {
		return p.unexpected("missing %s %s", p.spell(kind), context)
	}
	return p.advance()
}

// spell returns how kind is written in source, quoted for messages.
func (p *Parser) spell(kind TokenKind) string {
	if word, ok := p.opts.keywords.Spelling(kind); ok {
		return fmt.Sprintf("%q", word)
	}
	switch kind {
	case TokenIdent:
		return "identifier"
	case TokenEOF:
		return "end of input"
	}
	return fmt.Sprintf("%q", kind.String())
}

// program -> statementList EOF
func (p *Parser) parseProgram() error {
	defer p.trace("program")()
	if err := p.parseStatementList(); err != nil {
		return err
	}
	if p.check(TokenRBrace) {
		return p.fail(ClassSyntax, "unmatched \"}\"")
	}
	if !p.check(TokenEOF) {
		return p.unexpected("expected end of input")
	}
	return nil
}

// statementList -> { statement '.' | controlStatement }
func (p *Parser) parseStatementList() error {
	defer p.trace("statementList")()
	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		var err error
		switch p.tok.Kind {
		case TokenIf, TokenWhile, TokenFor:
			err = p.parseControlStatement()
		default:
			if err = p.parseStatement(); err == nil {
				err = p.expect(TokenDot, "after statement")
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// statement -> 'continue' | 'break' | declStmt | assignStmt
func (p *Parser) parseStatement() error {
	defer p.trace("statement")()
	switch {
	case p.check(TokenContinue), p.check(TokenBreak):
		return p.advance()
	case p.tok.Kind.IsType():
		return p.parseDeclStmt()
	case p.check(TokenIdent):
		return p.parseAssignStmt()
	}
	return p.unexpected("invalid statement start")
}

// controlStatement -> ifStmt | whileStmt | forStmt
func (p *Parser) parseControlStatement() error {
	defer p.trace("controlStatement")()
	switch p.tok.Kind {
	case TokenIf:
		return p.parseIfStmt()
	case TokenWhile:
		return p.parseWhileStmt()
	case TokenFor:
		return p.parseForStmt()
	}
	return p.unexpected("expected %s, %s or %s", p.spell(TokenIf), p.spell(TokenWhile), p.spell(TokenFor))
}

// declStmt -> type IDENT [ASSIGN_OP value]
func (p *Parser) parseDeclStmt() error {
	defer p.trace("declStmt")()
	typ := p.spell(p.tok.Kind)
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.expect(TokenIdent, "after "+typ); err != nil {
		return err
	}
	if !p.check(TokenAssign) {
		return nil
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.parseValue()
}

// assignStmt -> IDENT ASSIGN_OP value
func (p *Parser) parseAssignStmt() error {
	defer p.trace("assignStmt")()
	if err := p.expect(TokenIdent, "at start of assignment"); err != nil {
		return err
	}
	if err := p.expect(TokenAssign, "after identifier"); err != nil {
		return err
	}
	return p.parseValue()
}

// value -> charLit | stringLit | boolExpr
func (p *Parser) parseValue() error {
	switch p.tok.Kind {
	case TokenApostrophe:
		return p.parseCharLit()
	case TokenQuote:
		return p.parseStringLit()
	}
	return p.parseBoolExpr()
}

// boolExpr -> boolOr
func (p *Parser) parseBoolExpr() error {
	defer p.trace("boolExpr")()
	return p.parseBoolOr()
}

// boolOr -> boolAnd { '||' boolAnd }
func (p *Parser) parseBoolOr() error {
	defer p.trace("boolOr")()
	if err := p.parseBoolAnd(); err != nil {
		return err
	}
	for p.check(TokenOr) {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseBoolAnd(); err != nil {
			return err
		}
	}
	return nil
}

// boolAnd -> boolEq { '&&' boolEq }
func (p *Parser) parseBoolAnd() error {
	defer p.trace("boolAnd")()
	if err := p.parseBoolEq(); err != nil {
		return err
	}
	for p.check(TokenAnd) {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseBoolEq(); err != nil {
			return err
		}
	}
	return nil
}

// boolEq -> boolRel { ('=?' | '!?') boolRel }
//
// Arithmetic and relational operators are consumed below this rule, so
// one still pending here follows a boolean value and is rejected.
func (p *Parser) parseBoolEq() error {
	defer p.trace("boolEq")()
	if err := p.parseBoolRel(); err != nil {
		return err
	}
	for p.check(TokenEQ) || p.check(TokenNE) {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseBoolRel(); err != nil {
			return err
		}
	}
	if p.tok.Kind.IsRelational() || p.tok.Kind.IsArithmetic() {
		return p.fail(ClassShape, "boolean cannot be combined with arithmetic: %q follows a boolean expression", p.tok.Literal)
	}
	return nil
}

// boolRel -> TRUE | FALSE | arithExpr { relOp arithExpr }
//
// Chains such as a < b < c are accepted left to right with no further
// meaning attached.
func (p *Parser) parseBoolRel() error {
	defer p.trace("boolRel")()
	if p.check(TokenTrue) || p.check(TokenFalse) {
		return p.advance()
	}
	if err := p.parseArithExpr(); err != nil {
		return err
	}
	for p.tok.Kind.IsRelational() {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseArithExpr(); err != nil {
			return err
		}
	}
	return nil
}

// arithExpr -> arithTerm { ('+' | '-') arithTerm }
func (p *Parser) parseArithExpr() error {
	defer p.trace("arithExpr")()
	if err := p.parseArithTerm(); err != nil {
		return err
	}
	for p.check(TokenPlus) || p.check(TokenMinus) {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseArithTerm(); err != nil {
			return err
		}
	}
	return nil
}

// arithTerm -> arithPower { ('*' | '/' | '%') arithPower }
func (p *Parser) parseArithTerm() error {
	defer p.trace("arithTerm")()
	if err := p.parseArithPower(); err != nil {
		return err
	}
	for p.check(TokenStar) || p.check(TokenSlash) || p.check(TokenPercent) {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseArithPower(); err != nil {
			return err
		}
	}
	return nil
}

// arithPower -> arithNot [ '^' arithPower ]
func (p *Parser) parseArithPower() error {
	defer p.trace("arithPower")()
	if err := p.parseArithNot(); err != nil {
		return err
	}
	if !p.check(TokenCaret) {
		return nil
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.parseArithPower()
}

// arithNot -> '!' arithNot | arithFactor
func (p *Parser) parseArithNot() error {
	defer p.trace("arithNot")()
	if !p.check(TokenNot) {
		return p.parseArithFactor()
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.parseArithNot()
}

// arithFactor -> IDENT | INT_LIT | FP_LIT | '(' boolExpr ')'
func (p *Parser) parseArithFactor() error {
	defer p.trace("arithFactor")()
	switch p.tok.Kind {
	case TokenIdent, TokenIntLiteral, TokenFloatLiteral:
		return p.advance()
	case TokenLParen:
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.parseBoolExpr(); err != nil {
			return err
		}
		return p.expect(TokenRParen, "to close expression")
	}
	return p.unexpected("expected identifier, number or \"(\"")
}

// block -> '{' statementList '}'
func (p *Parser) parseBlock(owner TokenKind) error {
	if err := p.expect(TokenLBrace, "to open "+p.spell(owner)+" body"); err != nil {
		return err
	}
	if err := p.parseStatementList(); err != nil {
		return err
	}
	return p.expect(TokenRBrace, "to close "+p.spell(owner)+" body")
}

// condition -> '(' boolExpr ')'
func (p *Parser) parseCondition(owner TokenKind) error {
	if err := p.expect(TokenLParen, "after "+p.spell(owner)); err != nil {
		return err
	}
	if err := p.parseBoolExpr(); err != nil {
		return err
	}
	return p.expect(TokenRParen, "to close "+p.spell(owner)+" condition")
}

// ifStmt -> 'if' '(' boolExpr ')' block [ 'else' block ]
func (p *Parser) parseIfStmt() error {
	defer p.trace("ifStmt")()
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.parseCondition(TokenIf); err != nil {
		return err
	}
	if err := p.parseBlock(TokenIf); err != nil {
		return err
	}
	if !p.check(TokenElse) {
		return nil
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.parseBlock(TokenElse)
}

// whileStmt -> 'while' '(' boolExpr ')' block
func (p *Parser) parseWhileStmt() error {
	defer p.trace("whileStmt")()
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.parseCondition(TokenWhile); err != nil {
		return err
	}
	return p.parseBlock(TokenWhile)
}

// forStmt -> 'for' '(' assignStmt '.' boolExpr '.' assignStmt ')' block
func (p *Parser) parseForStmt() error {
	defer p.trace("forStmt")()
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.expect(TokenLParen, "after "+p.spell(TokenFor)); err != nil {
		return err
	}
	if err := p.parseAssignStmt(); err != nil {
		return err
	}
	if err := p.expect(TokenDot, "after for-loop initializer"); err != nil {
		return err
	}
	if err := p.parseBoolExpr(); err != nil {
		return err
	}
	if err := p.expect(TokenDot, "after for-loop condition"); err != nil {
		return err
	}
	if err := p.parseAssignStmt(); err != nil {
		return err
	}
	if err := p.expect(TokenRParen, "to close "+p.spell(TokenFor)+" header"); err != nil {
		return err
	}
	return p.parseBlock(TokenFor)
}

// charLit -> "'" <exactly one code unit> "'"
func (p *Parser) parseCharLit() error {
	defer p.trace("charLit")()
	body, err := p.lex.ScanLiteral(TokenCharLiteral, '\'')
	if err != nil {
		p.tok = body
		return err
	}
	if n := len(utf16.Encode([]rune(body.Literal))); n != 1 {
		return p.failAt(body, ClassLexical, "character literal must hold exactly one code unit, found %d", n)
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.expect(TokenApostrophe, "to close character literal")
}

// stringLit -> '"' <any code units except '"'> '"'
func (p *Parser) parseStringLit() error {
	defer p.trace("stringLit")()
	if body, err := p.lex.ScanLiteral(TokenStringLiteral, '"'); err != nil {
		p.tok = body
		return err
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.expect(TokenQuote, "to close string literal")
}
