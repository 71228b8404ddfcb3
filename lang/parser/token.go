package parser

import "fmt"

// Position is a location in the code unit stream. Line and Column are
// 1-based; Column and Offset count UTF-16 code units.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenUnrecognized

	// Literals
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral
	TokenTrue
	TokenFalse

	// Type keywords
	TokenInt
	TokenFloat
	TokenDouble
	TokenChar
	TokenString
	TokenBool

	// Control keywords
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenBreak
	TokenContinue

	// Operators
	TokenAssign
	TokenEQ
	TokenNE
	TokenLE
	TokenGE
	TokenLT
	TokenGT
	TokenNot
	TokenAnd
	TokenOr
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenPercent

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenApostrophe
	TokenQuote
	TokenDot
)

// EOFLiteral is the text carried by the synthetic end-of-input token.
const EOFLiteral = "EOF"

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenUnrecognized:  "Unrecognized",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTrue:          "true",
	TokenFalse:         "false",
	TokenInt:           "int",
	TokenFloat:         "float",
	TokenDouble:        "double",
	TokenChar:          "char",
	TokenString:        "string",
	TokenBool:          "bool",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenWhile:         "while",
	TokenFor:           "for",
	TokenBreak:         "break",
	TokenContinue:      "continue",
	TokenAssign:        "<<<",
	TokenEQ:            "=?",
	TokenNE:            "!?",
	TokenLE:            "<=",
	TokenGE:            ">=",
	TokenLT:            "<",
	TokenGT:            ">",
	TokenNot:           "!",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenCaret:         "^",
	TokenPercent:       "%",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenComma:         ",",
	TokenApostrophe:    "'",
	TokenQuote:         "\"",
	TokenDot:           ".",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is spelled through the keyword table.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenTrue && k <= TokenContinue
}

// IsType reports whether k is one of the declaration type keywords.
func (k TokenKind) IsType() bool {
	return k >= TokenInt && k <= TokenBool
}

// IsRelational reports whether k compares two arithmetic operands.
func (k TokenKind) IsRelational() bool {
	switch k {
	case TokenLT, TokenGT, TokenLE, TokenGE:
		return true
	}
	return false
}

// IsArithmetic reports whether k is a binary arithmetic operator.
func (k TokenKind) IsArithmetic() bool {
	switch k {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenCaret:
		return true
	}
	return false
}

type Token struct {
	Kind    TokenKind
	Pos     Position
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Literal)
}
