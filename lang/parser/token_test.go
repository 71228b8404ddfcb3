package parser

import "testing"

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenIdent, "Identifier"},
		{TokenAssign, "<<<"},
		{TokenEQ, "=?"},
		{TokenNE, "!?"},
		{TokenDot, "."},
		{TokenWhile, "while"},
		{TokenKind(-1), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenKindsDistinct(t *testing.T) {
	seen := make(map[string]TokenKind)
	for kind := TokenEOF; kind <= TokenDot; kind++ {
		name := kind.String()
		if name == "Unknown" {
			t.Errorf("%d has no name", kind)
		}
		if other, dup := seen[name]; dup {
			t.Errorf("%d and %d share name %q", other, kind, name)
		}
		seen[name] = kind
	}
}

func TestTokenKindPredicates(t *testing.T) {
	for _, kind := range []TokenKind{TokenInt, TokenFloat, TokenDouble, TokenChar, TokenString, TokenBool} {
		if !kind.IsType() || !kind.IsKeyword() {
			t.Errorf("%s should be a type keyword", kind)
		}
	}
	if TokenIf.IsType() || !TokenIf.IsKeyword() {
		t.Error("if classified wrongly")
	}
	if TokenIdent.IsKeyword() || TokenAssign.IsKeyword() {
		t.Error("non-keywords classified as keywords")
	}
	if !TokenLE.IsRelational() || TokenEQ.IsRelational() {
		t.Error("relational predicate wrong")
	}
	if !TokenCaret.IsArithmetic() || TokenNot.IsArithmetic() {
		t.Error("arithmetic predicate wrong")
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{File: "a.tr", Line: 2, Column: 5}).String(); got != "a.tr:2:5" {
		t.Errorf("String() = %q", got)
	}
	if got := (Position{Line: 1, Column: 1}).String(); got != "1:1" {
		t.Errorf("String() = %q", got)
	}
}
