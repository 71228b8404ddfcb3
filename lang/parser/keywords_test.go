package parser

import (
	"strings"
	"testing"
)

func TestDefaultKeywords(t *testing.T) {
	kw := DefaultKeywords()
	for _, kind := range KeywordKinds() {
		word, ok := kw.Spelling(kind)
		if !ok {
			t.Errorf("no spelling for %s", kind)
			continue
		}
		if got := kw.Lookup(word); got != kind {
			t.Errorf("Lookup(%q) = %v, want %v", word, got, kind)
		}
	}
	if got := kw.Lookup("sayı"); got != TokenIdent {
		t.Errorf("Lookup(sayı) = %v, want Identifier", got)
	}
	if got := len(kw.Words()); got != len(KeywordKinds()) {
		t.Errorf("Words() has %d entries, want %d", got, len(KeywordKinds()))
	}
}

func TestNewKeywordsErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(map[TokenKind]string)
		want   string
	}{
		{"missing", func(m map[TokenKind]string) { delete(m, TokenWhile) }, "no spelling for while"},
		{"empty", func(m map[TokenKind]string) { m[TokenFor] = "" }, "no spelling for for"},
		{"duplicate", func(m map[TokenKind]string) { m[TokenElse] = m[TokenIf] }, "spells both"},
		{"not a keyword", func(m map[TokenKind]string) { m[TokenPlus] = "artı" }, "not a keyword kind"},
		{"digit start", func(m map[TokenKind]string) { m[TokenInt] = "1tam" }, "does not start with a letter"},
		{"symbol", func(m map[TokenKind]string) { m[TokenInt] = "ta-m" }, "contains"},
		{"too long", func(m map[TokenKind]string) { m[TokenInt] = strings.Repeat("t", MaxLexemeLen+1) }, "longer than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spellings := DefaultKeywords().Spellings()
			tt.modify(spellings)
			_, err := NewKeywords(spellings)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("NewKeywords() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestSpellingsIsCopy(t *testing.T) {
	m := DefaultKeywords().Spellings()
	m[TokenInt] = "changed"
	if word, _ := DefaultKeywords().Spelling(TokenInt); word != "tam" {
		t.Errorf("default table modified: %q", word)
	}
}

func TestKeywordKindByName(t *testing.T) {
	for _, kind := range KeywordKinds() {
		got, ok := KeywordKindByName(kind.String())
		if !ok || got != kind {
			t.Errorf("KeywordKindByName(%q) = %v, %v", kind.String(), got, ok)
		}
	}
	if _, ok := KeywordKindByName("<<<"); ok {
		t.Error("operator name resolved as keyword")
	}
}
