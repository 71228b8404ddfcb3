package parser

import (
	"fmt"
	"sort"
	"unicode/utf16"
)

// keywordKinds lists every kind that is spelled through a Keywords table,
// in the order they are reported.
var keywordKinds = []TokenKind{
	TokenInt, TokenFloat, TokenDouble, TokenChar, TokenString, TokenBool,
	TokenIf, TokenElse, TokenWhile, TokenFor, TokenBreak, TokenContinue,
	TokenTrue, TokenFalse,
}

var defaultSpellings = map[TokenKind]string{
	TokenInt:      "tam",
	TokenFloat:    "kesir",
	TokenDouble:   "çift",
	TokenChar:     "karakter",
	TokenString:   "dizgi",
	TokenBool:     "mantık",
	TokenIf:       "eğer",
	TokenElse:     "değilse",
	TokenWhile:    "iken",
	TokenFor:      "için",
	TokenBreak:    "kır",
	TokenContinue: "devam",
	TokenTrue:     "doğru",
	TokenFalse:    "yanlış",
}

// Keywords maps surface spellings to keyword kinds. Exactly one spelling
// exists per keyword kind. A Keywords value is immutable once built.
type Keywords struct {
	byWord map[string]TokenKind
	byKind map[TokenKind]string
}

var defaultKeywords = mustKeywords(defaultSpellings)

func mustKeywords(spellings map[TokenKind]string) *Keywords {
	kw, err := NewKeywords(spellings)
	if err != nil {
		panic(err)
	}
	return kw
}

// DefaultKeywords returns the built-in Turkish keyword table.
func DefaultKeywords() *Keywords {
	return defaultKeywords
}

// NewKeywords validates spellings and builds a table. Every keyword kind
// needs a spelling, spellings must be unique, and each must lex as a
// single identifier.
func NewKeywords(spellings map[TokenKind]string) (*Keywords, error) {
	kw := &Keywords{
		byWord: make(map[string]TokenKind, len(keywordKinds)),
		byKind: make(map[TokenKind]string, len(keywordKinds)),
	}
	for kind := range spellings {
		if !kind.IsKeyword() {
			return nil, fmt.Errorf("keywords: %s is not a keyword kind", kind)
		}
	}
	for _, kind := range keywordKinds {
		word, ok := spellings[kind]
		if !ok || word == "" {
			return nil, fmt.Errorf("keywords: no spelling for %s", kind)
		}
		if err := validateSpelling(word); err != nil {
			return nil, fmt.Errorf("keywords: %s: %w", kind, err)
		}
		if other, dup := kw.byWord[word]; dup {
			return nil, fmt.Errorf("keywords: %q spells both %s and %s", word, other, kind)
		}
		kw.byWord[word] = kind
		kw.byKind[kind] = word
	}
	return kw, nil
}

func validateSpelling(word string) error {
	units := utf16.Encode([]rune(word))
	if len(units) > MaxLexemeLen {
		return fmt.Errorf("%q is longer than %d code units", word, MaxLexemeLen)
	}
	if Classify(units[0]) != ClassLetter {
		return fmt.Errorf("%q does not start with a letter", word)
	}
	for _, u := range units[1:] {
		if !isIdentPart(u) {
			return fmt.Errorf("%q contains %q", word, rune(u))
		}
	}
	return nil
}

// Lookup returns the keyword kind spelled by word, or TokenIdent.
func (kw *Keywords) Lookup(word string) TokenKind {
	if kind, ok := kw.byWord[word]; ok {
		return kind
	}
	return TokenIdent
}

// Spelling returns the surface spelling of a keyword kind.
func (kw *Keywords) Spelling(kind TokenKind) (string, bool) {
	word, ok := kw.byKind[kind]
	return word, ok
}

// Spellings returns a copy of the kind to spelling mapping.
func (kw *Keywords) Spellings() map[TokenKind]string {
	out := make(map[TokenKind]string, len(kw.byKind))
	for k, v := range kw.byKind {
		out[k] = v
	}
	return out
}

// KeywordKinds returns every keyword kind in a stable order.
func KeywordKinds() []TokenKind {
	return append([]TokenKind(nil), keywordKinds...)
}

// KeywordKindByName resolves names such as "int" or "while", as printed by
// TokenKind.String, to a keyword kind.
func KeywordKindByName(name string) (TokenKind, bool) {
	for _, kind := range keywordKinds {
		if kind.String() == name {
			return kind, true
		}
	}
	return 0, false
}

// Words returns the spellings sorted alphabetically.
func (kw *Keywords) Words() []string {
	words := make([]string, 0, len(kw.byWord))
	for w := range kw.byWord {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
