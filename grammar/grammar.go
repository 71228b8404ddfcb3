// Package grammar holds the TR-701 grammar in EBNF form.
//
// The grammar documents what the hand-written parser accepts. It is
// checked with golang.org/x/exp/ebnf so that every production is defined
// and reachable from Program.
package grammar

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

const (
	// Filename is the name reported in grammar error positions.
	Filename = "tr701.ebnf"
	// Start is the production a TR-701 program is derived from.
	Start = "Program"
)

//go:embed tr701.ebnf
var text string

// Source returns the grammar text.
func Source() string {
	return text
}

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(Filename, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Verify parses the grammar and checks it from the start production. An
// empty start only checks the syntax.
func Verify(start string) error {
	g, err := Load()
	if err != nil {
		return err
	}
	if start == "" {
		return nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Productions returns the production names in alphabetical order.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLexical reports whether name is a token production. The lexer, not
// the parser, is responsible for those.
func IsLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return name != "" && !unicode.IsUpper(ch)
}

// Terminals returns the distinct literal tokens used by the syntax
// productions, sorted.
func Terminals(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if IsLexical(name) {
			continue
		}
		collect(prod.Expr, seen)
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func collect(expr ebnf.Expression, seen map[string]bool) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collect(e, seen)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collect(e, seen)
		}
	case *ebnf.Group:
		collect(x.Body, seen)
	case *ebnf.Option:
		collect(x.Body, seen)
	case *ebnf.Repetition:
		collect(x.Body, seen)
	case *ebnf.Token:
		seen[x.String] = true
	}
}
