// Package parser checks TR-701 programs: a lexer and a recursive-descent
// syntax checker with one token of lookahead and no backtracking.
//
// # Overview
//
// TR-701 is a small imperative language spelled with Turkish keywords.
// The package accepts or rejects a program; it builds no syntax tree.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│ Code units  │────▶│   Lexer     │────▶│   Parser    │
//	│  (UTF-16)   │     │  (tokens)   │     │ (pass/fail) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           └──────▶ Latch ◀────┘
//
// The parser pulls tokens from the lexer on demand and the lexer pulls code
// units from a UnitSource on demand.
//
// # Lexical Structure
//
//	tam x <<< 5.          $ declaration with assignment $
//	x <<< x ^ 2 ^ 3.      $ power is right-associative $
//	eğer (x =? 64) { kır. } değilse { devam. }
//
// Comments run from one $ to the next and do not nest. Statements end with
// a period. Assignment is <<<, equality =? and inequality !?. Keywords are
// looked up in a Keywords table, so another spelling can be configured as
// long as every keyword kind keeps exactly one spelling.
//
// # Errors
//
// The first failure wins. It is recorded in a Latch shared by the lexer and
// the parser, every grammar procedure returns it to its caller, and nothing
// is read afterwards. There is no recovery.
//
//	err := parser.Check(source.FromString("tam x <<< 5."))
//	var perr *parser.Error
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Pos, perr.Class, perr.Message)
//	}
package parser
