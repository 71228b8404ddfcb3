package parser

import "fmt"

// ErrorClass groups failures by the layer that detects them.
type ErrorClass int

const (
	ClassLexical ErrorClass = iota
	ClassSyntax
	ClassShape
)

func (c ErrorClass) String() string {
	switch c {
	case ClassLexical:
		return "lexical"
	case ClassSyntax:
		return "syntax"
	case ClassShape:
		return "shape"
	}
	return "unknown"
}

// Error is the first failure of a parse.
type Error struct {
	Class   ErrorClass
	Message string
	Pos     Position
	Token   Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Pos, e.Class, e.Message)
}

// Latch records the first error of a parse. Later errors are dropped.
// One Latch is shared by the Lexer and Parser of a single parse.
type Latch struct {
	err     *Error
	onFirst []func(*Error)
}

// Set latches err unless an error is already latched, and returns the
// latched error either way.
func (l *Latch) Set(err *Error) *Error {
	if l.err != nil {
		return l.err
	}
	l.err = err
	for _, fn := range l.onFirst {
		fn(err)
	}
	return l.err
}

// Err returns the latched error or nil. The result is a plain nil error
// interface when nothing is latched.
func (l *Latch) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

func (l *Latch) IsSet() bool {
	return l.err != nil
}

// OnFirst registers fn to run once, when the first error is latched.
func (l *Latch) OnFirst(fn func(*Error)) {
	l.onFirst = append(l.onFirst, fn)
}

func newError(class ErrorClass, tok Token, format string, args ...any) *Error {
	return &Error{
		Class:   class,
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos,
		Token:   tok,
	}
}
