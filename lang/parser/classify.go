package parser

import "unicode"

// CharClass is the lexical class of a single code unit.
type CharClass int

const (
	ClassOther CharClass = iota
	ClassLetter
	ClassDigit
	ClassCommentMarker
	ClassWhitespace
	ClassEnd
)

var charClassNames = [...]string{
	ClassOther:         "Other",
	ClassLetter:        "Letter",
	ClassDigit:         "Digit",
	ClassCommentMarker: "CommentMarker",
	ClassWhitespace:    "Whitespace",
	ClassEnd:           "End",
}

func (c CharClass) String() string {
	if c >= 0 && int(c) < len(charClassNames) {
		return charClassNames[c]
	}
	return "Unknown"
}

const (
	// CommentMarker opens and closes a comment. Comments do not nest.
	CommentMarker = '$'
	// ComparisonSuffix completes the equality (=?) and inequality (!?) operators.
	ComparisonSuffix = '?'
	// DecimalSeparator splits the integer and fraction parts of a number.
	DecimalSeparator = '.'
)

// extendedLetters are the letters outside ASCII that count as Letter.
// Classification never consults the process locale.
var extendedLetters = map[uint16]bool{
	'Ç': true, 'ç': true,
	'Ğ': true, 'ğ': true,
	'İ': true, 'ı': true,
	'Ö': true, 'ö': true,
	'Ş': true, 'ş': true,
	'Ü': true, 'ü': true,
}

// IsExtendedLetter reports whether u is one of the Turkish letters.
func IsExtendedLetter(u uint16) bool {
	return extendedLetters[u]
}

// Classify returns the class of a code unit. End of input is not a code
// unit; the lexer assigns ClassEnd itself.
func Classify(u uint16) CharClass {
	switch {
	case (u >= 'a' && u <= 'z') || (u >= 'A' && u <= 'Z') || extendedLetters[u]:
		return ClassLetter
	case u >= '0' && u <= '9':
		return ClassDigit
	case u == CommentMarker:
		return ClassCommentMarker
	case unicode.IsSpace(rune(u)):
		return ClassWhitespace
	}
	return ClassOther
}

func isIdentPart(u uint16) bool {
	switch Classify(u) {
	case ClassLetter, ClassDigit:
		return true
	}
	return u == '_'
}
