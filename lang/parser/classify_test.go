package parser

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		unit uint16
		want CharClass
	}{
		{'a', ClassLetter},
		{'Z', ClassLetter},
		{'ç', ClassLetter},
		{'Ğ', ClassLetter},
		{'ı', ClassLetter},
		{'İ', ClassLetter},
		{'ş', ClassLetter},
		{'Ü', ClassLetter},
		{'0', ClassDigit},
		{'9', ClassDigit},
		{'$', ClassCommentMarker},
		{' ', ClassWhitespace},
		{'\t', ClassWhitespace},
		{'\n', ClassWhitespace},
		{0x00A0, ClassWhitespace},
		{'_', ClassOther},
		{'<', ClassOther},
		{'é', ClassOther},
		{'ß', ClassOther},
		{0xD83D, ClassOther},
	}

	for _, tt := range tests {
		t.Run(string(rune(tt.unit)), func(t *testing.T) {
			if got := Classify(tt.unit); got != tt.want {
				t.Errorf("Classify(%#x) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestExtendedLetters(t *testing.T) {
	for _, r := range "ÇçĞğİıÖöŞşÜü" {
		if !IsExtendedLetter(uint16(r)) {
			t.Errorf("%q is not an extended letter", r)
		}
	}
	if IsExtendedLetter('a') {
		t.Error("ASCII letter reported as extended")
	}
}

func TestCharClassString(t *testing.T) {
	if got := ClassCommentMarker.String(); got != "CommentMarker" {
		t.Errorf("String() = %q", got)
	}
	if got := CharClass(42).String(); got != "Unknown" {
		t.Errorf("String() = %q", got)
	}
}
