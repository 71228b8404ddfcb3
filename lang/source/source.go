// Package source reads TR-701 program text as a stream of UTF-16 code units.
//
// Files on disk are little-endian UTF-16 and must start with a byte-order
// mark. The mark is validated and stripped here so that the lexer only ever
// sees program text.
package source

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"unicode/utf16"
)

// BOM is the byte-order mark every source file must start with.
const BOM = 0xFEFF

var (
	ErrNotUTF16LE = errors.New("not in UTF-16LE format")
	ErrTruncated  = errors.New("truncated code unit at end of input")
)

// Units is a pull source of code units. It is not safe for concurrent use.
type Units struct {
	name  string
	units []uint16
	pos   int
}

// Open reads the file at path and validates its byte-order mark.
func Open(path string) (*Units, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	u, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	u.name = path
	return u, nil
}

// Decode converts a BOM-prefixed little-endian UTF-16 buffer into code units.
func Decode(data []byte) (*Units, error) {
	if len(data) < 2 || binary.LittleEndian.Uint16(data) != BOM {
		return nil, ErrNotUTF16LE
	}
	data = data[2:]
	if len(data)%2 != 0 {
		return nil, ErrTruncated
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return &Units{units: units}, nil
}

// Encode produces the on-disk form of s: a BOM followed by s as UTF-16LE.
func Encode(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2+2*len(units))
	binary.LittleEndian.PutUint16(out, BOM)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2+2*i:], u)
	}
	return out
}

// FromString returns the code units of s. No byte-order mark is involved.
func FromString(s string) *Units {
	return &Units{units: utf16.Encode([]rune(s))}
}

// FromUnits wraps an existing code unit slice. The slice is not copied.
func FromUnits(units []uint16) *Units {
	return &Units{units: units}
}

func (u *Units) Name() string {
	return u.name
}

func (u *Units) Len() int {
	return len(u.units)
}

// Next returns the next code unit, or false once the input is exhausted.
func (u *Units) Next() (uint16, bool) {
	if u.pos >= len(u.units) {
		return 0, false
	}
	c := u.units[u.pos]
	u.pos++
	return c, true
}

// Close releases the buffer. Later calls to Next report end of input.
func (u *Units) Close() error {
	u.units = nil
	u.pos = 0
	return nil
}
