package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func drain(u *Units) []uint16 {
	var out []uint16
	for {
		c, ok := u.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    []uint16
		wantErr error
	}{
		{"empty after bom", []byte{0xFF, 0xFE}, nil, nil},
		{"ascii", []byte{0xFF, 0xFE, 'a', 0, '.', 0}, []uint16{'a', '.'}, nil},
		{"turkish letter", []byte{0xFF, 0xFE, 0x5F, 0x01}, []uint16{0x015F}, nil},
		{"missing bom", []byte{'a', 0}, nil, ErrNotUTF16LE},
		{"big endian bom", []byte{0xFE, 0xFF, 0, 'a'}, nil, ErrNotUTF16LE},
		{"empty", nil, nil, ErrNotUTF16LE},
		{"odd length", []byte{0xFF, 0xFE, 'a'}, nil, ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Decode(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			got := drain(u)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d units, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unit %d = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	text := "tam sayı <<< 5."
	u, err := Decode(Encode(text))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, want := drain(u), drain(FromString(text))
	if len(got) != len(want) {
		t.Fatalf("got %d units, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("unit %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.tr")
	if err := os.WriteFile(good, Encode("x <<< 1."), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.tr")
	if err := os.WriteFile(bad, []byte("x <<< 1."), 0o644); err != nil {
		t.Fatal(err)
	}

	u, err := Open(good)
	if err != nil {
		t.Fatalf("Open(good) error = %v", err)
	}
	if u.Name() != good {
		t.Errorf("Name() = %q, want %q", u.Name(), good)
	}
	if u.Len() != 8 {
		t.Errorf("Len() = %d, want 8", u.Len())
	}

	if _, err := Open(bad); !errors.Is(err, ErrNotUTF16LE) {
		t.Errorf("Open(bad) error = %v, want ErrNotUTF16LE", err)
	}
	if _, err := Open(filepath.Join(dir, "missing.tr")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestClose(t *testing.T) {
	u := FromString("abc")
	if c, ok := u.Next(); !ok || c != 'a' {
		t.Fatalf("Next() = %q, %v", c, ok)
	}
	if err := u.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, ok := u.Next(); ok {
		t.Error("Next() after Close reported a unit")
	}
}
