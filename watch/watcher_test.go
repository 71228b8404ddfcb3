package watch

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

type recorder struct {
	paths []string
}

func (r *recorder) handle(path string) {
	r.paths = append(r.paths, path)
}

func (r *recorder) take() []string {
	out := r.paths
	r.paths = nil
	sort.Strings(out)
	return out
}

func write(t *testing.T, path, content string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	a := filepath.Join(dir, "a.tr")
	b := filepath.Join(dir, "b.tr")
	write(t, a, "x <<< 1.", base)
	write(t, b, "y <<< 2.", base)
	write(t, filepath.Join(dir, "notes.txt"), "ignored", base)
	if err := os.Mkdir(filepath.Join(dir, ".hidden"), 0o755); err != nil {
		t.Fatal(err)
	}
	write(t, filepath.Join(dir, ".hidden", "c.tr"), "z.", base)

	rec := &recorder{}
	w := New([]string{dir}, rec.handle)

	w.Scan()
	if got := rec.take(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("first scan = %v, want [%s %s]", got, a, b)
	}

	w.Scan()
	if got := rec.take(); len(got) != 0 {
		t.Fatalf("unchanged scan = %v, want none", got)
	}

	write(t, b, "y <<< 3.", base.Add(time.Minute))
	w.Scan()
	if got := rec.take(); len(got) != 1 || got[0] != b {
		t.Fatalf("after modification = %v, want [%s]", got, b)
	}

	if err := os.Remove(a); err != nil {
		t.Fatal(err)
	}
	w.Scan()
	if _, known := w.modTimes[a]; known {
		t.Error("removed file still tracked")
	}
}

func TestScanSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.txt")
	write(t, path, "x.", time.Now())

	rec := &recorder{}
	w := New([]string{path, filepath.Join(dir, "missing.tr")}, rec.handle)
	w.Scan()
	if got := rec.take(); len(got) != 1 || got[0] != path {
		t.Errorf("scan = %v, want [%s]", got, path)
	}
}

func TestStartStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.tr")
	write(t, path, "x.", time.Now())

	seen := make(chan string, 4)
	w := New([]string{path}, func(p string) { seen <- p })
	w.SetInterval(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	select {
	case got := <-seen:
		if got != path {
			t.Errorf("handler got %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}
	w.Stop()
}
