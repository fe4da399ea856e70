package reader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fields/internal/domain"
	"fields/internal/reader"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRead_Text(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "permit.txt", []byte("line one\nline two\n"))

	r := reader.New(dir)
	got, err := r.Read("permit.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "line one\nline two\n" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestRead_Missing(t *testing.T) {
	r := reader.New(t.TempDir())
	_, err := r.Read("missing.txt")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, reader.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReadLines_Text(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "permit.txt", []byte("a\nb\nc\n"))

	lines, err := reader.New(dir).ReadLines("permit.txt")
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 3 || lines[2] != "c" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestRead_BrokenPDFByMagic(t *testing.T) {
	dir := t.TempDir()
	// No .pdf extension; detection must fall back to the magic bytes.
	writeFile(t, dir, "permit.bin", []byte("%PDF-1.7 not actually a pdf"))

	if _, err := reader.New(dir).Read("permit.bin"); err == nil {
		t.Fatal("expected error for unparseable pdf")
	}
}

func TestStat_Text(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "permit.txt", []byte("hello"))

	info, err := reader.New(dir).Stat("permit.txt")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Kind != domain.KindText || info.Pages != 1 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.Size != 5 {
		t.Fatalf("want size 5, got %d", info.Size)
	}
	if info.IsPDF() {
		t.Fatal("text file reported as pdf")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "permit.txt", []byte("x"))

	r := reader.New(dir)
	if !r.Exists("permit.txt") {
		t.Fatal("Exists(permit.txt) = false")
	}
	if r.Exists("other.txt") {
		t.Fatal("Exists(other.txt) = true")
	}
	if r.Exists(".") {
		t.Fatal("directories are not files")
	}
}

func TestFind_DedupAcrossPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "permit.txt", []byte("x"))
	writeFile(t, dir, "other.pdf", []byte("x"))
	writeFile(t, dir, "notes.md", []byte("x"))

	got, err := reader.New(dir).Find(".", []string{"*.txt", "*.pdf", "*permit*"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 matches, got %v", got)
	}
}

func TestFind_NotADirectory(t *testing.T) {
	if _, err := reader.New(t.TempDir()).Find("missing", []string{"*"}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
