package permit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fields/internal/config"
	"fields/internal/domain"
	"fields/internal/permit"
	"fields/internal/reader"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newService(base string) *permit.Service {
	return permit.New(reader.New(base), config.DefaultScanPatterns)
}

func TestSummarizeFile_OK(t *testing.T) {
	dir := t.TempDir()
	content := "Shoreline North Field (Athletic Field Use)\n" +
		"Sat, Dec 6, 2025 8:00 AM Sat, Dec 6, 2025 1:00 PM\n"
	path := writeFile(t, dir, "permit.txt", content)

	sum, err := newService(dir).SummarizeFile(path, 500)
	if err != nil {
		t.Fatalf("SummarizeFile: %v", err)
	}
	if sum.Kind != domain.KindText {
		t.Fatalf("want text kind, got %q", sum.Kind)
	}
	if sum.Pages != 1 {
		t.Fatalf("want 1 page, got %d", sum.Pages)
	}
	if len(sum.FieldNames) != 1 || len(sum.TimeSlots) != 1 {
		t.Fatalf("extraction missing: %+v", sum)
	}
	if sum.Characters != len(content) {
		t.Fatalf("want %d characters, got %d", len(content), sum.Characters)
	}
	if sum.Words != 18 {
		t.Fatalf("want 18 words, got %d", sum.Words)
	}
	if sum.Excerpt != content {
		t.Fatalf("short document must not be truncated")
	}
}

func TestSummarizeFile_TruncatesExcerpt(t *testing.T) {
	dir := t.TempDir()
	content := strings.Repeat("x", 600)
	path := writeFile(t, dir, "long.txt", content)

	sum, err := newService(dir).SummarizeFile(path, 500)
	if err != nil {
		t.Fatalf("SummarizeFile: %v", err)
	}
	if want := content[:500] + "..."; sum.Excerpt != want {
		t.Fatalf("want 500-char excerpt with ellipsis, got %d chars", len(sum.Excerpt))
	}
}

func TestSummarize_CountsRunesNotBytes(t *testing.T) {
	sum := newService(t.TempDir()).SummarizeText("caffè", "Menu", 500)
	if sum.Characters != 5 {
		t.Fatalf("want 5 characters, got %d", sum.Characters)
	}
}

func TestSummarize_TruncatesByRunes(t *testing.T) {
	content := strings.Repeat("é", 600)
	sum := newService(t.TempDir()).SummarizeText(content, "Accents", 500)
	if want := strings.Repeat("é", 500) + "..."; sum.Excerpt != want {
		t.Fatalf("excerpt cut mid-rune or at the wrong length: %d bytes", len(sum.Excerpt))
	}
	if sum.Characters != 600 {
		t.Fatalf("want 600 characters, got %d", sum.Characters)
	}
}

func TestSummarizeFile_Missing(t *testing.T) {
	if _, err := newService(t.TempDir()).SummarizeFile("nope.txt", 500); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSummarizeText(t *testing.T) {
	svc := newService(t.TempDir())
	sum := svc.SummarizeText("Crittenden South Field (Athletic Field Use)\n", "Winter Permits", 500)
	if sum.Title != "Winter Permits" {
		t.Fatalf("want title kept, got %q", sum.Title)
	}
	if len(sum.FieldNames) != 1 {
		t.Fatalf("extraction missing: %+v", sum)
	}
}

func TestBatch_KeepsGoingPastFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "Shoreline North Field (Athletic Field Use)\n")

	results := newService(dir).Batch([]string{good, filepath.Join(dir, "missing.txt")}, 500)
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("good file failed: %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatal("missing file must report an error")
	}
}

func TestDiscover_DeduplicatesMatches(t *testing.T) {
	dir := t.TempDir()
	// Matches both *.txt and *permit*.
	writeFile(t, dir, "permit.txt", "x")
	writeFile(t, dir, "notes.md", "x")

	paths, err := newService(dir).Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("want 1 unique match, got %v", paths)
	}
	if filepath.Base(paths[0]) != "permit.txt" {
		t.Fatalf("unexpected match: %v", paths)
	}
}
