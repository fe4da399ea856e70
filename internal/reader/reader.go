package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"fields/internal/domain"
	"fields/internal/log"
)

// ErrNotFound is returned when a document does not exist on disk.
var ErrNotFound = errors.New("document not found")

var pdfMagic = []byte("%PDF-")

// Service reads permit documents, resolving relative paths against a base
// directory and extracting text from PDFs.
type Service struct {
	base   string
	logger zerolog.Logger
}

// New returns a reader rooted at base. An empty base means the current
// working directory.
func New(base string) *Service {
	if base == "" {
		base = "."
	}
	return &Service{base: base, logger: log.WithComponent("reader")}
}

func (s *Service) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.base, path)
}

// isPDF checks the extension first, then falls back to the %PDF- magic.
func (s *Service) isPDF(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	header := make([]byte, len(pdfMagic))
	if _, err := f.Read(header); err != nil {
		return false
	}
	return bytes.HasPrefix(header, pdfMagic)
}

// Read returns the document's full text. PDF pages are joined with blank
// lines; pages without text are skipped.
func (s *Service) Read(path string) (string, error) {
	resolved := s.resolve(path)
	s.logger.Debug().Str("path", resolved).Msg("reading document")

	if s.isPDF(resolved) {
		pages, err := s.readPDFPages(resolved)
		if err != nil {
			return "", err
		}
		kept := pages[:0]
		for _, p := range pages {
			if strings.TrimSpace(p) != "" {
				kept = append(kept, p)
			}
		}
		return strings.Join(kept, "\n\n"), nil
	}

	b, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, resolved)
		}
		return "", fmt.Errorf("read %s: %w", resolved, err)
	}
	return string(b), nil
}

// ReadLines returns the document line by line; for PDFs each page is one
// entry.
func (s *Service) ReadLines(path string) ([]string, error) {
	resolved := s.resolve(path)
	if s.isPDF(resolved) {
		return s.readPDFPages(resolved)
	}
	content, err := s.Read(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n"), nil
}

func (s *Service) readPDFPages(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// Stat returns metadata for the document, including the PDF page count.
func (s *Service) Stat(path string) (domain.FileInfo, error) {
	resolved := s.resolve(path)
	st, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.FileInfo{}, fmt.Errorf("%w: %s", ErrNotFound, resolved)
		}
		return domain.FileInfo{}, fmt.Errorf("stat %s: %w", resolved, err)
	}

	info := domain.FileInfo{
		Path:     resolved,
		Size:     st.Size(),
		Modified: st.ModTime(),
		Kind:     domain.KindText,
		Pages:    1,
	}
	if s.isPDF(resolved) {
		info.Kind = domain.KindPDF
		if pages, err := s.readPDFPages(resolved); err == nil {
			info.Pages = len(pages)
		} else {
			// Keep metadata usable even if the PDF body is broken.
			info.Pages = 0
		}
	}
	return info, nil
}

// Exists reports whether path resolves to a regular file.
func (s *Service) Exists(path string) bool {
	st, err := os.Stat(s.resolve(path))
	return err == nil && st.Mode().IsRegular()
}

// Find globs for files matching any of patterns directly under dir,
// deduplicated preserving pattern order.
func (s *Service) Find(dir string, patterns []string) ([]string, error) {
	resolved := s.resolve(dir)
	st, err := os.Stat(resolved)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", resolved)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(resolved, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if st, err := os.Stat(m); err != nil || !st.Mode().IsRegular() {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	s.logger.Debug().Str("dir", resolved).Int("matches", len(out)).Msg("glob scan")
	return out, nil
}

// Compile-time assertion that Service implements domain.DocumentReader.
var _ domain.DocumentReader = (*Service)(nil)
