package permit

import (
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"fields/internal/domain"
	"fields/internal/log"
)

// excerptLen bounds the leading excerpt kept on every summary.
const excerptLen = 500

// Service summarizes permit documents using a backing document reader.
type Service struct {
	reader   domain.DocumentReader
	patterns []string
	logger   zerolog.Logger
}

// New returns a summarizer reading documents through r. patterns are the
// globs Discover uses to spot candidate permit files.
func New(r domain.DocumentReader, patterns []string) *Service {
	return &Service{
		reader:   r,
		patterns: patterns,
		logger:   log.WithComponent("permit"),
	}
}

// SummarizeFile reads and summarizes a single document.
func (s *Service) SummarizeFile(path string, maxItems int) (domain.Summary, error) {
	s.logger.Debug().Str("path", path).Msg("summarizing document")

	content, err := s.reader.Read(path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summarize %s: %w", path, err)
	}
	info, err := s.reader.Stat(path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summarize %s: %w", path, err)
	}

	sum := s.summarize(content, maxItems)
	sum.Path = info.Path
	sum.Kind = info.Kind
	sum.Pages = info.Pages

	s.logger.Info().
		Str("path", info.Path).
		Int("time_slots", len(sum.TimeSlots)).
		Int("field_names", len(sum.FieldNames)).
		Msg("document summarized")
	return sum, nil
}

// SummarizeText summarizes raw permit text under a display title.
func (s *Service) SummarizeText(text, title string, maxItems int) domain.Summary {
	sum := s.summarize(text, maxItems)
	sum.Title = title
	sum.Kind = domain.KindText
	sum.Pages = 1
	return sum
}

func (s *Service) summarize(content string, maxItems int) domain.Summary {
	ex := extract(content, maxItems)

	excerpt := content
	if utf8.RuneCountInString(content) > excerptLen {
		runes := []rune(content)
		excerpt = string(runes[:excerptLen]) + "..."
	}

	return domain.Summary{
		Excerpt:    excerpt,
		TimeSlots:  ex.timeSlots,
		FieldNames: ex.fieldNames,
		FieldSlots: ex.fieldSlots,
		Words:      countWords(content),
		Characters: utf8.RuneCountInString(content),
	}
}

// Batch summarizes every path, reporting per-file errors without aborting.
func (s *Service) Batch(paths []string, maxItems int) []domain.BatchResult {
	s.logger.Debug().Int("files", len(paths)).Msg("batch summarize")

	results := make([]domain.BatchResult, 0, len(paths))
	ok := 0
	for _, p := range paths {
		sum, err := s.SummarizeFile(p, maxItems)
		if err == nil {
			ok++
		}
		results = append(results, domain.BatchResult{Path: p, Summary: sum, Err: err})
	}
	s.logger.Info().Int("ok", ok).Int("total", len(paths)).Msg("batch complete")
	return results
}

// Discover finds candidate permit files in dir.
func (s *Service) Discover(dir string) ([]string, error) {
	return s.reader.Find(dir, s.patterns)
}

// Matches reports whether name looks like a candidate permit file.
func (s *Service) Matches(name string) bool {
	return MatchesAny(name, s.patterns)
}

func countWords(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}

// Compile-time assertion that Service implements domain.Summarizer.
var _ domain.Summarizer = (*Service)(nil)
