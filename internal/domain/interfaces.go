package domain

// DocumentReader reads permit documents from disk, transparently extracting
// text from PDFs.
type DocumentReader interface {
	Read(path string) (string, error)
	// ReadLines returns the document line by line; for PDFs each page is
	// one entry.
	ReadLines(path string) ([]string, error)
	Stat(path string) (FileInfo, error)
	Exists(path string) bool
	Find(dir string, patterns []string) ([]string, error)
}

// Summarizer extracts permit structure from documents and raw text.
type Summarizer interface {
	SummarizeFile(path string, maxItems int) (Summary, error)
	SummarizeText(text, title string, maxItems int) Summary
	Batch(paths []string, maxItems int) []BatchResult
	Discover(dir string) ([]string, error)
}

// FieldStore persists the local field catalog.
type FieldStore interface {
	Put(rec Record) error
	Get(name string) (Record, bool, error)
	List() ([]Record, error)
	Delete(name string) error
}
