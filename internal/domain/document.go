package domain

import "time"

// DocumentKind distinguishes how a document's text was obtained.
type DocumentKind string

const (
	KindText DocumentKind = "text"
	KindPDF  DocumentKind = "pdf"
)

// FileInfo describes a document on disk.
type FileInfo struct {
	Path     string       `json:"path"`
	Size     int64        `json:"size"`
	Modified time.Time    `json:"modified"`
	Kind     DocumentKind `json:"kind"`
	// Pages is the page count for PDFs and 1 for plain text.
	Pages int `json:"pages"`
}

// IsPDF reports whether the document was read as a PDF.
func (fi FileInfo) IsPDF() bool { return fi.Kind == KindPDF }
