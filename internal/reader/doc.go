// Package reader loads permit documents from disk.
//
// Plain text files are read as-is; PDFs are detected by extension or the
// %PDF- magic and have their text extracted page by page.
package reader
