// Package store provides file-based persistence for the field catalog.
//
// Records are serialised as JSON under the user's configured home directory.
// All methods are concurrency-safe via internal locking, and writes go
// through a temp file and rename so a crash never leaves a torn catalog.
package store
