// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (fields, summaries, file metadata) and contracts
// (interfaces) only.
package domain
