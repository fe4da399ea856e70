package app

import "fields/internal/domain"

// App exposes the wired services to CLI commands.
type App struct {
	Reader  domain.DocumentReader
	Permits domain.Summarizer
	Catalog domain.FieldStore
}

func New(reader domain.DocumentReader, permits domain.Summarizer, catalog domain.FieldStore) *App {
	return &App{
		Reader:  reader,
		Permits: permits,
		Catalog: catalog,
	}
}
