package app

import (
	"fields/internal/config"
	"fields/internal/permit"
	"fields/internal/reader"
	"fields/internal/store"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	if err := store.EnsureHome(cfg.Home); err != nil {
		return nil, err
	}

	patterns := cfg.ScanPatterns
	if len(patterns) == 0 {
		patterns = config.DefaultScanPatterns
	}

	rd := reader.New(cfg.Base)
	permits := permit.New(rd, patterns)
	catalog := store.NewFieldStore(cfg.Home)

	return New(rd, permits, catalog), nil
}
