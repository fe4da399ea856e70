package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home         string   // catalog/config directory, e.g. $HOME/.fields
	Base         string   // base directory for relative document paths
	ScanPatterns []string // globs used to discover permit files
}
