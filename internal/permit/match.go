package permit

import (
	"path/filepath"
	"strings"
)

// MatchesAny reports whether the base name matches any glob pattern.
// Patterns are matched case-insensitively since permit uploads arrive with
// arbitrary casing.
func MatchesAny(name string, patterns []string) bool {
	base := strings.ToLower(filepath.Base(name))
	for _, pattern := range patterns {
		if ok, err := filepath.Match(strings.ToLower(pattern), base); err == nil && ok {
			return true
		}
	}
	return false
}
