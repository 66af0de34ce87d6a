// File: pkg/scan/patterns.go
package scan

import "path/filepath"

// matchesAny reports whether the relative path or the base name matches at
// least one of the given glob patterns, and returns the first pattern that
// matched. Patterns use filepath.Match syntax (`*`, `?`, `[...]`); `*` does
// not cross path separators, so the base name is matched separately to cover
// name-only patterns such as `*.log` at any depth. Malformed patterns never
// match.
func matchesAny(patterns []string, relPath, name string) (string, bool) {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, relPath); err == nil && ok {
			return pattern, true
		}
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}

// validPattern reports whether filepath.Match accepts the pattern, so broken
// globs get a warning at startup instead of silently never matching.
func validPattern(pattern string) bool {
	_, err := filepath.Match(pattern, "probe")
	return err == nil
}
