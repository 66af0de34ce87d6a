// File: pkg/scan/config.go
package scan

// MaxFileBytes is the default per-file content ceiling. Files whose decoded
// content exceeds it are ignored rather than truncated.
const MaxFileBytes = 1 << 20

// FileRecord describes one file selected for documentation input.
type FileRecord struct {
	Path    string // slash-separated path relative to the scan root
	Content string // decoded text content
	Size    int    // content length in bytes after decoding
	Lines   int    // number of lines containing non-whitespace characters
}

// IgnoredRecord describes one file that was seen but rejected, and why.
// Size is best-effort: directory metadata when available, otherwise zero.
type IgnoredRecord struct {
	Path   string
	Size   int64
	Reason string
}

// Result holds the outcome of a repository walk. Included preserves traversal
// order; Ignored is populated only when tracking was requested.
type Result struct {
	Included []FileRecord
	Ignored  []IgnoredRecord
}

// FilterConfig carries every rule the classifier consults. Callers obtain a
// fresh copy from DefaultFilterConfig and attach their own pattern lists; the
// classifier never mutates it.
type FilterConfig struct {
	SkipDirs     map[string]bool // directory names pruned before descent
	SkipFiles    map[string]bool // lock and dependency manifests, always ignored
	AllowedExts  map[string]bool // lower-cased extensions accepted in blacklist mode
	Excludes     []string        // glob patterns that reject matching files
	Includes     []string        // glob patterns; non-empty activates whitelist mode
	MaxFileBytes int
}

// WhitelistActive reports whether include patterns were supplied, switching
// the classifier from extension filtering to include-pattern filtering.
func (c FilterConfig) WhitelistActive() bool {
	return len(c.Includes) > 0
}

// DefaultFilterConfig returns the stock filtering rules: version-control and
// build artifact directories pruned, lock files dropped, and the set of
// text-like extensions worth feeding to a documentation model.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SkipDirs: map[string]bool{
			".git":          true,
			".svn":          true,
			".hg":           true,
			"__pycache__":   true,
			"node_modules":  true,
			".venv":         true,
			"venv":          true,
			"env":           true,
			"build":         true,
			"dist":          true,
			".DS_Store":     true,
			"migrations":    true,
			"migration":     true,
			"db_migrations": true,
		},
		SkipFiles: map[string]bool{
			"yarn.lock":         true,
			"package-lock.json": true,
			"poetry.lock":       true,
			"Pipfile.lock":      true,
			"composer.lock":     true,
			"Gemfile.lock":      true,
			"go.sum":            true,
			"cargo.lock":        true,
		},
		AllowedExts: map[string]bool{
			".ts":      true,
			".tsx":     true,
			".js":      true,
			".jsx":     true,
			".mjs":     true,
			".cjs":     true,
			".cs":      true,
			".fs":      true,
			".vb":      true,
			".csproj":  true,
			".fsproj":  true,
			".vbproj":  true,
			".sln":     true,
			".java":    true,
			".kt":      true,
			".kts":     true,
			".json":    true,
			".yaml":    true,
			".yml":     true,
			".toml":    true,
			".xml":     true,
			".config":  true,
			".md":      true,
			".txt":     true,
			".rst":     true,
			".adoc":    true,
			".html":    true,
			".css":     true,
			".scss":    true,
			".sass":    true,
			".less":    true,
			".sql":     true,
			".graphql": true,
			".gql":     true,
			"":         true, // Makefile, Dockerfile and friends
		},
		MaxFileBytes: MaxFileBytes,
	}
}
