// Package ignore loads extra exclude patterns from a project-local ignore
// file. Patterns are plain shell globs, one per line, and are appended to the
// exclude patterns supplied on the command line.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileName is the ignore file looked up in the scanned directory.
const FileName = ".docgenieignore"

// Load reads the ignore file in dir, if present, and returns its glob
// patterns. A missing file is not an error; an unreadable file is logged and
// treated as empty so a broken ignore file never aborts a scan.
func Load(dir string, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}

	fpath := filepath.Join(dir, FileName)
	content, err := os.ReadFile(fpath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No ignore file present", zap.String("filePath", fpath))
		} else {
			logger.Warn("Failed to read ignore file", zap.String("filePath", fpath), zap.Error(err))
		}
		return nil
	}

	patterns := ParseLines(strings.Split(string(content), "\n"), logger)
	logger.Info("Loaded ignore patterns",
		zap.String("filePath", fpath),
		zap.Int("patternCount", len(patterns)))
	return patterns
}

// ParseLines filters raw ignore file lines down to usable glob patterns.
// Blank lines and comments are dropped; a malformed glob is logged and
// skipped rather than failing the run.
func ParseLines(lines []string, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}

	var patterns []string
	for i, line := range lines {
		pattern := parsePatternLine(line)
		if pattern == "" {
			continue
		}
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			logger.Warn("Skipping malformed ignore pattern",
				zap.String("pattern", pattern),
				zap.Int("lineNo", i+1))
			continue
		}
		patterns = append(patterns, pattern)
	}
	return patterns
}

// parsePatternLine trims one line and strips comment syntax. It returns the
// empty string for lines that carry no pattern.
func parsePatternLine(line string) string {
	trimmed := strings.TrimSpace(line)

	// Ignore empty lines and comments.
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}

	// `\#` escapes a leading hash so literal names remain expressible.
	if strings.HasPrefix(trimmed, `\#`) {
		trimmed = trimmed[1:]
	}

	return trimmed
}
