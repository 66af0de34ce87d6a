// File: pkg/scan/classify.go
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// FileInput is one candidate file presented to the classifier. Read is
// invoked only after every pattern rule has passed, so rejected files are
// never opened.
type FileInput struct {
	RelPath string // slash-separated path relative to the scan root
	Name    string // base name
	Size    int64  // best-effort size from directory metadata, 0 if unknown
	Read    func() ([]byte, error)
}

// classifyRule inspects a candidate and returns a rejection reason, or the
// empty string to pass the candidate on to the next rule.
type classifyRule struct {
	name  string
	check func(in FileInput) string
}

// Classifier applies an ordered, first-match-wins rule chain to candidate
// files. The order is part of the contract: lock files outrank include
// patterns, an include match replaces the extension check, and the
// hidden-file and exclude checks apply in both modes.
type Classifier struct {
	cfg    FilterConfig
	rules  []classifyRule
	logger *zap.Logger
}

// NewClassifier builds a classifier for one scan. Malformed glob patterns
// are reported once here; at match time they simply never match.
func NewClassifier(cfg FilterConfig, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{cfg: cfg, logger: logger}
	c.rules = []classifyRule{
		{name: "lock-file", check: c.checkLockFile},
		{name: "include-pattern", check: c.checkIncludes},
		{name: "extension", check: c.checkExtension},
		{name: "hidden-file", check: c.checkHidden},
		{name: "exclude-pattern", check: c.checkExcludes},
	}
	for _, pattern := range cfg.Includes {
		if !validPattern(pattern) {
			logger.Warn("Malformed include pattern will never match", zap.String("pattern", pattern))
		}
	}
	for _, pattern := range cfg.Excludes {
		if !validPattern(pattern) {
			logger.Warn("Malformed exclude pattern will never match", zap.String("pattern", pattern))
		}
	}
	return c
}

// Classify runs the rule chain and then the content checks for one file.
// Exactly one of the two returned records is non-nil.
func (c *Classifier) Classify(in FileInput) (*FileRecord, *IgnoredRecord) {
	for _, rule := range c.rules {
		if reason := rule.check(in); reason != "" {
			c.logger.Debug("File ignored",
				zap.String("path", in.RelPath),
				zap.String("rule", rule.name),
				zap.String("reason", reason))
			return nil, &IgnoredRecord{Path: in.RelPath, Size: in.Size, Reason: reason}
		}
	}

	raw, err := in.Read()
	if err != nil {
		c.logger.Warn("Failed to read file", zap.String("path", in.RelPath), zap.Error(err))
		return nil, &IgnoredRecord{Path: in.RelPath, Size: in.Size, Reason: readErrorReason(err)}
	}

	content := decodeText(raw)
	if len(content) > c.cfg.MaxFileBytes {
		c.logger.Debug("File ignored",
			zap.String("path", in.RelPath),
			zap.String("rule", "size-limit"),
			zap.Int("bytes", len(content)))
		return nil, &IgnoredRecord{Path: in.RelPath, Size: int64(len(content)), Reason: reasonTooLarge}
	}

	return &FileRecord{
		Path:    in.RelPath,
		Content: content,
		Size:    len(content),
		Lines:   countNonBlankLines(content),
	}, nil
}

const (
	reasonLockFile       = "lock file"
	reasonHidden         = "hidden file"
	reasonTooLarge       = "too large"
	reasonNotWhitelisted = "not matching any include pattern (whitelist mode)"
)

func (c *Classifier) checkLockFile(in FileInput) string {
	if c.cfg.SkipFiles[in.Name] {
		return reasonLockFile
	}
	return ""
}

func (c *Classifier) checkIncludes(in FileInput) string {
	if !c.cfg.WhitelistActive() {
		return ""
	}
	if _, ok := matchesAny(c.cfg.Includes, in.RelPath, in.Name); !ok {
		return reasonNotWhitelisted
	}
	return ""
}

func (c *Classifier) checkExtension(in FileInput) string {
	if c.cfg.WhitelistActive() {
		// The include match already vouched for this file.
		return ""
	}
	if ext := fileExt(in.Name); !c.cfg.AllowedExts[ext] {
		return fmt.Sprintf("unsupported extension %q", ext)
	}
	return ""
}

func (c *Classifier) checkHidden(in FileInput) string {
	if strings.HasPrefix(in.Name, ".") {
		return reasonHidden
	}
	return ""
}

func (c *Classifier) checkExcludes(in FileInput) string {
	if pattern, ok := matchesAny(c.cfg.Excludes, in.RelPath, in.Name); ok {
		return fmt.Sprintf("matches exclude pattern %q", pattern)
	}
	return ""
}

// fileExt returns the lower-cased extension. A bare dotfile such as ".env"
// has no extension: the dot belongs to the name.
func fileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(ext)
}

// decodeText converts raw bytes to text, replacing invalid UTF-8 sequences
// with U+FFFD. Decoding never fails.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

func countNonBlankLines(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// readErrorReason strips the repeated path from OS errors so records carry
// only the cause, e.g. "read error: permission denied".
func readErrorReason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Sprintf("read error: %v", pathErr.Err)
	}
	return fmt.Sprintf("read error: %v", err)
}
