// File: pkg/scan/walk.go
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Walk traverses root top-down and classifies every file that survives
// directory pruning. Directories whose name appears in cfg.SkipDirs are
// pruned before descent, so nothing below them is ever visited or
// classified. The root itself is never pruned, even when its own name is in
// the set. Ignored records are collected only when trackIgnored is true;
// classification itself does not depend on the flag.
func Walk(root string, cfg FilterConfig, trackIgnored bool, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	classifier := NewClassifier(cfg, logger)
	var res Result

	logger.Debug("Starting repository scan", zap.String("root", root))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				// The root itself could not be read.
				return err
			}
			// A failed subtree contributes nothing; the scan goes on.
			logger.Warn("Error accessing path during scan",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			if cfg.SkipDirs[d.Name()] {
				logger.Debug("Pruning directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		var size int64
		if info, infoErr := d.Info(); infoErr == nil {
			size = info.Size()
		}

		record, ignored := classifier.Classify(FileInput{
			RelPath: relPath,
			Name:    d.Name(),
			Size:    size,
			Read:    func() ([]byte, error) { return os.ReadFile(path) },
		})
		if record != nil {
			res.Included = append(res.Included, *record)
		} else if trackIgnored {
			res.Ignored = append(res.Ignored, *ignored)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	logger.Debug("Completed repository scan",
		zap.String("root", root),
		zap.Int("includedFiles", len(res.Included)),
		zap.Int("ignoredFiles", len(res.Ignored)))

	return res, nil
}
