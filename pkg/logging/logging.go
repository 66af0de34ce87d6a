// File: pkg/logging/logging.go
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is the shared application logger. It is populated by Setup and
// defaults to a no-op logger so package consumers never nil-check.
var Logger = zap.NewNop()

// Setup initializes the global logger. When debug is true a development
// configuration with human-readable output is used; otherwise the standard
// JSON production configuration applies. appName and appVersion are attached
// to every entry as initial fields.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	Logger = logger
	zap.ReplaceGlobals(logger)
	return nil
}
