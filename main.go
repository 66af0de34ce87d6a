package main

import (
	"log"
	"os"
	"strings"

	"docgenie/cmd"
	"docgenie/pkg/logging"
	"docgenie/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	debug := os.Getenv("DOCGENIE_DEBUG") != ""
	if err := logging.Setup(debug, "docgenie", version.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	// Execute the root command
	if err := cmd.Execute(logger); err != nil {
		logger.Fatal("docgenie execution failed", zap.Error(err))
	}

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
