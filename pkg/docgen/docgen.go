// File: pkg/docgen/docgen.go

// Package docgen drives a documentation run end to end: scan, report, prompt
// assembly, generation, and output writing.
package docgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"docgenie/pkg/gemini"
	"docgenie/pkg/ignore"
	"docgenie/pkg/prompt"
	"docgenie/pkg/scan"
)

// Arguments carries the parsed command-line configuration for one run.
type Arguments struct {
	CodeDir           string   // repository to scan
	OutputPath        string   // documentation file to write
	APIKey            string   // explicit API key; falls back to GEMINI_API_KEY
	DryRun            bool     // scan and report without generating
	Verbose           bool     // per-file listings and distributions
	Excludes          []string // glob patterns rejecting files
	Includes          []string // glob patterns activating whitelist mode
	PromptPath        string   // prompt template location
	ResponsePrefix    string   // exact text the response should start with
	SystemInstruction string   // system instruction for the model
	BaseURL           string   // overrides the generation endpoint (used in tests)
}

// Run executes one documentation run. Fatal conditions are printed for the
// user and returned as errors; the caller decides the process exit.
func Run(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(args.CodeDir)
	if err != nil || !info.IsDir() {
		fmt.Printf("Error: Input directory '%s' does not exist or is not a directory\n", args.CodeDir)
		return fmt.Errorf("invalid input directory %q", args.CodeDir)
	}

	apiKey := args.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" && !args.DryRun {
		fmt.Println("Error: Gemini API key is required. Set GEMINI_API_KEY in .env file, environment variable, or use --api-key")
		return errors.New("missing Gemini API key")
	}

	excludes := append([]string{}, args.Excludes...)
	excludes = append(excludes, ignore.Load(args.CodeDir, logger)...)

	cfg := scan.DefaultFilterConfig()
	cfg.Excludes = excludes
	cfg.Includes = args.Includes

	logger.Info("Starting documentation run",
		zap.String("codeDir", args.CodeDir),
		zap.String("outputPath", args.OutputPath),
		zap.Bool("dryRun", args.DryRun))

	fmt.Printf("Scanning directory: %s\n", args.CodeDir)

	result, err := scan.Walk(args.CodeDir, cfg, args.Verbose, logger)
	if err != nil {
		fmt.Printf("Error scanning directory: %v\n", err)
		return err
	}

	if len(result.Included) == 0 {
		fmt.Println("No suitable files found in the directory")
		return errors.New("no suitable files found")
	}

	reportSummary(os.Stdout, result.Included)

	if args.Verbose {
		reportFileAnalysis(os.Stdout, result.Included)
		reportIgnoredAnalysis(os.Stdout, result.Ignored)
		fmt.Printf("\nIncluded file tree:\n%s", renderFileTree(args.CodeDir, result.Included))
	}

	template, err := prompt.LoadTemplate(args.PromptPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Printf("Error: Prompt file '%s' not found\n", args.PromptPath)
		} else {
			fmt.Printf("Error reading prompt file '%s': %v\n", args.PromptPath, err)
		}
		return err
	}

	promptText := prompt.Render(template, args.CodeDir, result.Included)
	logger.Debug("Assembled prompt", zap.Int("promptBytes", len(promptText)))

	ctx := context.Background()

	var client *gemini.Client
	if apiKey != "" {
		client = gemini.NewClient(apiKey)
		if args.BaseURL != "" {
			client.BaseURL = args.BaseURL
		}
	}

	tokenCount := 0
	if client != nil {
		tokenCount, err = countPromptTokens(ctx, client, promptText)
		if err != nil {
			fmt.Printf("Error counting tokens: %v\n", err)
			return fmt.Errorf("failed to count tokens: %w", err)
		}
		printer.Fprintf(os.Stdout, "Input tokens: %d\n", tokenCount)
	}

	if args.DryRun {
		reportDryRun(os.Stdout, result.Included)
		if client != nil {
			printer.Fprintf(os.Stdout, "Input tokens: %d\n", tokenCount)
		} else {
			fmt.Println("Input tokens: Unable to count (no API key provided)")
			printer.Fprintf(os.Stdout, "Estimated input tokens (offline): %d\n", estimateTokens(promptText, logger))
		}
		logger.Info("Dry run complete", zap.Int("totalFiles", len(result.Included)))
		return nil
	}

	fmt.Println("Generating documentation with Gemini 2.5 Pro...")

	documentation, err := generateDocumentation(ctx, client, promptText, args, logger)
	if err != nil {
		fmt.Printf("Error generating documentation: %v\n", err)
		return fmt.Errorf("failed to generate documentation: %w", err)
	}

	if err := ensureDirectory(filepath.Dir(args.OutputPath), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeToFile(args.OutputPath, []byte(documentation+attributionFooter), 0o644, logger); err != nil {
		return fmt.Errorf("failed to write documentation: %w", err)
	}

	fmt.Printf("Documentation generated successfully: %s\n", args.OutputPath)
	logger.Info("Documentation run complete",
		zap.String("outputPath", args.OutputPath),
		zap.Int("totalFiles", len(result.Included)))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
