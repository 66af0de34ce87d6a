package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docgenie/pkg/docgen"
)

var rootLogger = zap.NewNop()

var (
	codeDir           string
	outputPath        string
	apiKey            string
	dryRun            bool
	verbose           bool
	excludePatterns   []string
	includePatterns   []string
	promptPath        string
	responsePrefix    string
	systemInstruction string
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "docgenie",
	Short: "docgenie generates technical documentation from a code repository",
	Long: `docgenie scans a local code repository, concatenates the relevant source
files into a single prompt, and asks Gemini to write technical documentation
for the project, saving the result to a file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return docgen.Run(docgen.Arguments{
			CodeDir:           codeDir,
			OutputPath:        outputPath,
			APIKey:            apiKey,
			DryRun:            dryRun,
			Verbose:           verbose,
			Excludes:          excludePatterns,
			Includes:          includePatterns,
			PromptPath:        promptPath,
			ResponsePrefix:    responsePrefix,
			SystemInstruction: systemInstruction,
		}, rootLogger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(logger *zap.Logger) error {
	if logger != nil {
		rootLogger = logger
	}

	// An optional .env file supplies GEMINI_API_KEY; existing environment
	// variables are never overridden.
	if err := godotenv.Load(); err == nil {
		rootLogger.Debug("Loaded environment from .env file")
	}

	return RootCmd.Execute()
}

func init() {
	flags := RootCmd.Flags()
	flags.StringVar(&codeDir, "code", "", "Path to the code repository to document")
	flags.StringVar(&outputPath, "doc", "", "Path of the documentation file to write")
	flags.StringVar(&apiKey, "api-key", "", "Gemini API key (falls back to GEMINI_API_KEY)")
	flags.BoolVar(&dryRun, "dry-run", false, "Scan and report without calling the generation service")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print per-file listings and size distributions")
	flags.StringArrayVar(&excludePatterns, "exclude", nil, "Glob pattern of files to exclude (repeatable)")
	flags.StringArrayVar(&includePatterns, "include", nil, "Glob pattern of files to include; activates whitelist mode (repeatable)")
	flags.StringVar(&promptPath, "prompt", "prompts/readme.txt", "Path to the prompt template")
	flags.StringVar(&responsePrefix, "response-prefix", "", "Ask the model to begin its response with this exact text")
	flags.StringVar(&systemInstruction, "system-instruction", "", "System instruction passed to the model")

	_ = RootCmd.MarkFlagRequired("code")
	_ = RootCmd.MarkFlagRequired("doc")
}
