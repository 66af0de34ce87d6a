// File: pkg/docgen/generate.go
package docgen

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"docgenie/pkg/gemini"
)

const (
	// geminiModel is the generation model used for every call.
	geminiModel = "gemini-2.5-pro"
	// maxOutputTokens caps the length of the generated document.
	maxOutputTokens = 16384
)

// attributionFooter is appended to every generated document.
const attributionFooter = "\n\n### Generated with GenAI\nThis document was generated with [docgenie](https://github.com/spencermiles/docgenie) using Gemini 2.5. Some inaccuracies may be present as a result.\n"

// countPromptTokens asks the service how many tokens the prompt occupies.
// The call is independent of generation and has no side effects.
func countPromptTokens(ctx context.Context, client *gemini.Client, promptText string) (int, error) {
	resp, err := client.CountTokens(ctx, gemini.CountTokensRequest{
		Model:    geminiModel,
		Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: promptText}}}},
	})
	if err != nil {
		return 0, err
	}
	return resp.TotalTokens, nil
}

// generateDocumentation performs the single generation call: temperature 0,
// fixed output cap, optional system instruction and response prefix. An
// empty response counts as a service error.
func generateDocumentation(ctx context.Context, client *gemini.Client, promptText string, args Arguments, logger *zap.Logger) (string, error) {
	if args.ResponsePrefix != "" {
		// Best effort: the model is asked, not forced.
		promptText += fmt.Sprintf("\n\nBegin your response with exactly the following text: %s", args.ResponsePrefix)
	}

	req := gemini.GenerateContentRequest{
		Model:    geminiModel,
		Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: promptText}}}},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.0,
			MaxOutputTokens: maxOutputTokens,
		},
	}
	if args.SystemInstruction != "" {
		req.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: args.SystemInstruction}}}
	}

	resp, err := client.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generation returned no text")
	}

	if resp.UsageMetadata != nil {
		logger.Debug("Generation usage",
			zap.Int("promptTokens", resp.UsageMetadata.PromptTokenCount),
			zap.Int("candidateTokens", resp.UsageMetadata.CandidatesTokenCount),
			zap.Int("totalTokens", resp.UsageMetadata.TotalTokenCount))
	}

	return text, nil
}
