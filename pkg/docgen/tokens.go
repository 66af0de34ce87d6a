// File: pkg/docgen/tokens.go
package docgen

import (
	"github.com/tiktoken-go/tokenizer"
	"go.uber.org/zap"
)

// estimateTokens makes an offline token estimate for dry runs without an API
// key. The o200k_base vocabulary is not Gemini's, so the number is a rough
// gauge; on tokenizer failure a length/4 heuristic stands in.
func estimateTokens(text string, logger *zap.Logger) int {
	enc, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		logger.Warn("Failed to load tokenizer, using length heuristic", zap.Error(err))
		return len(text) / 4
	}
	count, err := enc.Count(text)
	if err != nil {
		logger.Warn("Failed to count tokens, using length heuristic", zap.Error(err))
		return len(text) / 4
	}
	return count
}
