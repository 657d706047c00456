package llm

import (
	"fmt"
	"strings"

	"github.com/credlogic/metro2/internal/model"
)

// NewProvider creates an LLM provider based on configuration. An empty
// provider name means the summary feature is disabled.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:       modelConfig.Provider,
		Model:          modelConfig.Model,
		APIKey:         modelConfig.APIKey,
		BaseURL:        modelConfig.BaseURL,
		Timeout:        modelConfig.Timeout,
		StrictAccounts: modelConfig.StrictAccounts,
		MaxTokens:      modelConfig.MaxTokens,
	}
}
