package models

import (
	"context"

	"github.com/victorrathore/flowgen/utils/config"
)

// ModelConfig represents configuration options for model calls
type ModelConfig struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

// Provider represents a model provider (e.g., OpenAI)
type Provider interface {
	Name() string
	SupportsModel(modelName string) bool
	SendPrompt(ctx context.Context, modelName string, prompt string) (string, error)
	Configure(apiKey string) error
	SetVerbose(verbose bool)
}

// DetectProviderFunc is the type for the provider detection function
type DetectProviderFunc func(modelName string) Provider

// DetectProvider determines the appropriate provider based on the model name.
// It is a variable so tests can inject a stub provider.
var DetectProvider DetectProviderFunc = defaultDetectProvider

func defaultDetectProvider(modelName string) Provider {
	config.DebugLog("[Provider] Attempting to detect provider for model: %s", modelName)

	provider := NewOpenAIProvider()
	if provider.SupportsModel(modelName) {
		config.DebugLog("[Provider] Found provider %s for model %s", provider.Name(), modelName)
		return provider
	}

	config.DebugLog("[Provider] No provider found for model %s", modelName)
	return nil
}
