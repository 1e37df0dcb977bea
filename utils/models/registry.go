package models

import (
	"strings"
	"sync"
)

// ModelRegistry is a centralized registry for all supported models across providers
type ModelRegistry struct {
	// Map of provider name to list of supported models
	models map[string][]string
	// Map of provider name to list of model families (prefixes)
	families map[string][]string
	mu       sync.RWMutex
}

// Global instance of the model registry
var globalRegistry = NewModelRegistry()

// GetRegistry returns the global model registry
func GetRegistry() *ModelRegistry {
	return globalRegistry
}

// NewModelRegistry creates a new model registry
func NewModelRegistry() *ModelRegistry {
	registry := &ModelRegistry{
		models:   make(map[string][]string),
		families: make(map[string][]string),
	}
	registry.initializeDefaultModels()
	return registry
}

// initializeDefaultModels populates the registry with the default models for each provider
func (r *ModelRegistry) initializeDefaultModels() {
	r.RegisterModels("openai", []string{
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4.1",
		"gpt-4.1-mini",
		"gpt-4-turbo",
		"gpt-3.5-turbo",
		"o1",
		"o1-mini",
		"o3-mini",
	})
	r.RegisterFamilies("openai", []string{
		"gpt-",
		"o1",
		"o3",
		"o4",
		"chatgpt-",
	})
}

// RegisterModels adds models for a provider
func (r *ModelRegistry) RegisterModels(provider string, models []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[provider] = append(r.models[provider], models...)
}

// RegisterFamilies adds model family prefixes for a provider
func (r *ModelRegistry) RegisterFamilies(provider string, families []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.families[provider] = append(r.families[provider], families...)
}

// GetModels returns the registered models for a provider
func (r *ModelRegistry) GetModels(provider string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.models[provider]
}

// GetFamilies returns the registered model families for a provider
func (r *ModelRegistry) GetFamilies(provider string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.families[provider]
}

// ValidateModel checks whether a model name is known for a provider,
// either as an exact registered model or by family prefix.
func (r *ModelRegistry) ValidateModel(provider, modelName string) bool {
	modelName = strings.ToLower(modelName)

	for _, model := range r.GetModels(provider) {
		if modelName == strings.ToLower(model) {
			return true
		}
	}
	for _, prefix := range r.GetFamilies(provider) {
		if strings.HasPrefix(modelName, prefix) {
			return true
		}
	}
	return false
}
