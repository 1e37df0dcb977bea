package models

import (
	"context"
	"testing"
)

func TestOpenAIProviderSupportsModel(t *testing.T) {
	provider := NewOpenAIProvider()

	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt-4o", model: "gpt-4o", want: true},
		{name: "gpt-4o-mini", model: "gpt-4o-mini", want: true},
		{name: "gpt prefix with unknown suffix", model: "gpt-99-experimental", want: true},
		{name: "o1 reasoning model", model: "o1-mini", want: true},
		{name: "case insensitive", model: "GPT-4O", want: true},
		{name: "claude model", model: "claude-sonnet-4-20250514", want: false},
		{name: "gemini model", model: "gemini-2.0-flash", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.SupportsModel(tt.model); got != tt.want {
				t.Errorf("SupportsModel(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestOpenAIProviderConfigure(t *testing.T) {
	provider := NewOpenAIProvider()

	if err := provider.Configure(""); err == nil {
		t.Error("Configure(\"\") should fail")
	}
	if err := provider.Configure("sk-test"); err != nil {
		t.Errorf("Configure() unexpected error: %v", err)
	}
}

func TestOpenAIProviderSendPromptPreconditions(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		provider := NewOpenAIProvider()
		_, err := provider.SendPrompt(context.Background(), "gpt-4o", "hello")
		if err == nil {
			t.Error("SendPrompt() without an API key should fail")
		}
	})

	t.Run("unsupported model", func(t *testing.T) {
		provider := NewOpenAIProvider()
		if err := provider.Configure("sk-test"); err != nil {
			t.Fatalf("Configure() error: %v", err)
		}
		_, err := provider.SendPrompt(context.Background(), "claude-3-5-sonnet-latest", "hello")
		if err == nil {
			t.Error("SendPrompt() with an unsupported model should fail")
		}
	})
}

func TestDetectProvider(t *testing.T) {
	if provider := DetectProvider("gpt-4o"); provider == nil {
		t.Error("DetectProvider(gpt-4o) = nil, want OpenAI provider")
	} else if provider.Name() != "openai" {
		t.Errorf("DetectProvider(gpt-4o).Name() = %q, want openai", provider.Name())
	}

	if provider := DetectProvider("llama3"); provider != nil {
		t.Errorf("DetectProvider(llama3) = %v, want nil", provider.Name())
	}
}
