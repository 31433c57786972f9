package main

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/horizon"
	"github.com/m-mizutani/horizon/llm/claude"
	"github.com/m-mizutani/horizon/llm/gemini"
	"github.com/m-mizutani/horizon/llm/openai"
)

const (
	providerGemini = "gemini"
	providerClaude = "claude"
	providerOpenAI = "openai"
)

var providerLabels = map[string]string{
	providerGemini: "Google Gemini",
	providerClaude: "Anthropic Claude",
	providerOpenAI: "OpenAI",
}

func validateProvider(provider string) error {
	if _, ok := providerLabels[provider]; !ok {
		return goerr.New("unsupported provider", goerr.V("provider", provider))
	}
	return nil
}

// clientFactory builds the LLM client of a provider. An empty model selects the provider default.
type clientFactory func(ctx context.Context, provider, apiKey, model string) (horizon.LLMClient, error)

func newLLMClient(ctx context.Context, provider, apiKey, model string) (horizon.LLMClient, error) {
	switch provider {
	case providerGemini:
		client, err := gemini.New(ctx, apiKey, gemini.WithModel(model))
		if err != nil {
			return nil, err
		}
		return client, nil

	case providerClaude:
		client, err := claude.New(ctx, apiKey, claude.WithModel(model))
		if err != nil {
			return nil, err
		}
		return client, nil

	case providerOpenAI:
		client, err := openai.New(ctx, apiKey, openai.WithModel(model))
		if err != nil {
			return nil, err
		}
		return client, nil

	default:
		return nil, goerr.New("unsupported provider", goerr.V("provider", provider))
	}
}
