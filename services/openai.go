package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// AssistantClient wraps the OpenAI-compatible chat model behind the
// Language Model Gateway. The endpoint is configurable so any compatible
// provider works.
type AssistantClient struct {
	Chat llms.Model
}

func NewAssistantClient(apiKey, apiEndpoint, model string) (*AssistantClient, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if apiEndpoint != "" {
		opts = append(opts, openai.WithBaseURL(apiEndpoint))
	}

	chat, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant client: %w", err)
	}

	return &AssistantClient{
		Chat: chat,
	}, nil
}
