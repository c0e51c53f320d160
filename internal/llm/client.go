// Package llm provides chat-completion client abstractions with
// multi-provider fallback. The pipeline only ever sees success or
// failure plus usage metadata; retries and provider selection live here.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-adapter/internal/types"
)

// Completion is a successful chat-completion result
type Completion struct {
	Text  string
	Model string
	Usage types.TokenUsage
}

// Client is an abstraction over chat-completion providers
type Client interface {
	// Name identifies the provider for logging
	Name() string
	// Chat sends a system and user prompt and returns the completion
	Chat(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
	// Close releases any resources held by the client
	Close() error
}

// NewFromEnv assembles the provider chain from environment credentials:
// Gemini when GEMINI_API_KEY is set, then an OpenAI-compatible endpoint
// when OPENAI_API_KEY is set. Returns nil (no error) when nothing is
// configured; callers treat a nil client as "AI unavailable" and use the
// deterministic paths.
func NewFromEnv(ctx context.Context) (Client, error) {
	var clients []Client

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		gc, err := NewGeminiClient(ctx, key, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		clients = append(clients, gc)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		baseURL := os.Getenv("OPENAI_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			model = "gpt-4o-mini"
		}
		clients = append(clients, NewOpenAIClient(baseURL, key, model))
	}

	switch len(clients) {
	case 0:
		return nil, nil
	case 1:
		return clients[0], nil
	default:
		return NewFallback(clients...), nil
	}
}
