package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-adapter/internal/cleancv"
	"github.com/jonathan/resume-adapter/internal/config"
	"github.com/jonathan/resume-adapter/internal/cost"
	"github.com/jonathan/resume-adapter/internal/llm"
	"github.com/jonathan/resume-adapter/internal/pipeline"
	"github.com/jonathan/resume-adapter/internal/structurer"
)

// buildAdapter assembles the full pipeline from configuration: the
// bounded structuring cache, the optional chat client, and the pricing
// table. The returned close function releases the chat client.
func buildAdapter(ctx context.Context, cfg config.Config) (*pipeline.Adapter, func(), error) {
	// Flag and config values win over whatever the environment carries.
	if cfg.APIKey != "" {
		os.Setenv("GEMINI_API_KEY", cfg.APIKey)
	}
	if cfg.Model != "" {
		os.Setenv("GEMINI_MODEL", cfg.Model)
		os.Setenv("OPENAI_MODEL", cfg.Model)
	}

	client, err := llm.NewFromEnv(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create chat client: %w", err)
	}

	var ai structurer.Structurer
	if client != nil {
		ai = structurer.NewAIStructurer(client)
	}

	cache := cleancv.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheLifetime())
	adapter := pipeline.NewAdapter(cleancv.NewBuilder(cache, ai), client, cost.LoadPricing())

	closeFn := func() {
		if client != nil {
			_ = client.Close()
		}
	}
	return adapter, closeFn, nil
}
