package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// Fallback is a Client that tries an ordered list of providers and
// returns the first successful completion. Callers only observe the
// final success or the aggregate failure.
type Fallback struct {
	clients []Client
}

// NewFallback creates a fallback chain over the given clients, tried in
// order.
func NewFallback(clients ...Client) *Fallback {
	return &Fallback{clients: clients}
}

// Name identifies the provider chain for logging
func (f *Fallback) Name() string {
	names := make([]string, len(f.clients))
	for i, c := range f.clients {
		names[i] = c.Name()
	}
	return "fallback(" + strings.Join(names, ",") + ")"
}

// Chat tries each provider in order; the first success wins
func (f *Fallback) Chat(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error) {
	if len(f.clients) == 0 {
		return nil, fmt.Errorf("no providers configured")
	}

	var errs []error
	for _, c := range f.clients {
		completion, err := c.Chat(ctx, systemPrompt, userPrompt)
		if err == nil {
			return completion, nil
		}
		log.Printf("[llm] provider %s failed, trying next: %v", c.Name(), err)
		errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))

		// A canceled context fails every provider; stop early.
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}

// Close releases resources of every provider in the chain
func (f *Fallback) Close() error {
	var errs []error
	for _, c := range f.clients {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
