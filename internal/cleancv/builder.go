package cleancv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/jonathan/resume-adapter/internal/structurer"
	"github.com/jonathan/resume-adapter/internal/types"
	"golang.org/x/sync/singleflight"
)

// Source reports which path produced a structured document
type Source string

// Source values, from cheapest to most degraded
const (
	SourceCache         Source = "cache"
	SourceAI            Source = "ai"
	SourceDeterministic Source = "deterministic"
)

// Result is the outcome of one Build call. Usage and Model are set only
// when the AI path ran.
type Result struct {
	Clean  *types.ResumeDocument
	Source Source
	Usage  *types.TokenUsage
	Model  string
}

// Builder orchestrates structuring: cache hit, then AI structuring when
// configured, then the deterministic fallback. AI failures never
// propagate; the fallback always produces a document.
type Builder struct {
	cache Cache
	ai    structurer.Structurer
	det   structurer.Structurer
	group singleflight.Group
}

// NewBuilder creates a builder. ai may be nil when no provider
// credential is configured; every Build then goes straight to
// deterministic structuring.
func NewBuilder(cache Cache, ai structurer.Structurer) *Builder {
	return &Builder{
		cache: cache,
		ai:    ai,
		det:   structurer.Deterministic{},
	}
}

// Build returns the structured document for cvText. Identical input text
// within the cache lifetime returns the cached document with no token
// cost. Concurrent misses on the same hash are collapsed into a single
// structuring call; both callers pay nothing extra and LLM spend is not
// duplicated.
func (b *Builder) Build(ctx context.Context, cvText string) (*Result, error) {
	key := ContentHash(cvText)

	if doc, ok := b.cache.Get(key); ok {
		return &Result{Clean: doc, Source: SourceCache}, nil
	}

	v, err, _ := b.group.Do(key, func() (any, error) {
		// Re-check: another flight may have filled the cache between
		// our miss and acquiring the flight.
		if doc, ok := b.cache.Get(key); ok {
			return &Result{Clean: doc, Source: SourceCache}, nil
		}

		res := b.structure(ctx, cvText)
		b.cache.Set(key, res.Clean)
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	res := v.(*Result)
	// Each caller gets its own copy; the pipeline mutates documents in
	// place and flights can be shared.
	out := *res
	out.Clean = res.Clean.Clone()
	return &out, nil
}

// structure runs the AI path when configured and falls back to
// deterministic structuring on any failure.
func (b *Builder) structure(ctx context.Context, cvText string) *Result {
	if b.ai != nil {
		res, err := b.ai.Structure(ctx, cvText)
		if err == nil {
			return &Result{Clean: res.Document, Source: SourceAI, Usage: res.Usage, Model: res.Model}
		}
		log.Printf("[cleancv] ai structuring failed, falling back to deterministic: %v", err)
	}

	res, _ := b.det.Structure(ctx, cvText) // deterministic structuring has no failure mode
	doc := res.Document
	if b.ai != nil {
		doc.AddWarning("ai structuring failed; deterministic structuring used")
	}
	return &Result{Clean: doc, Source: SourceDeterministic}
}

// ContentHash returns the cache key for input text
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
