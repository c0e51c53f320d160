package cleancv

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/resume-adapter/internal/structurer"
	"github.com/jonathan/resume-adapter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const builderInput = "Jane Doe\n\nExperience\nAcme Corp — Engineer (2020-01 – Present)\n- Built the API"

// countingStructurer wraps a Structurer and counts calls
type countingStructurer struct {
	inner structurer.Structurer
	err   error
	calls int
}

func (c *countingStructurer) Structure(ctx context.Context, text string) (*structurer.Result, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	if c.inner != nil {
		return c.inner.Structure(ctx, text)
	}
	return &structurer.Result{
		Document: &types.ResumeDocument{Header: types.Header{FullName: "Jane Doe"}},
		Usage:    &types.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		Model:    "stub-model",
	}, nil
}

func TestBuild_CacheIdempotence(t *testing.T) {
	ai := &countingStructurer{}
	b := NewBuilder(NewMemoryCache(16, 0), ai)

	first, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	assert.Equal(t, SourceAI, first.Source)
	require.NotNil(t, first.Usage)

	second, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, second.Source)
	// Second call incurs zero incremental token cost.
	assert.Nil(t, second.Usage)
	assert.Equal(t, first.Clean, second.Clean)
	assert.Equal(t, 1, ai.calls)
}

func TestBuild_CachedDocumentIsIsolated(t *testing.T) {
	b := NewBuilder(NewMemoryCache(16, 0), nil)

	first, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	first.Clean.Header.FullName = "MUTATED"

	second, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", second.Clean.Header.FullName)
}

func TestBuild_AIFailureFallsBackToDeterministic(t *testing.T) {
	ai := &countingStructurer{err: fmt.Errorf("provider down")}
	b := NewBuilder(NewMemoryCache(16, 0), ai)

	res, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	assert.Equal(t, SourceDeterministic, res.Source)
	assert.Equal(t, "Jane Doe", res.Clean.Header.FullName)
	assert.NotEmpty(t, res.Clean.Metadata.Warnings)

	// The degraded result is still cached.
	res2, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, res2.Source)
	assert.Equal(t, 1, ai.calls)
}

func TestBuild_NoAIConfigured(t *testing.T) {
	b := NewBuilder(NewMemoryCache(16, 0), nil)

	res, err := b.Build(context.Background(), builderInput)
	require.NoError(t, err)
	assert.Equal(t, SourceDeterministic, res.Source)
	assert.Nil(t, res.Usage)
	// No AI configured is the normal path, not a degradation warning.
	assert.Empty(t, res.Clean.Metadata.Warnings)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(16, 10*time.Millisecond)
	c.Set("k", &types.ResumeDocument{Header: types.Header{FullName: "Jane"}})

	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCache_Bounded(t *testing.T) {
	c := NewMemoryCache(2, 0)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), &types.ResumeDocument{})
	}
	assert.Equal(t, 2, c.Len())

	// Oldest entries were evicted.
	_, ok := c.Get("k0")
	assert.False(t, ok)
	_, ok = c.Get("k4")
	assert.True(t, ok)
}

func TestContentHash_Stable(t *testing.T) {
	assert.Equal(t, ContentHash("abc"), ContentHash("abc"))
	assert.NotEqual(t, ContentHash("abc"), ContentHash("abd"))
	assert.Len(t, ContentHash(""), 64)
}
