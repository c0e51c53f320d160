package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-adapter/internal/cleancv"
	"github.com/jonathan/resume-adapter/internal/cost"
	"github.com/jonathan/resume-adapter/internal/llm"
	"github.com/jonathan/resume-adapter/internal/types"
)

const pipelineResume = `Jane Doe
jane.doe@example.com | +1 415 555 0101

Summary
Backend engineer focused on payment infrastructure.

Experience
Acme Corp — Senior Engineer (2021-03 – Present)
- Built the payments API serving 2M requests per day

Globex — Engineer (2018-06 – 2021-02)
- Shipped the billing pipeline

Skills
Languages: Go, Python, SQL`

const rewrittenJSON = `{
  "header": {"full_name": "Jane Doe", "email": "jane.doe@example.com"},
  "summary": "Payments-focused backend engineer ready for fintech scale.",
  "experience": [
    {"company": "Acme Corp", "title": "Senior Engineer", "start_date": "2021-03", "end_date": "Present",
     "bullets": ["Built the payments API serving 2M requests per day"]},
    {"company": "Globex", "title": "Engineer", "start_date": "2018-06", "end_date": "2021-02",
     "bullets": ["Shipped the billing pipeline"]}
  ],
  "skills": {"languages": ["Go", "Python", "SQL"]}
}`

// stubChat returns a canned completion or error
type stubChat struct {
	text  string
	usage types.TokenUsage
	err   error
	calls int
}

func (s *stubChat) Name() string { return "stub" }

func (s *stubChat) Chat(_ context.Context, _, _ string) (*llm.Completion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Completion{Text: s.text, Model: "stub-model", Usage: s.usage}, nil
}

func (s *stubChat) Close() error { return nil }

func newTestAdapter(client llm.Client) *Adapter {
	builder := cleancv.NewBuilder(cleancv.NewMemoryCache(16, 0), nil)
	return NewAdapter(builder, client, cost.LoadPricing())
}

func TestAdapt_NoJobText(t *testing.T) {
	adapter := newTestAdapter(nil)

	resp, err := adapter.Adapt(context.Background(), AdaptRequest{ResumeText: pipelineResume})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, cleancv.SourceDeterministic, resp.Source)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "en", resp.Clean.Metadata.Language)
	assert.Equal(t, "Jane Doe", resp.Resume.Header.FullName)

	// Already anti-chronological input stays in order and yields no diff.
	require.Len(t, resp.Resume.Experience, 2)
	assert.Equal(t, "Acme Corp", resp.Resume.Experience[0].Company)
	assert.Empty(t, resp.Diff.Changes)

	// No LLM work ran, so the ledger is empty and free.
	assert.Empty(t, resp.Ledger.Steps)
	assert.Zero(t, resp.Ledger.TotalUSD)
}

func TestAdapt_EmptyResume(t *testing.T) {
	adapter := newTestAdapter(nil)

	_, err := adapter.Adapt(context.Background(), AdaptRequest{ResumeText: "  \n\n  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestAdapt_JobTextWithoutClient(t *testing.T) {
	adapter := newTestAdapter(nil)

	resp, err := adapter.Adapt(context.Background(), AdaptRequest{
		ResumeText: pipelineResume,
		JobText:    "We are hiring a senior Go engineer.",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Resume.Metadata.Warnings,
		"no chat provider configured; job-targeted rewrite skipped")
	assert.Empty(t, resp.Ledger.Steps)
}

func TestAdapt_RewriteSuccess(t *testing.T) {
	client := &stubChat{
		text:  rewrittenJSON,
		usage: types.TokenUsage{PromptTokens: 1000, CompletionTokens: 500, TotalTokens: 1500},
	}
	adapter := newTestAdapter(client)

	resp, err := adapter.Adapt(context.Background(), AdaptRequest{
		ResumeText: pipelineResume,
		JobText:    "Fintech startup seeks a payments engineer.",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Payments-focused backend engineer ready for fintech scale.", resp.Resume.Summary)
	assert.Equal(t, "Backend engineer focused on payment infrastructure.", resp.Clean.Summary)

	// The summary rewrite shows up in the diff.
	var rewritten bool
	for _, c := range resp.Diff.Changes {
		if c.Section == "summary" && c.Kind == "rewritten" {
			rewritten = true
		}
	}
	assert.True(t, rewritten, "expected the summary rewrite in the diff")

	require.Len(t, resp.Ledger.Steps, 1)
	step := resp.Ledger.Steps[0]
	assert.Equal(t, StepAdaptation, step.Step)
	assert.Equal(t, "stub-model", step.Model)
	assert.Equal(t, 1500, resp.Ledger.Totals.TotalTokens)
	// Unknown model falls back to the default rate: (0.50*1000 + 1.50*500) / 1e6.
	assert.InDelta(t, 0.00125, resp.Ledger.TotalUSD, 1e-9)
}

func TestAdapt_RewriteFailureKeepsCleanDocument(t *testing.T) {
	client := &stubChat{err: errors.New("provider unavailable")}
	adapter := newTestAdapter(client)

	resp, err := adapter.Adapt(context.Background(), AdaptRequest{
		ResumeText: pipelineResume,
		JobText:    "Any job posting.",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Resume.Metadata.Warnings,
		"job-targeted rewrite failed; returning normalized resume")
	assert.Equal(t, resp.Clean.Summary, resp.Resume.Summary)
	assert.Empty(t, resp.Ledger.Steps)
}

func TestAdapt_InvalidRewriteOutputStillCharged(t *testing.T) {
	client := &stubChat{
		text:  "this is not a resume",
		usage: types.TokenUsage{PromptTokens: 200, CompletionTokens: 50, TotalTokens: 250},
	}
	adapter := newTestAdapter(client)

	resp, err := adapter.Adapt(context.Background(), AdaptRequest{
		ResumeText: pipelineResume,
		JobText:    "Any job posting.",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Resume.Metadata.Warnings,
		"job-targeted rewrite produced an invalid document; returning normalized resume")
	// Tokens were spent even though the output was unusable.
	require.Len(t, resp.Ledger.Steps, 1)
	assert.Equal(t, 250, resp.Ledger.Totals.TotalTokens)
}
