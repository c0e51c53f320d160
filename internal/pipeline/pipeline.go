// Package pipeline provides the high-level orchestration for one resume
// adaptation request: normalization, structuring, the optional
// job-targeted rewrite, chronology and language guarantees, diffing and
// cost accounting.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-adapter/internal/chronology"
	"github.com/jonathan/resume-adapter/internal/cleancv"
	"github.com/jonathan/resume-adapter/internal/cost"
	"github.com/jonathan/resume-adapter/internal/diff"
	"github.com/jonathan/resume-adapter/internal/ingestion"
	"github.com/jonathan/resume-adapter/internal/language"
	"github.com/jonathan/resume-adapter/internal/llm"
	"github.com/jonathan/resume-adapter/internal/structurer"
	"github.com/jonathan/resume-adapter/internal/types"
)

// Ledger step names
const (
	StepStructuring = "structuring"
	StepAdaptation  = "adaptation"
)

// AdaptRequest is the input to one adaptation run. JobText is optional;
// without it the pipeline normalizes and structures the resume but
// performs no targeted rewrite.
type AdaptRequest struct {
	ResumeText string
	JobText    string
}

// AdaptResponse is the full outcome of one adaptation run
type AdaptResponse struct {
	RequestID string                `json:"request_id"`
	Resume    *types.ResumeDocument `json:"resume"`
	Clean     *types.ResumeDocument `json:"clean"`
	Source    cleancv.Source        `json:"source"`
	Language  string                `json:"language"`
	Diff      *diff.Report          `json:"diff"`
	Ledger    *types.CostLedger     `json:"cost"`
}

// Adapter wires the structuring builder, the chat client for the rewrite
// step and the pricing table into a reusable pipeline. A nil client
// disables the rewrite step; everything else still runs.
type Adapter struct {
	builder *cleancv.Builder
	client  llm.Client
	pricing *cost.PricingTable
}

// NewAdapter creates an adapter. client may be nil.
func NewAdapter(builder *cleancv.Builder, client llm.Client, pricing *cost.PricingTable) *Adapter {
	return &Adapter{
		builder: builder,
		client:  client,
		pricing: pricing,
	}
}

// Adapt runs the full pipeline for one request
func (a *Adapter) Adapt(ctx context.Context, req AdaptRequest) (*AdaptResponse, error) {
	normalized := ingestion.CleanText(req.ResumeText)
	if strings.TrimSpace(normalized) == "" {
		return nil, fmt.Errorf("resume text is empty after normalization")
	}

	ledger := &types.CostLedger{RequestID: uuid.New().String()}

	sourceLang := language.Detect(normalized)

	// Structuring: cache, then AI, then deterministic
	built, err := a.builder.Build(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("structuring resume failed: %w", err)
	}
	if built.Usage != nil {
		ledger.AddStep(types.StepCost{
			Step:  StepStructuring,
			Model: built.Model,
			Usage: built.Usage,
		})
	}

	clean := built.Clean
	clean.Metadata.Language = sourceLang

	adapted := a.rewrite(ctx, clean, req.JobText, ledger)

	// Guarantees applied after any rewrite: anti-chronological experience
	// order, then original-language enforcement against the clean snapshot.
	adapted.Experience = chronology.SortAntiChronological(adapted.Experience)
	adapted = language.EnforceOriginalLanguage(adapted, clean, sourceLang)

	report := diff.Compare(clean, adapted)

	for _, warning := range cost.Finalize(ledger, a.pricing) {
		adapted.AddWarning(warning)
	}

	return &AdaptResponse{
		RequestID: ledger.RequestID,
		Resume:    adapted,
		Clean:     clean,
		Source:    built.Source,
		Language:  sourceLang,
		Diff:      report,
		Ledger:    ledger,
	}, nil
}

// rewrite performs the job-targeted rewrite when a job posting and a
// chat client are both available. Any failure degrades to the clean
// document with a warning; the pipeline never fails because the rewrite
// did.
func (a *Adapter) rewrite(ctx context.Context, clean *types.ResumeDocument, jobText string, ledger *types.CostLedger) *types.ResumeDocument {
	adapted := clean.Clone()

	jobText = ingestion.CleanText(jobText)
	if strings.TrimSpace(jobText) == "" {
		return adapted
	}
	if a.client == nil {
		adapted.AddWarning("no chat provider configured; job-targeted rewrite skipped")
		return adapted
	}

	resumeJSON, err := json.Marshal(clean)
	if err != nil {
		adapted.AddWarning("rewrite skipped: could not serialize resume")
		return adapted
	}

	completion, err := a.client.Chat(ctx, llm.AdaptationSystemPrompt, llm.BuildAdaptationPrompt(string(resumeJSON), jobText))
	if err != nil {
		log.Printf("[pipeline] rewrite failed: %v", err)
		adapted.AddWarning("job-targeted rewrite failed; returning normalized resume")
		return adapted
	}
	ledger.AddStep(types.StepCost{
		Step:  StepAdaptation,
		Model: completion.Model,
		Usage: &completion.Usage,
	})

	rewritten, err := structurer.DecodeDocument(completion.Text)
	if err != nil {
		log.Printf("[pipeline] rewrite produced an invalid document: %v", err)
		adapted.AddWarning("job-targeted rewrite produced an invalid document; returning normalized resume")
		return adapted
	}

	// Rewrite output replaces content but never the provenance carried in
	// metadata
	rewritten.Metadata = clean.Metadata
	rewritten.Metadata.Warnings = append([]string(nil), clean.Metadata.Warnings...)
	return rewritten
}
