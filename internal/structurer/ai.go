package structurer

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-adapter/internal/llm"
	"github.com/jonathan/resume-adapter/internal/salvage"
	"github.com/jonathan/resume-adapter/internal/schemas"
	"github.com/jonathan/resume-adapter/internal/types"
)

// AIStructurer structures resume text through a chat-completion client.
// Any failure (network, salvage, schema, decode) is returned as a
// *StructuringError for the caller to fall back on.
type AIStructurer struct {
	client llm.Client
}

// NewAIStructurer wraps a chat client as a Structurer
func NewAIStructurer(client llm.Client) *AIStructurer {
	return &AIStructurer{client: client}
}

// Structure implements Structurer via an LLM call followed by salvage
// parsing and schema validation.
func (s *AIStructurer) Structure(ctx context.Context, text string) (*Result, error) {
	completion, err := s.client.Chat(ctx, llm.StructuringSystemPrompt, llm.BuildStructuringPrompt(text))
	if err != nil {
		return nil, &StructuringError{Stage: "generate", Cause: err}
	}

	doc, err := DecodeDocument(completion.Text)
	if err != nil {
		return nil, err
	}

	usage := completion.Usage
	return &Result{Document: doc, Usage: &usage, Model: completion.Model}, nil
}

// DecodeDocument salvage-parses LLM output, validates it against the
// resume schema, and decodes it into a ResumeDocument.
func DecodeDocument(raw string) (*types.ResumeDocument, error) {
	obj, err := salvage.Parse(raw)
	if err != nil {
		return nil, &StructuringError{Stage: "salvage", Cause: err}
	}

	// Re-marshal the salvaged object so validation and decoding see the
	// same canonical JSON.
	canonical, err := json.Marshal(obj)
	if err != nil {
		return nil, &StructuringError{Stage: "decode", Cause: err}
	}

	if err := schemas.ValidateResume(string(canonical)); err != nil {
		return nil, &StructuringError{Stage: "schema", Cause: err}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(canonical, &doc); err != nil {
		return nil, &StructuringError{Stage: "decode", Cause: err}
	}
	return &doc, nil
}
