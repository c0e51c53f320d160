package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-adapter/internal/diff"
	"github.com/jonathan/resume-adapter/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		Header: types.Header{FullName: "Jane Doe", Email: "jane@example.com"},
		Experience: []types.ExperienceEntry{
			{Company: "Acme Corp", Title: "Senior Engineer", StartDate: "2021-03", EndDate: "Present"},
		},
		Education: []types.EducationEntry{
			{School: "Stanford University", Degree: "B.Sc. Computer Science"},
		},
		Metadata: types.Metadata{Language: "en"},
	}

	p.PrintResume(doc)
	output := buf.String()

	assert.Contains(t, output, "ADAPTED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Senior Engineer, Acme Corp")
	assert.Contains(t, output, "Stanford University")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDiff(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &diff.Report{
		Changes: []diff.Change{
			{Section: "summary", Kind: diff.KindRewritten},
			{Section: "experience[0]", Field: "bullets[1]", Kind: diff.KindAdded},
		},
		Narrative: "Adaptation changed the resume: 1 item(s) rewritten, 1 item(s) added.",
	}

	p.PrintDiff(report)
	output := buf.String()

	assert.Contains(t, output, "CHANGES")
	assert.Contains(t, output, "rewritten summary")
	assert.Contains(t, output, "added experience[0].bullets[1]")
}

func TestPrintCostLedger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ledger := &types.CostLedger{
		Steps: []types.StepCost{
			{
				Step:    "structuring",
				Model:   "gemini-2.5-flash",
				Usage:   &types.TokenUsage{PromptTokens: 1200, CompletionTokens: 400, TotalTokens: 1600},
				CostUSD: 0.00042,
			},
		},
		Totals:   types.TokenUsage{TotalTokens: 1600},
		TotalUSD: 0.00042,
	}

	p.PrintCostLedger(ledger)
	output := buf.String()

	assert.Contains(t, output, "COST")
	assert.Contains(t, output, "structuring")
	assert.Contains(t, output, "gemini-2.5-flash")
	assert.Contains(t, output, "in=1200 out=400")
}

func TestPrintCostLedger_NoSteps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCostLedger(&types.CostLedger{})
	output := buf.String()

	assert.Contains(t, output, "No LLM calls were made")
}

func TestPrintWarnings_WithWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings([]string{"ai structuring failed; deterministic structuring used"})
	output := buf.String()

	assert.Contains(t, output, "WARNINGS")
	assert.Contains(t, output, "ai structuring failed")
}

func TestPrintWarnings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings(nil)
	output := buf.String()

	assert.Contains(t, output, "NO WARNINGS")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		Header: types.Header{
			FullName: "A Very Long Candidate Name That Should Be Truncated To Fit The Box",
		},
	}

	p.PrintResume(doc)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
