package cost

import (
	"testing"

	"github.com/jonathan/resume-adapter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *PricingTable {
	return &PricingTable{
		Models: map[string]types.Rate{},
		Families: []FamilyRate{
			{Substring: "flash", Rate: types.Rate{InPerMTok: 0.15, OutPerMTok: 0.60}},
			{Substring: "pro", Rate: types.Rate{InPerMTok: 1.25, OutPerMTok: 10.00}},
		},
		Default: types.Rate{InPerMTok: 0.50, OutPerMTok: 1.50},
	}
}

func TestComputeCostUSD_Determinism(t *testing.T) {
	ledger := &types.CostLedger{
		Steps: []types.StepCost{
			{
				Step:  "structure",
				Model: "gemini-2.0-flash",
				Usage: &types.TokenUsage{PromptTokens: 1_000_000, CompletionTokens: 0, TotalTokens: 1_000_000},
			},
			{
				Step:  "adapt",
				Model: "gemini-2.0-flash",
				Usage: &types.TokenUsage{PromptTokens: 2_000, CompletionTokens: 1_000, TotalTokens: 3_000},
			},
		},
	}

	warnings := Finalize(ledger, testTable())
	assert.Empty(t, warnings)

	// 1M prompt tokens at 0.15/MTok is exactly 0.15.
	assert.InDelta(t, 0.15, ledger.Steps[0].CostUSD, 1e-9)
	assert.Equal(t, 1_002_000, ledger.Totals.PromptTokens)
	assert.Equal(t, 1_000, ledger.Totals.CompletionTokens)
	assert.Equal(t, 1_003_000, ledger.Totals.TotalTokens)

	// (2000*0.15 + 1000*0.60)/1e6 = 0.0009
	assert.InDelta(t, 0.0009, ledger.Steps[1].CostUSD, 1e-9)
	assert.InDelta(t, 0.1509, ledger.TotalUSD, 1e-9)
}

func TestComputeCostUSD_StepsWithoutUsageAreSkipped(t *testing.T) {
	ledger := &types.CostLedger{
		Steps: []types.StepCost{
			{Step: "clean_cv", Model: ""},
			{Step: "adapt", Model: "gemini-2.5-pro", Usage: &types.TokenUsage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110}},
		},
	}

	Finalize(ledger, testTable())
	assert.Zero(t, ledger.Steps[0].CostUSD)
	assert.Equal(t, 110, ledger.Totals.TotalTokens)
}

func TestComputeCostUSD_PriceOverrideWins(t *testing.T) {
	ledger := &types.CostLedger{
		Steps: []types.StepCost{
			{
				Step:          "adapt",
				Model:         "gemini-2.0-flash",
				Usage:         &types.TokenUsage{PromptTokens: 1_000_000},
				PriceOverride: &types.Rate{InPerMTok: 3.00, OutPerMTok: 15.00},
			},
		},
	}

	Finalize(ledger, testTable())
	assert.InDelta(t, 3.00, ledger.Steps[0].CostUSD, 1e-9)
}

func TestComputeCostUSD_UnknownModelWarns(t *testing.T) {
	ledger := &types.CostLedger{
		Steps: []types.StepCost{
			{Step: "adapt", Model: "mystery-model-v9", Usage: &types.TokenUsage{PromptTokens: 1_000_000}},
		},
	}

	warnings := Finalize(ledger, testTable())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "mystery-model-v9")
	// Default input rate applies.
	assert.InDelta(t, 0.50, ledger.Steps[0].CostUSD, 1e-9)
}

func TestResolve_FamilyMatch(t *testing.T) {
	table := testTable()

	rate, known := table.Resolve("gemini-2.5-pro-preview")
	assert.True(t, known)
	assert.InDelta(t, 1.25, rate.InPerMTok, 1e-9)

	_, known = table.Resolve("claude-sonnet")
	assert.False(t, known)
}

func TestLoadPricing_EnvOverride(t *testing.T) {
	t.Setenv("PRICE_FLASH_IN_PER_MTOK", "0.075")
	table := LoadPricing()

	rate, known := table.Resolve("gemini-2.0-flash-lite")
	assert.True(t, known)
	assert.InDelta(t, 0.075, rate.InPerMTok, 1e-9)
}
