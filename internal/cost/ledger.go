package cost

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-adapter/internal/types"
)

// ComputeTotals sums token usage across all ledger steps. Steps without a
// usage block (cache hits, deterministic structuring) contribute zero.
func ComputeTotals(ledger *types.CostLedger) {
	totals := types.TokenUsage{}
	for _, step := range ledger.Steps {
		if step.Usage == nil {
			continue
		}
		totals.PromptTokens += step.Usage.PromptTokens
		totals.CompletionTokens += step.Usage.CompletionTokens
		totals.TotalTokens += step.Usage.TotalTokens
	}
	ledger.Totals = totals
}

// ComputeCostUSD computes per-step and total USD cost in place. The rate
// for each step resolves, in priority order: the step's explicit price
// override, the pricing table, the global default. Returned warnings name
// the models that fell through to the default rate so the caller can
// surface possibly inaccurate accounting.
func ComputeCostUSD(ledger *types.CostLedger, table *PricingTable) []string {
	var warnings []string
	total := 0.0

	for i := range ledger.Steps {
		step := &ledger.Steps[i]
		if step.Usage == nil {
			step.CostUSD = 0
			continue
		}

		var rate types.Rate
		switch {
		case step.PriceOverride != nil:
			rate = *step.PriceOverride
		default:
			var known bool
			rate, known = table.Resolve(step.Model)
			if !known {
				warnings = append(warnings,
					fmt.Sprintf("pricing: model %q not in pricing table, using default rate for step %q", step.Model, step.Step))
			}
		}

		step.CostUSD = round6(
			(float64(step.Usage.PromptTokens)*rate.InPerMTok +
				float64(step.Usage.CompletionTokens)*rate.OutPerMTok) / 1_000_000)
		total += step.CostUSD
	}

	ledger.TotalUSD = round6(total)
	return warnings
}

// Finalize computes totals and USD cost in one pass, immediately before
// the ledger is serialized into the response.
func Finalize(ledger *types.CostLedger, table *PricingTable) []string {
	ComputeTotals(ledger)
	return ComputeCostUSD(ledger, table)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
