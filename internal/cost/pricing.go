// Package cost aggregates token usage and computes per-step and total
// USD cost for a pipeline run from a pluggable pricing table.
package cost

import (
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/resume-adapter/internal/types"
)

// Built-in family defaults, overridable per environment. Prices are USD
// per million tokens. Anything the table does not recognize falls back
// to the global default, which deliberately over-estimates rather than
// silently under-reporting spend.
const (
	defaultFlashIn  = 0.15
	defaultFlashOut = 0.60
	defaultProIn    = 1.25
	defaultProOut   = 10.00
	defaultIn       = 0.50
	defaultOut      = 1.50
)

// PricingTable resolves a model name to a pricing rate.
type PricingTable struct {
	// Models maps exact model names to rates; takes precedence over
	// family matching.
	Models map[string]types.Rate
	// Families are checked in order against the model name as
	// substrings; first match wins.
	Families []FamilyRate
	// Default applies when nothing else matches.
	Default types.Rate
}

// FamilyRate prices all models whose name contains Substring.
type FamilyRate struct {
	Substring string
	Rate      types.Rate
}

// LoadPricing builds the pricing table from environment variables:
//
//	PRICE_FLASH_IN_PER_MTOK / PRICE_FLASH_OUT_PER_MTOK
//	PRICE_PRO_IN_PER_MTOK   / PRICE_PRO_OUT_PER_MTOK
//	PRICE_DEFAULT_IN_PER_MTOK / PRICE_DEFAULT_OUT_PER_MTOK
func LoadPricing() *PricingTable {
	return &PricingTable{
		Models: map[string]types.Rate{},
		Families: []FamilyRate{
			{Substring: "flash", Rate: types.Rate{
				InPerMTok:  getEnvFloat("PRICE_FLASH_IN_PER_MTOK", defaultFlashIn),
				OutPerMTok: getEnvFloat("PRICE_FLASH_OUT_PER_MTOK", defaultFlashOut),
			}},
			{Substring: "pro", Rate: types.Rate{
				InPerMTok:  getEnvFloat("PRICE_PRO_IN_PER_MTOK", defaultProIn),
				OutPerMTok: getEnvFloat("PRICE_PRO_OUT_PER_MTOK", defaultProOut),
			}},
		},
		Default: types.Rate{
			InPerMTok:  getEnvFloat("PRICE_DEFAULT_IN_PER_MTOK", defaultIn),
			OutPerMTok: getEnvFloat("PRICE_DEFAULT_OUT_PER_MTOK", defaultOut),
		},
	}
}

// Resolve returns the rate for a model and whether it was recognized
// (exact or family match, as opposed to the global default).
func (t *PricingTable) Resolve(model string) (types.Rate, bool) {
	if rate, ok := t.Models[model]; ok {
		return rate, true
	}
	lowered := strings.ToLower(model)
	for _, f := range t.Families {
		if strings.Contains(lowered, f.Substring) {
			return f.Rate, true
		}
	}
	return t.Default, false
}

// getEnvFloat gets an environment variable as a float with a default value.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
