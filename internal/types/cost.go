package types

// TokenUsage mirrors the usage block reported by chat-completion providers
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Rate is a pricing rate in USD per million tokens
type Rate struct {
	InPerMTok  float64 `json:"in_per_mtok"`
	OutPerMTok float64 `json:"out_per_mtok"`
}

// StepCost records the token usage and computed cost of one pipeline step.
// Steps that perform no LLM work (cache hits, deterministic structuring)
// carry a nil Usage and contribute zero to the totals.
type StepCost struct {
	Step          string      `json:"step"`
	Model         string      `json:"model,omitempty"`
	Usage         *TokenUsage `json:"usage,omitempty"`
	CostUSD       float64     `json:"cost_usd"`
	PriceOverride *Rate       `json:"price_override,omitempty"`
}

// CostLedger aggregates token usage and USD cost across all pipeline
// steps of a single adaptation request. Created at request start,
// appended to by every LLM-calling step, finalized immediately before
// the response is serialized.
type CostLedger struct {
	RequestID string     `json:"request_id,omitempty"`
	Steps     []StepCost `json:"steps"`
	Totals    TokenUsage `json:"totals"`
	TotalUSD  float64    `json:"total_usd"`
}

// AddStep appends a step record to the ledger
func (l *CostLedger) AddStep(step StepCost) {
	l.Steps = append(l.Steps, step)
}
