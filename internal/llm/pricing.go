package llm

import "strings"

// ModelCost holds USD pricing per one million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// Dated snapshots ("gpt-3.5-turbo-0125") and vendor-prefixed OpenRouter
// IDs ("openai/gpt-4o") resolve to their base entry.
func LookupCost(modelID string) *ModelCost {
	if i := strings.LastIndexByte(modelID, '/'); i >= 0 {
		modelID = modelID[i+1:]
	}
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	best := ""
	for id := range modelCosts {
		if strings.HasPrefix(modelID, id+"-") && len(id) > len(best) {
			best = id
		}
	}
	if best == "" {
		return nil
	}
	c := modelCosts[best]
	return &c
}

var modelCosts = map[string]ModelCost{
	"gpt-3.5-turbo": {0.5, 1.5},
	"gpt-4":         {30, 60},
	"gpt-4-turbo":   {10, 30},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-4.1-nano":  {0.1, 0.4},
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-5-mini":    {0.25, 2},
	"gpt-5-nano":    {0.05, 0.4},

	"claude-3-5-haiku":  {0.8, 4},
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},

	"gemini-1.5-flash":      {0.075, 0.3},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},
}
