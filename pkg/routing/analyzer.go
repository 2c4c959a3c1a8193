// Package routing matches user queries to registered servers. An optional
// LLM analyzer extracts required capabilities; a keyword heuristic is the
// always-available fallback. The selected capabilities drive a cascade of
// registry and metadata queries until candidates are found.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// Analysis method discriminators recorded on QueryAnalysis.
const (
	MethodLLM     = "llm"
	MethodKeyword = "keyword"
)

// defaultLLMConfidence is used when the model's response omits one.
const defaultLLMConfidence = 0.7

// Analyzer extracts required capabilities from a user query. Implementations
// wrap an LLM provider; errors make the router fall back to keywords.
type Analyzer interface {
	AnalyzeQuery(ctx context.Context, query string, capabilities []string) (models.QueryAnalysis, error)
}

// analysisPrompt is the instruction sent to LLM analyzers.
const analysisPrompt = `You match user requests to server capabilities.
Given the list of known capabilities and a user query, respond with ONLY a JSON object:
{"required_capabilities": ["..."], "confidence": 0.0-1.0, "reasoning": "..."}
Use only capability names from the known list. Respond with JSON only, no prose.`

func buildUserMessage(query string, capabilities []string) string {
	return fmt.Sprintf("Known capabilities: %s\n\nUser query: %s",
		strings.Join(capabilities, ", "), query)
}

// parseAnalysis decodes an LLM response into a QueryAnalysis, filtering the
// capabilities to the known set. Code fences around the JSON are tolerated.
func parseAnalysis(raw string, known []string) (models.QueryAnalysis, error) {
	raw = stripCodeFence(raw)

	var decoded struct {
		RequiredCapabilities []string `json:"required_capabilities"`
		Confidence           *float64 `json:"confidence"`
		Reasoning            string   `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return models.QueryAnalysis{}, fmt.Errorf("malformed analysis response: %w", err)
	}

	knownSet := make(map[string]struct{}, len(known))
	for _, cap := range known {
		knownSet[strings.ToLower(cap)] = struct{}{}
	}

	analysis := models.QueryAnalysis{
		Reasoning:  decoded.Reasoning,
		Confidence: defaultLLMConfidence,
		Method:     MethodLLM,
	}
	if decoded.Confidence != nil {
		analysis.Confidence = clamp01(*decoded.Confidence)
	}
	for _, cap := range decoded.RequiredCapabilities {
		cap = strings.ToLower(cap)
		if _, ok := knownSet[cap]; ok {
			analysis.RequiredCapabilities = append(analysis.RequiredCapabilities, cap)
		}
	}
	return analysis, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// KeywordAnalyze is the deterministic fallback: tokens longer than three
// characters are matched case-insensitively as substrings of capability
// names. Confidence is 0.5 when anything matched, 0.0 otherwise.
func KeywordAnalyze(query string, capabilities []string) models.QueryAnalysis {
	tokens := queryTokens(query)

	var matched []string
	for _, cap := range capabilities {
		lowered := strings.ToLower(cap)
		for _, tok := range tokens {
			if strings.Contains(lowered, tok) || strings.Contains(tok, lowered) {
				matched = append(matched, lowered)
				break
			}
		}
	}

	analysis := models.QueryAnalysis{
		RequiredCapabilities: matched,
		Method:               MethodKeyword,
	}
	if len(matched) > 0 {
		analysis.Confidence = 0.5
	}
	return analysis
}

func queryTokens(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '_'
	})
	var tokens []string
	for _, f := range fields {
		if len(f) > 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
