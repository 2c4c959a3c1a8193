package models

// QueryAnalysis is the outcome of analyzing a user query, either by an LLM
// provider or by the keyword fallback.
type QueryAnalysis struct {
	RequiredCapabilities []string `json:"required_capabilities"`
	Confidence           float64  `json:"confidence"`
	Reasoning            string   `json:"reasoning,omitempty"`
	Method               string   `json:"method,omitempty"` // "llm" or "keyword"
}

// RouteResult is the public result of routing a query.
type RouteResult struct {
	Query           string   `json:"query"`
	SelectedServers []string `json:"selected_servers"`
	Confidence      float64  `json:"confidence"`
	Error           string   `json:"error,omitempty"`
}
