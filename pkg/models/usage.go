package models

import "time"

// UsageRecord is one append-only record of a tool invocation.
type UsageRecord struct {
	ServerID  string    `json:"server_id"`
	ToolName  string    `json:"tool_name"`
	StartedAt time.Time `json:"timestamp"`
	Duration  float64   `json:"duration"`
	Succeeded bool      `json:"success"`
}

// UsageStats aggregates usage records for one server over a window.
type UsageStats struct {
	ServerID    string         `json:"server_id"`
	WindowDays  int            `json:"window_days"`
	TotalCalls  int            `json:"total_calls"`
	SuccessRate float64        `json:"success_rate"`
	AvgDuration float64        `json:"avg_duration"`
	ByTool      map[string]int `json:"by_tool,omitempty"`
	LastUsedAt  time.Time      `json:"last_used_at,omitempty"`
}
