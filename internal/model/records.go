// Package model defines domain types for cwrapped input records and analysis results.
package model

// DailyActivity holds one calendar day's activity from the stats cache.
// Date is unique within the cache.
type DailyActivity struct {
	Date          string `json:"date"` // YYYY-MM-DD
	MessageCount  int    `json:"messageCount"`
	SessionCount  int    `json:"sessionCount"`
	ToolCallCount int    `json:"toolCallCount"`
}

// DailyModelTokens holds one day's token counts keyed by model identifier.
// Sourced independently of DailyActivity; dates may not fully overlap.
type DailyModelTokens struct {
	Date          string           `json:"date"`
	TokensByModel map[string]int64 `json:"tokensByModel"`
}

// StatsCache is the parsed contents of stats-cache.json.
type StatsCache struct {
	DailyActivity    []DailyActivity
	DailyModelTokens []DailyModelTokens
	HourCounts       map[int]int64 // hour of day 0-23 -> count, whole history
	TotalSessions    int
	TotalMessages    int
}

// SessionCost holds the cached cost of one session.
type SessionCost struct {
	SessionID string
	Cost      float64
	Date      string
}

// CostCache is the parsed contents of cost-cache.json.
type CostCache struct {
	Sessions []SessionCost
}

// PromptRecord is one user-issued prompt from history.jsonl.
// Many prompts share a SessionID; ordering is source insertion order.
type PromptRecord struct {
	Display   string
	Timestamp int64 // epoch millis
	Project   string
	SessionID string
}

// ToolInvocation is one Write/Edit/Read tool call extracted from a raw
// session log. Only invocations carrying a file path are recorded.
type ToolInvocation struct {
	Tool       string
	FilePath   string
	SourceFile string // session file the invocation came from
	Timestamp  string // RFC3339, may be empty
}
