package source

// rawStatsCache mirrors the on-disk shape of stats-cache.json.
type rawStatsCache struct {
	Version          int                `json:"version"`
	DailyActivity    []rawDailyActivity `json:"dailyActivity"`
	DailyModelTokens []rawDailyTokens   `json:"dailyModelTokens"`
	HourCounts       map[string]int64   `json:"hourCounts"`
	TotalSessions    int                `json:"totalSessions"`
	TotalMessages    int                `json:"totalMessages"`
}

type rawDailyActivity struct {
	Date          string `json:"date"`
	MessageCount  int    `json:"messageCount"`
	SessionCount  int    `json:"sessionCount"`
	ToolCallCount int    `json:"toolCallCount"`
}

type rawDailyTokens struct {
	Date          string           `json:"date"`
	TokensByModel map[string]int64 `json:"tokensByModel"`
}

// rawSessionCost is one value in the cost cache's _sessions map.
type rawSessionCost struct {
	Cost float64 `json:"cost"`
	Date string  `json:"date"`
}

// rawHistoryEntry is one line of history.jsonl.
type rawHistoryEntry struct {
	Display   string `json:"display"`
	Timestamp int64  `json:"timestamp"`
	Project   string `json:"project"`
	SessionID string `json:"sessionId"`
}

// rawSessionEntry is one line of a raw session JSONL file, narrowed to
// the fields the tool-invocation extractor needs.
type rawSessionEntry struct {
	Type      string      `json:"type"`
	Timestamp string      `json:"timestamp,omitempty"`
	Message   *rawMessage `json:"message,omitempty"`
}

type rawMessage struct {
	Content []rawContentItem `json:"content,omitempty"`
}

type rawContentItem struct {
	Type  string         `json:"type"`
	Name  string         `json:"name,omitempty"`
	Input *rawToolInput  `json:"input,omitempty"`
}

type rawToolInput struct {
	FilePath string `json:"file_path,omitempty"`
}

// DiscoveredFile represents a session JSONL file found during scanning.
type DiscoveredFile struct {
	Path      string
	Project   string // raw project directory name
	SessionID string // extracted from filename
}
