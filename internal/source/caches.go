// Package source reads the Claude Code data directory: the stats and
// cost caches, the prompt history log, and raw session JSONL files.
package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/theirongolddev/cwrapped/internal/model"
)

// StatsCachePath returns the stats cache location under the data dir.
func StatsCachePath(claudeDir string) string {
	return filepath.Join(claudeDir, "stats-cache.json")
}

// CostCachePath returns the cost cache location under the data dir.
func CostCachePath(claudeDir string) string {
	return filepath.Join(claudeDir, "cost-cache.json")
}

// HistoryPath returns the prompt history location under the data dir.
func HistoryPath(claudeDir string) string {
	return filepath.Join(claudeDir, "history.jsonl")
}

// LoadStatsCache reads and parses stats-cache.json. A missing or
// unreadable file is fatal for the run.
func LoadStatsCache(path string) (*model.StatsCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stats cache: %w", err)
	}

	var raw rawStatsCache
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing stats cache %s: %w", path, err)
	}

	sc := &model.StatsCache{
		TotalSessions: raw.TotalSessions,
		TotalMessages: raw.TotalMessages,
		HourCounts:    make(map[int]int64, len(raw.HourCounts)),
	}
	for _, d := range raw.DailyActivity {
		sc.DailyActivity = append(sc.DailyActivity, model.DailyActivity{
			Date:          d.Date,
			MessageCount:  d.MessageCount,
			SessionCount:  d.SessionCount,
			ToolCallCount: d.ToolCallCount,
		})
	}
	for _, d := range raw.DailyModelTokens {
		sc.DailyModelTokens = append(sc.DailyModelTokens, model.DailyModelTokens{
			Date:          d.Date,
			TokensByModel: d.TokensByModel,
		})
	}
	for hourStr, count := range raw.HourCounts {
		hour, err := strconv.Atoi(hourStr)
		if err != nil || hour < 0 || hour > 23 {
			continue
		}
		sc.HourCounts[hour] = count
	}

	return sc, nil
}

// LoadCostCache reads and parses cost-cache.json. Only the _sessions
// map is consumed; the per-month rollup keys are ignored. Session
// entries are returned sorted by session ID so output is deterministic.
func LoadCostCache(path string) (*model.CostCache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cost cache: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parsing cost cache %s: %w", path, err)
	}

	cc := &model.CostCache{}
	sessionsRaw, ok := top["_sessions"]
	if !ok {
		return cc, nil
	}

	var sessions map[string]rawSessionCost
	if err := json.Unmarshal(sessionsRaw, &sessions); err != nil {
		return nil, fmt.Errorf("parsing cost cache sessions: %w", err)
	}

	ids := make([]string, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s := sessions[id]
		if s.Date == "" {
			continue
		}
		cc.Sessions = append(cc.Sessions, model.SessionCost{
			SessionID: id,
			Cost:      s.Cost,
			Date:      s.Date,
		})
	}

	return cc, nil
}

// HistoryResult holds the prompt log plus a count of dropped lines.
type HistoryResult struct {
	Prompts     []model.PromptRecord
	ParseErrors int
}

// LoadHistory reads history.jsonl line-wise. Malformed lines are
// dropped and counted; a missing or unreadable file is fatal.
func LoadHistory(path string) (HistoryResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("reading history: %w", err)
	}
	defer func() { _ = f.Close() }()

	var result HistoryResult

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry rawHistoryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			result.ParseErrors++
			continue
		}
		result.Prompts = append(result.Prompts, model.PromptRecord{
			Display:   entry.Display,
			Timestamp: entry.Timestamp,
			Project:   entry.Project,
			SessionID: entry.SessionID,
		})
	}
	if err := scanner.Err(); err != nil {
		return HistoryResult{}, fmt.Errorf("scanning history: %w", err)
	}

	return result, nil
}
