package analyze

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/cwrapped/internal/model"
	"github.com/theirongolddev/cwrapped/internal/timeframe"
)

func sumActivity(activity []model.DailyActivity) (messages, sessions, toolCalls int) {
	for _, day := range activity {
		messages += day.MessageCount
		sessions += day.SessionCount
		toolCalls += day.ToolCallCount
	}
	return messages, sessions, toolCalls
}

// activeDays counts records that saw at least one session. Days logged
// with zero sessions are not active days.
func activeDays(activity []model.DailyActivity) int {
	n := 0
	for _, day := range activity {
		if day.SessionCount > 0 {
			n++
		}
	}
	return n
}

func sumTokens(tokens []model.DailyModelTokens) int64 {
	var total int64
	for _, day := range tokens {
		for _, n := range day.TokensByModel {
			total += n
		}
	}
	return total
}

func sumCosts(costs []model.SessionCost, r timeframe.Range) float64 {
	var total float64
	for _, s := range costs {
		if r.ContainsDate(s.Date) {
			total += s.Cost
		}
	}
	return total
}

// mostActiveDay returns the earliest day holding the strict maximum
// message count. Ties keep the first day seen; an all-zero set keeps
// the empty sentinel.
func mostActiveDay(activity []model.DailyActivity) model.MostActiveDay {
	var best model.MostActiveDay
	for _, day := range activity {
		if day.MessageCount > best.MessageCount {
			best = model.MostActiveDay{Date: day.Date, MessageCount: day.MessageCount}
		}
	}
	return best
}

// weeklyDistribution buckets message counts by weekday, 0=Sunday.
func weeklyDistribution(activity []model.DailyActivity) [7]int {
	var dist [7]int
	for _, day := range activity {
		t, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		dist[int(t.Weekday())] += day.MessageCount
	}
	return dist
}

// powerHour scans hours 0..23 in order and keeps the first strict
// maximum, so an all-zero table yields hour 0.
func powerHour(hourCounts map[int]int64) model.PowerHour {
	best := model.PowerHour{Hour: 0, Count: 0}
	for hour := 0; hour < 24; hour++ {
		if count := hourCounts[hour]; count > best.Count {
			best = model.PowerHour{Hour: hour, Count: count}
		}
	}
	return best
}

var modelNameRe = regexp.MustCompile(`claude-(\w+)-(\d+)-?(\d+)?`)

// formatModelName turns a raw model id like "claude-opus-4-5-20251101"
// into "Claude Opus 4.5". Ids that don't match the known shape pass
// through unchanged.
func formatModelName(id string) string {
	m := modelNameRe.FindStringSubmatch(id)
	if m == nil {
		return id
	}
	family := strings.ToUpper(m[1][:1]) + m[1][1:]
	version := m[2]
	if m[3] != "" {
		version += "." + m[3]
	}
	return fmt.Sprintf("Claude %s %s", family, version)
}

// modelBreakdown sums tokens per model over the filtered days and
// returns shares sorted by tokens descending, name ascending on ties.
func modelBreakdown(tokens []model.DailyModelTokens) []model.ModelShare {
	byModel := make(map[string]int64)
	var total int64
	for _, day := range tokens {
		for id, n := range day.TokensByModel {
			byModel[formatModelName(id)] += n
			total += n
		}
	}

	shares := make([]model.ModelShare, 0, len(byModel))
	for name, n := range byModel {
		share := model.ModelShare{Name: name, Tokens: n}
		if total > 0 {
			share.Percentage = float64(n) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Tokens != shares[j].Tokens {
			return shares[i].Tokens > shares[j].Tokens
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// computeStreaks finds the longest run of consecutive days with at
// least one session, and the current streak anchored at the range end
// walking backward. A day recorded with zero sessions breaks a run.
func computeStreaks(activity []model.DailyActivity, r timeframe.Range) (model.Streak, int) {
	dates := make([]time.Time, 0, len(activity))
	active := make(map[string]bool, len(activity))
	for _, day := range activity {
		if day.SessionCount < 1 {
			continue
		}
		t, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		dates = append(dates, t)
		active[day.Date] = true
	}
	if len(dates) == 0 {
		return model.Streak{}, 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest := model.Streak{Days: 1, StartDate: dates[0].Format("2006-01-02"), EndDate: dates[0].Format("2006-01-02")}
	runStart := dates[0]
	runLen := 1
	for i := 1; i < len(dates); i++ {
		gap := int(dates[i].Sub(dates[i-1]).Hours() / 24)
		switch {
		case gap == 0:
			continue // duplicate date
		case gap == 1:
			runLen++
		default:
			if runLen > longest.Days {
				longest = model.Streak{
					Days:      runLen,
					StartDate: runStart.Format("2006-01-02"),
					EndDate:   dates[i-1].Format("2006-01-02"),
				}
			}
			runStart = dates[i]
			runLen = 1
		}
	}
	if runLen > longest.Days {
		longest = model.Streak{
			Days:      runLen,
			StartDate: runStart.Format("2006-01-02"),
			EndDate:   dates[len(dates)-1].Format("2006-01-02"),
		}
	}

	current := 0
	for day := r.To.Truncate(24 * time.Hour); active[day.Format("2006-01-02")]; day = day.AddDate(0, 0, -1) {
		current++
	}
	return longest, current
}

// dailyHeatmap emits one entry per activity record with a level in
// [0,4] normalized against the busiest day. Days without a record get
// no entry.
func dailyHeatmap(activity []model.DailyActivity) []model.HeatmapDay {
	maxCount := 0
	for _, day := range activity {
		if day.MessageCount > maxCount {
			maxCount = day.MessageCount
		}
	}
	if maxCount < 1 {
		maxCount = 1
	}

	var days []model.HeatmapDay
	for _, day := range activity {
		level := 0
		if day.MessageCount > 0 {
			level = int(math.Ceil(float64(day.MessageCount) / float64(maxCount) * 4))
			if level > 4 {
				level = 4
			}
		}
		days = append(days, model.HeatmapDay{Date: day.Date, Count: day.MessageCount, Level: level})
	}
	return days
}

// projectBreakdown ranks projects by distinct sessions seen in the
// prompt log. Project names are the final path segment; records with
// no project fall under "Unknown" and a blank session ID still counts
// as one key. The top five survive. Cost stays zero, per-project
// attribution is out of scope.
func projectBreakdown(prompts []model.PromptRecord) []model.ProjectRank {
	sessions := make(map[string]map[string]bool)
	for _, p := range prompts {
		name := "Unknown"
		if p.Project != "" {
			name = projectName(p.Project)
		}
		if sessions[name] == nil {
			sessions[name] = make(map[string]bool)
		}
		sessions[name][p.SessionID] = true
	}

	ranks := make([]model.ProjectRank, 0, len(sessions))
	for name, ids := range sessions {
		ranks = append(ranks, model.ProjectRank{Name: name, Sessions: len(ids)})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Sessions != ranks[j].Sessions {
			return ranks[i].Sessions > ranks[j].Sessions
		}
		return ranks[i].Name < ranks[j].Name
	})
	if len(ranks) > 5 {
		ranks = ranks[:5]
	}
	return ranks
}

func projectName(path string) string {
	path = strings.TrimRight(path, "/\\")
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// detailedStats derives the rough-estimate block. Code lines and files
// created are heuristics off token volume and slash-command counts, not
// measurements.
func detailedStats(promptCount int, totalTokens int64, commandCount int, peak model.PowerHour) model.DetailedStats {
	return model.DetailedStats{
		PromptCount:  promptCount,
		CodeLines:    int(totalTokens / 4),
		FilesCreated: int(float64(commandCount) * 0.3),
		PeakHour:     peak.Hour,
	}
}
