// Package analyze turns loaded usage records into the single
// AnalysisResult a report is rendered from. All computation is pure:
// the same inputs always produce the same result (phrasing variants
// excepted, which go through the injected picker).
package analyze

import (
	"github.com/theirongolddev/cwrapped/internal/locale"
	"github.com/theirongolddev/cwrapped/internal/model"
	"github.com/theirongolddev/cwrapped/internal/timeframe"
)

// Input is everything the analyzer consumes. Invocations are assumed
// pre-filtered to the range; the cache-backed records are filtered
// here.
type Input struct {
	Stats       *model.StatsCache
	Costs       *model.CostCache
	Prompts     []model.PromptRecord
	Invocations []model.ToolInvocation
}

// Options tune localization and phrasing. Zero-value fields get
// sensible defaults.
type Options struct {
	Locale  *locale.Table
	Pick    locale.Picker
	Phrases PhraseExtractor
}

// Analyze computes the full per-range aggregate.
func Analyze(in Input, r timeframe.Range, opts Options) *model.AnalysisResult {
	if opts.Locale == nil {
		opts.Locale = locale.ForTag("en")
	}
	if opts.Pick == nil {
		opts.Pick = locale.DefaultPicker()
	}
	if opts.Phrases == nil {
		opts.Phrases = JapanesePhrases{}
	}

	activity := timeframe.FilterActivity(in.Stats.DailyActivity, r)
	tokens := timeframe.FilterTokens(in.Stats.DailyModelTokens, r)
	prompts := timeframe.FilterPrompts(in.Prompts, r)

	messages, sessions, _ := sumActivity(activity)
	totalTokens := sumTokens(tokens)
	cost := sumCosts(in.Costs.Sessions, r)

	breakdown := modelBreakdown(tokens)
	topModel := model.ModelShare{Name: "Unknown"}
	if len(breakdown) > 0 {
		topModel = breakdown[0]
	}

	longest, current := computeStreaks(activity, r)
	peak := powerHour(in.Stats.HourCounts)

	insights := analyzePrompts(prompts, opts.Phrases, opts.Locale, opts.Pick)

	hourly := make(map[int]int64, len(in.Stats.HourCounts))
	for hour, count := range in.Stats.HourCounts {
		hourly[hour] = count
	}
	weekly := weeklyDistribution(activity)

	// Sessions-per-day divides by recorded days, not the calendar span,
	// so sparse ranges don't dilute the rate-based persona rules.
	persona := classifyPersona(personaInput{
		Weekly:        weekly,
		Hourly:        hourly,
		TotalSessions: sessions,
		DaysInPeriod:  len(activity),
		Insights:      insights,
		TotalTokens:   totalTokens,
		TotalCost:     cost,
		StreakDays:    longest.Days,
	}, opts.Locale, opts.Pick)

	return &model.AnalysisResult{
		TotalTokens:   totalTokens,
		TotalMessages: messages,
		TotalSessions: sessions,
		EstimatedCost: cost,

		StartDate:  r.FromDate,
		EndDate:    r.ToDate,
		DaysActive: activeDays(activity),

		MostActiveDay:      mostActiveDay(activity),
		WeeklyDistribution: weekly,
		HourlyDistribution: hourly,
		PowerHour:          peak,

		TopModel:       topModel,
		ModelBreakdown: breakdown,

		ProjectBreakdown: projectBreakdown(prompts),
		LanguageRanking:  languageRanking(in.Invocations),

		LongestStreak: longest,
		CurrentStreak: current,

		DailyHeatmap: dailyHeatmap(activity),

		Persona:  persona,
		Insights: insights,

		DetailedStats: detailedStats(len(prompts), totalTokens, insights.CommandCount, peak),
	}
}
