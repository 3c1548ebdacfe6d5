package model

// MostActiveDay is the day with the highest message count in range.
type MostActiveDay struct {
	Date         string
	MessageCount int
}

// PowerHour is the hour of day with the highest cumulative activity
// across the whole cached history.
type PowerHour struct {
	Hour  int
	Count int64
}

// ModelShare holds one model's slice of the token total.
type ModelShare struct {
	Name       string // display name, e.g. "Claude Opus 4.5"
	Tokens     int64
	Percentage float64
}

// ProjectRank holds one project's distinct-session count.
// Cost is always 0: per-project cost attribution is not computed.
type ProjectRank struct {
	Name     string
	Sessions int
	Cost     float64
}

// LanguageRank holds one resolved language label and its Write/Edit count.
type LanguageRank struct {
	Name  string
	Count int
}

// Streak is a maximal run of consecutive calendar days with sessions.
type Streak struct {
	Days      int
	StartDate string
	EndDate   string
}

// HeatmapDay is one day's normalized activity level for the heatmap.
// Level is always in [0,4]; the busiest day in range gets 4.
type HeatmapDay struct {
	Date  string
	Count int
	Level int
}

// PromptSignal holds a recurring phrase and how often it appeared.
type PromptSignal struct {
	Phrase string
	Count  int
}

// PromptExtreme is the longest or shortest prompt by character length.
type PromptExtreme struct {
	Text   string
	Length int
}

// PromptInsights is the Text-Pattern Analyzer output over the filtered
// prompt log.
type PromptInsights struct {
	AveragePromptLength float64
	LongestPrompt       PromptExtreme
	ShortestPrompt      PromptExtreme
	ThanksCount         int
	RetryCount          int
	QuestionCount       int
	CommandCount        int
	UltrathinkCount     int
	CasualCount         int
	TopPhrases          []PromptSignal
	TechnicalTerms      []string
	Comments            []string
}

// Persona is the discrete usage classification plus its flavor text.
type Persona struct {
	Title    string
	Subtitle string
	Icon     string
	Traits   []string // at most 4
	Roast    []string // at most 4
	Hype     []string // at most 4
}

// DetailedStats holds the small derived-estimate block of the report.
// CodeLines and FilesCreated are rough estimates, not measurements.
type DetailedStats struct {
	PromptCount  int
	CodeLines    int
	FilesCreated int
	PeakHour     int
}

// AnalysisResult is the single aggregate produced per run and handed
// directly to rendering. No field is mutated after construction.
type AnalysisResult struct {
	TotalTokens   int64
	TotalMessages int
	TotalSessions int
	EstimatedCost float64

	StartDate  string
	EndDate    string
	DaysActive int

	MostActiveDay      MostActiveDay
	WeeklyDistribution [7]int // 0=Sunday .. 6=Saturday, message counts
	HourlyDistribution map[int]int64
	PowerHour          PowerHour

	TopModel       ModelShare
	ModelBreakdown []ModelShare

	ProjectBreakdown []ProjectRank
	LanguageRanking  []LanguageRank

	LongestStreak Streak
	CurrentStreak int

	DailyHeatmap []HeatmapDay

	Persona  Persona
	Insights PromptInsights

	DetailedStats DetailedStats
}
