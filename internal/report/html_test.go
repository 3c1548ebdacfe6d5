package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/cwrapped/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		TotalTokens:   1_500_000,
		TotalMessages: 1234,
		TotalSessions: 42,
		EstimatedCost: 87.3,
		StartDate:     "2025-01-01",
		EndDate:       "2025-01-31",
		DaysActive:    20,
		MostActiveDay: model.MostActiveDay{Date: "2025-01-04", MessageCount: 99},
		PowerHour:     model.PowerHour{Hour: 14, Count: 300},
		TopModel:      model.ModelShare{Name: "Claude Opus 4.5", Tokens: 1_000_000, Percentage: 66.7},
		ModelBreakdown: []model.ModelShare{
			{Name: "Claude Opus 4.5", Tokens: 1_000_000, Percentage: 66.7},
			{Name: "Claude Sonnet 3", Tokens: 500_000, Percentage: 33.3},
		},
		WeeklyDistribution: [7]int{5, 30, 20, 25, 18, 22, 8},
		ProjectBreakdown:   []model.ProjectRank{{Name: "cwrapped", Sessions: 12}},
		LanguageRanking:    []model.LanguageRank{{Name: "Go", Count: 80}},
		LongestStreak:      model.Streak{Days: 9, StartDate: "2025-01-02", EndDate: "2025-01-10"},
		CurrentStreak:      3,
		DailyHeatmap: []model.HeatmapDay{
			{Date: "2025-01-01", Count: 0, Level: 0},
			{Date: "2025-01-02", Count: 50, Level: 4},
		},
		Persona: model.Persona{
			Title:    "The Boring Normie",
			Subtitle: "Perfectly balanced, suspiciously normal",
			Icon:     "🎯",
			Traits:   []string{"A person of few words"},
			Roast:    []string{"Nothing to roast."},
			Hype:     []string{"Keep it up."},
		},
		Insights: model.PromptInsights{
			AveragePromptLength: 42.5,
			ThanksCount:         10,
			RetryCount:          3,
			CommandCount:        7,
			Comments:            []string{"one", "two", "three", "four"},
		},
	}
}

func TestRenderContainsSections(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Claude Code Wrapped",
		"1.5M", // abbreviated tokens
		"The Boring Normie",
		"🎯",
		"Claude Opus 4.5",
		"cwrapped",
		"Go",
		"$87", // zero-decimal cost
		"January 1, 2025",
		"Jan 4", // peak day
		"heat-cell l4",
		"Nothing to roast.",
		"Keep it up.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestRenderEscapesPromptText(t *testing.T) {
	result := sampleResult()
	result.Persona.Roast = []string{`<script>alert("x")</script>`}
	var sb strings.Builder
	if err := Render(&sb, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(sb.String(), "<script>alert") {
		t.Fatal("roast text was not HTML-escaped")
	}
}

func TestRenderCapsComments(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, sampleResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(sb.String(), "four") {
		t.Fatal("comments beyond the first three should be dropped")
	}
}

func TestRenderEmptyResult(t *testing.T) {
	var sb strings.Builder
	empty := &model.AnalysisResult{StartDate: "2025-01-01", EndDate: "2025-01-31"}
	if err := Render(&sb, empty); err != nil {
		t.Fatalf("Render on empty result: %v", err)
	}
	if !strings.Contains(sb.String(), "No data") {
		t.Fatal("empty rankings should render the no-data placeholder")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "wrapped.html")
	if err := WriteFile(path, sampleResult()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "Claude Code Wrapped") {
		t.Fatal("written report missing brand header")
	}
}

func TestBuildPageWeeklyBars(t *testing.T) {
	p := buildPage(sampleResult(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	if len(p.WeeklyBars) != 7 {
		t.Fatalf("len(WeeklyBars) = %d, want 7", len(p.WeeklyBars))
	}
	if p.WeeklyBars[1].Pct != 100 {
		t.Errorf("Monday pct = %d, want 100 (max day)", p.WeeklyBars[1].Pct)
	}
	if p.WeeklyBars[0].Day != "Sun" || p.WeeklyBars[6].Day != "Sat" {
		t.Errorf("weekday labels = %v", p.WeeklyBars)
	}
	if p.GeneratedAt != "2025-02-01" {
		t.Errorf("GeneratedAt = %q", p.GeneratedAt)
	}
}
