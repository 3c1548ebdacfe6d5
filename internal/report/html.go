// Package report renders an AnalysisResult into a standalone HTML
// page. The output is a single self-contained file with inline styles,
// suitable for opening straight from disk.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/cwrapped/internal/cli"
	"github.com/theirongolddev/cwrapped/internal/model"
)

//go:embed template.html
var templateFS embed.FS

var page = template.Must(template.New("template.html").Funcs(template.FuncMap{
	"tokens":    cli.FormatTokens,
	"add1":      func(i int) int { return i + 1 },
	"titlecase": titleCase,
	"longDate":  longDate,
}).ParseFS(templateFS, "template.html"))

// StatTile is one cell of the header stats block.
type StatTile struct {
	Value string
	Label string
	Warn  bool
}

// WeekBar is one weekday column of the weekly chart.
type WeekBar struct {
	Day string
	Pct int
}

// Page is the template's view model. Everything needing computation
// beyond simple field access is resolved here, not in the template.
type Page struct {
	Result      *model.AnalysisResult
	StatsRow1   []StatTile
	StatsRow2   []StatTile
	WeeklyBars  []WeekBar
	Comments    []string
	GeneratedAt string
}

// Render writes the full HTML document for a result.
func Render(w io.Writer, result *model.AnalysisResult) error {
	return page.Execute(w, buildPage(result, time.Now()))
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(path string, result *model.AnalysisResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := Render(f, result); err != nil {
		f.Close()
		return fmt.Errorf("rendering report: %w", err)
	}
	return f.Close()
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func buildPage(result *model.AnalysisResult, now time.Time) *Page {
	p := &Page{
		Result:      result,
		GeneratedAt: now.UTC().Format("2006-01-02"),
	}

	p.StatsRow1 = []StatTile{
		{Value: cli.FormatTokens(result.TotalTokens), Label: "tokens"},
		{Value: cli.FormatNumber(int64(result.TotalMessages)), Label: "msgs"},
		{Value: fmt.Sprintf("%d", result.TotalSessions), Label: "sessions"},
		{Value: fmt.Sprintf("%d", result.DaysActive), Label: "days"},
		{Value: fmt.Sprintf("$%.0f", result.EstimatedCost), Label: "cost", Warn: true},
	}
	p.StatsRow2 = []StatTile{
		{Value: fmt.Sprintf("%dd", result.LongestStreak.Days), Label: "streak"},
		{Value: fmt.Sprintf("%d:00", result.PowerHour.Hour), Label: "power hr"},
		{Value: shortDate(result.MostActiveDay.Date), Label: "peak"},
		{Value: fmt.Sprintf("%.0f", result.Insights.AveragePromptLength), Label: "avg len"},
		{Value: fmt.Sprintf("%d", result.Insights.CommandCount), Label: "cmds"},
	}

	maxWeekly := 1
	for _, n := range result.WeeklyDistribution {
		if n > maxWeekly {
			maxWeekly = n
		}
	}
	for i, n := range result.WeeklyDistribution {
		p.WeeklyBars = append(p.WeeklyBars, WeekBar{
			Day: weekdayLabels[i],
			Pct: n * 100 / maxWeekly,
		})
	}

	p.Comments = result.Insights.Comments
	if len(p.Comments) > 3 {
		p.Comments = p.Comments[:3]
	}
	return p
}

// shortDate renders "2025-01-04" as "Jan 4"; unparseable input passes
// through so a bad date never hides the rest of the report.
func shortDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

func longDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
