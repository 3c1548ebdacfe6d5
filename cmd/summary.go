package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwrapped/internal/cli"
	"github.com/theirongolddev/cwrapped/internal/config"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Usage summary in the terminal",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	result, err := analyzeData(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CLAUDE CODE WRAPPED  %s ~ %s", result.StartDate, result.EndDate)))
	fmt.Println()

	rows := [][]string{
		{"Tokens", cli.FormatTokens(result.TotalTokens)},
		{"Messages", cli.FormatNumber(int64(result.TotalMessages))},
		{"Sessions", cli.FormatNumber(int64(result.TotalSessions))},
		{"Days Active", fmt.Sprintf("%d", result.DaysActive)},
		{"Est. Cost", cli.FormatCost(result.EstimatedCost)},
		{"---"},
		{"Longest Streak", fmt.Sprintf("%dd", result.LongestStreak.Days)},
		{"Current Streak", fmt.Sprintf("%dd", result.CurrentStreak)},
		{"Power Hour", cli.FormatHour(result.PowerHour.Hour)},
		{"Most Active Day", fmt.Sprintf("%s (%d msgs)", result.MostActiveDay.Date, result.MostActiveDay.MessageCount)},
	}
	if result.TopModel.Name != "" {
		rows = append(rows,
			[]string{"---"},
			[]string{"Top Model", fmt.Sprintf("%s (%s)", result.TopModel.Name, cli.FormatPercent(result.TopModel.Percentage))},
		)
	}
	fmt.Println(cli.RenderTable(cli.Table{Headers: []string{"Metric", "Value"}, Rows: rows}))

	// weekly rhythm as horizontal bars
	fmt.Println("  " + cli.RenderMuted("Weekly rhythm"))
	maxWeekly := 0
	for _, n := range result.WeeklyDistribution {
		if n > maxWeekly {
			maxWeekly = n
		}
	}
	for day, n := range result.WeeklyDistribution {
		fmt.Println(cli.RenderHorizontalBar(cli.FormatDayOfWeek(day), float64(n), float64(maxWeekly), 36))
	}
	fmt.Println()

	// hourly rhythm as a sparkline
	hours := make([]float64, 24)
	for hour, count := range result.HourlyDistribution {
		if hour >= 0 && hour < 24 {
			hours[hour] = float64(count)
		}
	}
	fmt.Println("  " + cli.RenderMuted("Hourly rhythm (0-23)"))
	fmt.Println("  " + cli.RenderSparkline(hours))
	fmt.Println()

	return nil
}
