package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwrapped/internal/cli"
	"github.com/theirongolddev/cwrapped/internal/config"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Languages ranked by files written and edited",
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	result, err := analyzeData(cfg)
	if err != nil {
		return err
	}

	if len(result.LanguageRanking) == 0 {
		fmt.Println("\n  No Write or Edit tool calls found in range.")
		return nil
	}

	var rows [][]string
	for i, lang := range result.LanguageRanking {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			lang.Name,
			cli.FormatNumber(int64(lang.Count)),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Languages",
		Headers: []string{"#", "Language", "Edits"},
		Rows:    rows,
	}))
	return nil
}
