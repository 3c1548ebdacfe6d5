package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwrapped/internal/cli"
	"github.com/theirongolddev/cwrapped/internal/config"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Projects ranked by distinct sessions",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	result, err := analyzeData(cfg)
	if err != nil {
		return err
	}

	if len(result.ProjectBreakdown) == 0 {
		fmt.Println("\n  No prompts with project paths found in range.")
		return nil
	}

	var rows [][]string
	for i, proj := range result.ProjectBreakdown {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			proj.Name,
			cli.FormatNumber(int64(proj.Sessions)),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Projects",
		Headers: []string{"#", "Project", "Sessions"},
		Rows:    rows,
	}))
	return nil
}
