package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwrapped/internal/cli"
	"github.com/theirongolddev/cwrapped/internal/config"
)

var personaCmd = &cobra.Command{
	Use:   "persona",
	Short: "Your usage persona, roasts included",
	RunE:  runPersona,
}

func init() {
	rootCmd.AddCommand(personaCmd)
}

func runPersona(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	result, err := analyzeData(cfg)
	if err != nil {
		return err
	}
	p := result.Persona

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", p.Icon, p.Title)))
	fmt.Println("  " + cli.RenderMuted(p.Subtitle))
	fmt.Println()

	if len(p.Traits) > 0 {
		for _, trait := range p.Traits {
			fmt.Printf("  • %s\n", trait)
		}
		fmt.Println()
	}

	for _, line := range p.Roast {
		fmt.Println(cli.RenderRoast(line))
	}
	fmt.Println()
	for _, line := range p.Hype {
		fmt.Println(cli.RenderHype(line))
	}
	fmt.Println()

	for _, comment := range result.Insights.Comments {
		fmt.Println("  " + cli.RenderMuted(comment))
	}
	fmt.Println()

	return nil
}
