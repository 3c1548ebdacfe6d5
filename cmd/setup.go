package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwrapped/internal/config"
	"github.com/theirongolddev/cwrapped/internal/source"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to cwrapped!")
	if files, err := source.ScanDir(dataDir(cfg)); err == nil && len(files) > 0 {
		fmt.Printf("  Found %d session files in %s\n", len(files), dataDir(cfg))
	}
	fmt.Println()

	days := cfg.General.DefaultDays
	localeTag := cfg.General.Locale
	claudeDir := cfg.General.ClaudeDir
	outputDir := cfg.Report.OutputDir
	openBrowser := cfg.Report.OpenBrowser

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default time range").
				Options(
					huh.NewOption("7 days", 7),
					huh.NewOption("30 days", 30),
					huh.NewOption("90 days", 90),
					huh.NewOption("365 days", 365),
				).
				Value(&days),
			huh.NewSelect[string]().
				Title("Report language").
				Options(
					huh.NewOption("Auto-detect", ""),
					huh.NewOption("English", "en"),
					huh.NewOption("日本語", "ja"),
				).
				Value(&localeTag),
			huh.NewInput().
				Title("Claude data directory").
				Description("Leave blank for ~/.claude").
				Value(&claudeDir),
			huh.NewInput().
				Title("Report output directory").
				Description("Leave blank for the current directory").
				Value(&outputDir),
			huh.NewConfirm().
				Title("Open reports in the browser automatically?").
				Value(&openBrowser),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.General.DefaultDays = days
	cfg.General.Locale = localeTag
	cfg.General.ClaudeDir = claudeDir
	cfg.Report.OutputDir = outputDir
	cfg.Report.OpenBrowser = openBrowser

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `cwrapped setup` anytime to reconfigure.")
	return nil
}
