package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cwrapped/internal/analyze"
	"github.com/theirongolddev/cwrapped/internal/config"
	"github.com/theirongolddev/cwrapped/internal/locale"
	"github.com/theirongolddev/cwrapped/internal/model"
	"github.com/theirongolddev/cwrapped/internal/pipeline"
	"github.com/theirongolddev/cwrapped/internal/report"
	"github.com/theirongolddev/cwrapped/internal/store"
	"github.com/theirongolddev/cwrapped/internal/timeframe"
)

var (
	flagFrom    string
	flagTo      string
	flagMonth   string
	flagYear    string
	flagDays    int
	flagLang    string
	flagDataDir string
	flagOutput  string
	flagNoCache bool
	flagQuiet   bool
	flagOpen    bool
)

var rootCmd = &cobra.Command{
	Use:   "cwrapped",
	Short: "Claude Code usage wrapped",
	Long:  "Turn your local Claude Code logs into a yearly-recap style report: streaks, personas, language rankings, and an HTML page to share.",
	RunE:  runReport,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Range start (YYYY-MM-DD), requires --to")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Range end (YYYY-MM-DD), requires --from")
	rootCmd.PersistentFlags().StringVar(&flagMonth, "month", "", "Whole month (YYYY-MM)")
	rootCmd.PersistentFlags().StringVar(&flagYear, "year", "", "Whole year (YYYY)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Trailing window in days (default from config, 30)")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "Report language (en, ja; default auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Claude data directory (default ~/.claude)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "HTML output path (default <output_dir>/wrapped-<from>-<to>.html)")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "Open the report in a browser after writing")
}

// resolveRange applies the flag precedence on top of config defaults.
func resolveRange(cfg config.Config) (timeframe.Range, error) {
	if (flagFrom == "") != (flagTo == "") {
		return timeframe.Range{}, fmt.Errorf("--from and --to must be given together")
	}
	days := flagDays
	if days <= 0 {
		days = cfg.General.DefaultDays
	}
	span := timeframe.Span{
		From:  flagFrom,
		To:    flagTo,
		Month: flagMonth,
		Year:  flagYear,
		Days:  days,
	}
	return span.Resolve(time.Now())
}

func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.ClaudeDir(cfg)
}

// loadData is the shared load path for every command. The SQLite tool
// cache is best-effort: if it cannot be opened the run degrades to a
// full reparse.
func loadData(cfg config.Config, r timeframe.Range) (*pipeline.LoadResult, error) {
	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%100 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing sessions [%d/%d]", current, total)
		}
	}

	var cache *store.Cache
	if !flagNoCache {
		c, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			cache = c
			defer cache.Close()
		}
	}

	result, err := pipeline.Load(dataDir(cfg), r, cache, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  %d session files (%d cached, %d parsed)    \n",
			result.TotalFiles, result.CacheHits, result.Reparsed)
	}
	return result, nil
}

// analyzeData runs the load + analysis pipeline shared by all commands.
func analyzeData(cfg config.Config) (*model.AnalysisResult, error) {
	r, err := resolveRange(cfg)
	if err != nil {
		return nil, err
	}

	loaded, err := loadData(cfg, r)
	if err != nil {
		return nil, err
	}

	lang := flagLang
	if lang == "" {
		lang = cfg.General.Locale
	}
	tag := locale.Detect(lang)

	result := analyze.Analyze(analyze.Input{
		Stats:       loaded.Stats,
		Costs:       loaded.Costs,
		Prompts:     loaded.Prompts,
		Invocations: loaded.Invocations,
	}, r, analyze.Options{
		Locale: locale.ForTag(tag),
	})
	return result, nil
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	result, err := analyzeData(cfg)
	if err != nil {
		return err
	}

	path := flagOutput
	if path == "" {
		dir := cfg.Report.OutputDir
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, fmt.Sprintf("wrapped-%s-%s.html", result.StartDate, result.EndDate))
	}

	if err := report.WriteFile(path, result); err != nil {
		return err
	}
	fmt.Printf("  Report written to %s\n", path)

	if flagOpen || cfg.Report.OpenBrowser {
		if err := openBrowser(path); err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Could not open browser: %v\n", err)
		}
	}
	return nil
}

func openBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", abs).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", abs).Start()
	default:
		return exec.Command("xdg-open", abs).Start()
	}
}
