// Package pipeline orchestrates loading of the four input sources and
// extraction of tool invocations from raw session files.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/theirongolddev/cwrapped/internal/model"
	"github.com/theirongolddev/cwrapped/internal/source"
	"github.com/theirongolddev/cwrapped/internal/store"
	"github.com/theirongolddev/cwrapped/internal/timeframe"
)

// LoadResult holds everything the analyzer needs, plus load diagnostics.
type LoadResult struct {
	Stats       *model.StatsCache
	Costs       *model.CostCache
	Prompts     []model.PromptRecord
	Invocations []model.ToolInvocation

	TotalFiles  int
	ParsedFiles int
	ParseErrors int
	FileErrors  int
	CacheHits   int
	Reparsed    int
}

// ProgressFunc is called during session parsing to report progress.
type ProgressFunc func(current, total int)

// Load reads the stats cache, cost cache, prompt history, and session
// files. The four sources load concurrently; a failure in any of the
// three cache/history sources fails the whole run (there is no
// partial-report mode). When cache is non-nil, session files whose
// mtime and size are unchanged come from the cache instead of being
// reparsed.
func Load(claudeDir string, r timeframe.Range, cache *store.Cache, progressFn ProgressFunc) (*LoadResult, error) {
	var (
		wg      sync.WaitGroup
		stats   *model.StatsCache
		costs   *model.CostCache
		history source.HistoryResult
		tools   *toolLoadResult

		statsErr, costsErr, historyErr, toolsErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		stats, statsErr = source.LoadStatsCache(source.StatsCachePath(claudeDir))
	}()
	go func() {
		defer wg.Done()
		costs, costsErr = source.LoadCostCache(source.CostCachePath(claudeDir))
	}()
	go func() {
		defer wg.Done()
		history, historyErr = source.LoadHistory(source.HistoryPath(claudeDir))
	}()
	go func() {
		defer wg.Done()
		tools, toolsErr = loadToolUses(claudeDir, cache, progressFn)
	}()
	wg.Wait()

	for _, err := range []error{statsErr, costsErr, historyErr, toolsErr} {
		if err != nil {
			return nil, err
		}
	}

	return &LoadResult{
		Stats:       stats,
		Costs:       costs,
		Prompts:     history.Prompts,
		Invocations: filterInvocations(tools.invocations, r),
		TotalFiles:  tools.totalFiles,
		ParsedFiles: tools.parsedFiles,
		ParseErrors: tools.parseErrors + history.ParseErrors,
		FileErrors:  tools.fileErrors,
		CacheHits:   tools.cacheHits,
		Reparsed:    tools.reparsed,
	}, nil
}

// filterInvocations keeps invocations whose timestamp falls in range.
// Invocations without a parseable timestamp are kept; the range cannot
// rule them out.
func filterInvocations(invs []model.ToolInvocation, r timeframe.Range) []model.ToolInvocation {
	var out []model.ToolInvocation
	for _, inv := range invs {
		if inv.Timestamp != "" {
			ts, err := time.Parse(time.RFC3339Nano, inv.Timestamp)
			if err == nil && !r.ContainsTime(ts) {
				continue
			}
		}
		out = append(out, inv)
	}
	return out
}

type toolLoadResult struct {
	invocations []model.ToolInvocation
	totalFiles  int
	parsedFiles int
	parseErrors int
	fileErrors  int
	cacheHits   int
	reparsed    int
}

// loadToolUses discovers session files and extracts tool invocations,
// using the cache to skip files whose mtime and size are unchanged.
func loadToolUses(claudeDir string, cache *store.Cache, progressFn ProgressFunc) (*toolLoadResult, error) {
	files, err := source.ScanDir(claudeDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", claudeDir, err)
	}

	result := &toolLoadResult{totalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	// Diff against the cache: unchanged files load from SQLite.
	var toParse []source.DiscoveredFile
	var unchanged []string
	if cache != nil {
		tracked, err := cache.GetTrackedFiles()
		if err != nil {
			return nil, fmt.Errorf("reading cache: %w", err)
		}
		for _, f := range files {
			info, err := os.Stat(f.Path)
			if err != nil {
				result.fileErrors++
				continue
			}
			cached, ok := tracked[f.Path]
			if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
				unchanged = append(unchanged, f.Path)
			} else {
				toParse = append(toParse, f)
			}
		}
	} else {
		toParse = files
	}

	result.cacheHits = len(unchanged)
	result.reparsed = len(toParse)

	if len(unchanged) > 0 {
		cached, err := cache.LoadFiles(unchanged)
		if err != nil {
			return nil, fmt.Errorf("loading cached invocations: %w", err)
		}
		result.invocations = append(result.invocations, cached...)
		result.parsedFiles += len(unchanged)
	}

	if len(toParse) == 0 {
		return result, nil
	}

	// Parallel parsing with a bounded worker pool.
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(toParse) {
		numWorkers = len(toParse)
	}

	work := make(chan int, len(toParse))
	results := make([]source.ParseResult, len(toParse))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range toParse {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseFile(toParse[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n)+result.cacheHits, result.totalFiles)
				}
			}
		}()
	}
	wg.Wait()

	for i, pr := range results {
		if pr.Err != nil {
			result.fileErrors++
			continue
		}
		result.parsedFiles++
		result.parseErrors += pr.ParseErrors
		result.invocations = append(result.invocations, pr.Invocations...)

		if cache != nil {
			info, err := os.Stat(toParse[i].Path)
			if err == nil {
				_ = cache.SaveFile(toParse[i].Path, pr.Invocations, info.ModTime().UnixNano(), info.Size())
			}
		}
	}

	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cwrapped")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "cwrapped")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "tooluse.db")
}
