package source

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadStatsCache(t *testing.T) {
	path := writeFile(t, "stats-cache.json", `{
		"version": 1,
		"dailyActivity": [
			{"date":"2025-01-01","messageCount":5,"sessionCount":1,"toolCallCount":10},
			{"date":"2025-01-02","messageCount":3,"sessionCount":2,"toolCallCount":4}
		],
		"dailyModelTokens": [
			{"date":"2025-01-01","tokensByModel":{"claude-opus-4-5-20251101":100}}
		],
		"hourCounts": {"9": 40, "23": 7, "bogus": 1, "25": 2},
		"totalSessions": 3,
		"totalMessages": 8
	}`)

	sc, err := LoadStatsCache(path)
	if err != nil {
		t.Fatalf("LoadStatsCache: %v", err)
	}
	if len(sc.DailyActivity) != 2 {
		t.Errorf("DailyActivity len = %d, want 2", len(sc.DailyActivity))
	}
	if sc.DailyActivity[0].MessageCount != 5 {
		t.Errorf("MessageCount = %d, want 5", sc.DailyActivity[0].MessageCount)
	}
	if sc.HourCounts[9] != 40 || sc.HourCounts[23] != 7 {
		t.Errorf("HourCounts = %v", sc.HourCounts)
	}
	if len(sc.HourCounts) != 2 {
		t.Errorf("invalid hour keys should be dropped, got %v", sc.HourCounts)
	}
	if sc.DailyModelTokens[0].TokensByModel["claude-opus-4-5-20251101"] != 100 {
		t.Errorf("TokensByModel = %v", sc.DailyModelTokens[0].TokensByModel)
	}
}

func TestLoadStatsCache_Missing(t *testing.T) {
	_, err := LoadStatsCache(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing stats cache")
	}
}

func TestLoadCostCache(t *testing.T) {
	path := writeFile(t, "cost-cache.json", `{
		"_sessions": {
			"b-session": {"cost": 1.25, "date": "2025-01-02"},
			"a-session": {"cost": 0.50, "date": "2025-01-01"},
			"undated":   {"cost": 9.99}
		},
		"2025-01": 1.75
	}`)

	cc, err := LoadCostCache(path)
	if err != nil {
		t.Fatalf("LoadCostCache: %v", err)
	}
	if len(cc.Sessions) != 2 {
		t.Fatalf("Sessions len = %d, want 2 (undated dropped)", len(cc.Sessions))
	}
	// Sorted by session ID for determinism.
	if cc.Sessions[0].SessionID != "a-session" || cc.Sessions[0].Cost != 0.50 {
		t.Errorf("first session = %+v", cc.Sessions[0])
	}
}

func TestLoadHistory(t *testing.T) {
	path := writeFile(t, "history.jsonl",
		`{"display":"fix this please","timestamp":1735689600000,"project":"/home/u/dev/gizmo","sessionId":"s1"}`+"\n"+
			`garbage line`+"\n"+
			`{"display":"/help","timestamp":1735693200000,"project":"/home/u/dev/gizmo","sessionId":"s1"}`+"\n")

	result, err := LoadHistory(path)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(result.Prompts) != 2 {
		t.Fatalf("Prompts len = %d, want 2", len(result.Prompts))
	}
	if result.ParseErrors != 1 {
		t.Errorf("ParseErrors = %d, want 1", result.ParseErrors)
	}
	if result.Prompts[0].Display != "fix this please" || result.Prompts[0].SessionID != "s1" {
		t.Errorf("first prompt = %+v", result.Prompts[0])
	}
}

func TestLoadHistory_Missing(t *testing.T) {
	if _, err := LoadHistory(filepath.Join(t.TempDir(), "history.jsonl")); err == nil {
		t.Fatal("expected error for missing history")
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	projDir := filepath.Join(dir, "projects", "-home-u-dev-gizmo")
	if err := os.MkdirAll(projDir, 0o750); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"abc.jsonl", "def.jsonl", "index.json"} {
		if err := os.WriteFile(filepath.Join(projDir, name), []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2", len(files))
	}
	for _, f := range files {
		if f.Project != "-home-u-dev-gizmo" {
			t.Errorf("Project = %q", f.Project)
		}
		if f.SessionID == "" {
			t.Error("SessionID empty")
		}
	}
}

func TestScanDir_MissingProjectsDir(t *testing.T) {
	files, err := ScanDir(t.TempDir())
	if err != nil {
		t.Fatalf("missing projects dir should not error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("found %d files, want 0", len(files))
	}
}
