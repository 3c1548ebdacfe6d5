package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSession creates a temp JSONL file and returns a DiscoveredFile for it.
func writeSession(t *testing.T, lines ...string) DiscoveredFile {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "session.jsonl")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return DiscoveredFile{
		Path:      path,
		SessionID: "test-session",
		Project:   "-tmp-test-project",
	}
}

func TestParseFile_ExtractsToolInvocations(t *testing.T) {
	df := writeSession(t,
		`{"type":"assistant","timestamp":"2025-06-01T10:00:00Z","message":{"content":[{"type":"tool_use","name":"Write","input":{"file_path":"/p/main.go"}}]}}`,
		`{"type":"assistant","timestamp":"2025-06-01T10:01:00Z","message":{"content":[{"type":"text"},{"type":"tool_use","name":"Edit","input":{"file_path":"/p/app.ts"}}]}}`,
		`{"type":"user","timestamp":"2025-06-01T10:02:00Z"}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Invocations) != 2 {
		t.Fatalf("got %d invocations, want 2", len(result.Invocations))
	}
	if result.Invocations[0].Tool != "Write" || result.Invocations[0].FilePath != "/p/main.go" {
		t.Errorf("first invocation = %+v", result.Invocations[0])
	}
	if result.Invocations[1].Tool != "Edit" || result.Invocations[1].FilePath != "/p/app.ts" {
		t.Errorf("second invocation = %+v", result.Invocations[1])
	}
}

func TestParseFile_SkipsUntrackedAndPathless(t *testing.T) {
	df := writeSession(t,
		`{"type":"assistant","timestamp":"2025-06-01T10:00:00Z","message":{"content":[{"type":"tool_use","name":"Bash","input":{}}]}}`,
		`{"type":"assistant","timestamp":"2025-06-01T10:01:00Z","message":{"content":[{"type":"tool_use","name":"Write","input":{}}]}}`,
		`{"type":"assistant","timestamp":"2025-06-01T10:02:00Z","message":{"content":[{"type":"tool_use","name":"Read","input":{"file_path":"/p/notes.md"}}]}}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	// Only the Read with a file path survives; Bash and the pathless Write do not.
	if len(result.Invocations) != 1 || result.Invocations[0].Tool != "Read" {
		t.Errorf("invocations = %+v, want single Read", result.Invocations)
	}
}

func TestParseFile_KeepsTimestamps(t *testing.T) {
	df := writeSession(t,
		`{"type":"assistant","timestamp":"2025-06-15T12:00:00Z","message":{"content":[{"type":"tool_use","name":"Write","input":{"file_path":"/p/timed.go"}}]}}`,
		`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Write","input":{"file_path":"/p/untimed.go"}}]}}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Invocations) != 2 {
		t.Fatalf("got %d invocations, want 2", len(result.Invocations))
	}
	if result.Invocations[0].Timestamp != "2025-06-15T12:00:00Z" {
		t.Errorf("timestamp = %q", result.Invocations[0].Timestamp)
	}
	if result.Invocations[1].Timestamp != "" {
		t.Errorf("untimed invocation carries timestamp %q", result.Invocations[1].Timestamp)
	}
}

func TestParseFile_MalformedLines(t *testing.T) {
	df := writeSession(t,
		`not json at all`,
		`{"type":"assistant","broken json`,
		`{"type":"assistant","timestamp":"2025-06-01T10:00:00Z","message":{"content":[{"type":"tool_use","name":"Edit","input":{"file_path":"/p/ok.py"}}]}}`,
	)

	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Invocations) != 1 {
		t.Errorf("got %d invocations, want 1 (siblings of corrupt lines survive)", len(result.Invocations))
	}
	if result.ParseErrors != 1 {
		t.Errorf("ParseErrors = %d, want 1", result.ParseErrors)
	}
}

func TestParseFile_EmptyFile(t *testing.T) {
	df := writeSession(t)
	result := ParseFile(df)
	if result.Err != nil {
		t.Fatalf("unexpected error on empty file: %v", result.Err)
	}
	if len(result.Invocations) != 0 {
		t.Error("expected zero invocations for empty file")
	}
}

func TestExtractTopLevelType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"user", `{"type":"user","foo":"bar"}`, "user"},
		{"assistant", `{"type":"assistant","message":{}}`, "assistant"},
		{"system", `{"type": "system","subtype":"turn_duration"}`, "system"},
		{"nested type ignored", `{"data":{"type":"progress"},"type":"user"}`, "user"},
		{"unknown type", `{"type":"progress","data":{}}`, ""},
		{"no type field", `{"message":"hello"}`, ""},
		{"empty", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTopLevelType([]byte(tt.input))
			if got != tt.want {
				t.Errorf("extractTopLevelType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// FuzzExtractTopLevelType tests that the byte-level router never panics
// on arbitrary input, which matters since it processes untrusted files.
func FuzzExtractTopLevelType(f *testing.F) {
	f.Add([]byte(`{"type":"assistant","message":{"content":[]}}`))
	f.Add([]byte(`{"type":"user","timestamp":"2025-06-01T10:00:00Z"}`))
	f.Add([]byte(`{"data":{"type":"nested"},"type":"user"}`))
	f.Add([]byte(`not json`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"type":null}`))
	f.Add([]byte(`{"type":123}`))
	f.Add([]byte(``))
	f.Add([]byte(`{"type":"user`)) // unterminated string

	f.Fuzz(func(t *testing.T, data []byte) {
		result := extractTopLevelType(data)
		switch result {
		case "", "user", "assistant", "system":
			// ok
		default:
			t.Errorf("unexpected type %q from input %q", result, data)
		}
	})
}
