package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/theirongolddev/cwrapped/internal/model"
)

// ParseResult holds the output of extracting tool invocations from a
// single session JSONL file.
type ParseResult struct {
	Invocations []model.ToolInvocation
	ParseErrors int
	Err         error
}

// trackedTools are the tool names the language ranking cares about.
// Read is recorded here so downstream consumers can distinguish
// read-only touches; the ranking itself only counts Write and Edit.
var trackedTools = map[string]bool{
	"Write": true,
	"Edit":  true,
	"Read":  true,
}

// ParseFile extracts all Write/Edit/Read tool invocations carrying a
// file path from a session file. Date-range filtering happens later so
// cached parse results stay valid for any range.
//
// Lines are routed by their top-level "type" field via byte scanning
// before any full JSON parse; only "assistant" lines are decoded.
// Malformed lines are dropped and counted, never fatal.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	var result ParseResult

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 2*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()

		if extractTopLevelType(line) != "assistant" {
			continue
		}

		var entry rawSessionEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			result.ParseErrors++
			continue
		}

		if entry.Message == nil {
			continue
		}

		for _, item := range entry.Message.Content {
			if item.Type != "tool_use" || !trackedTools[item.Name] {
				continue
			}
			if item.Input == nil || item.Input.FilePath == "" {
				continue
			}
			result.Invocations = append(result.Invocations, model.ToolInvocation{
				Tool:       item.Name,
				FilePath:   item.Input.FilePath,
				SourceFile: df.Path,
				Timestamp:  entry.Timestamp,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{Err: err}
	}
	return result
}

// typeKey is the byte sequence for a JSON key named "type" (with quotes).
var typeKey = []byte(`"type"`)

// extractTopLevelType finds the top-level "type" field in a JSONL line.
// Tracks brace depth and string boundaries so nested "type" keys are
// ignored. Early-exits once found, making cost O(1) vs line length.
func extractTopLevelType(line []byte) string {
	depth := 0
	for i := 0; i < len(line); {
		switch line[i] {
		case '"':
			if depth == 1 && bytes.HasPrefix(line[i:], typeKey) {
				val, isKey := classifyType(line, i+len(typeKey))
				if isKey {
					return val // found the "type" key, done regardless of value
				}
				// "type" appeared as a value, not a key. Continue scanning.
			}
			i = skipJSONString(line, i)
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
		default:
			i++
		}
	}
	return ""
}

// classifyType checks whether pos follows a JSON key (expects : then value).
// isKey=false means "type" appeared as a value, not a key.
func classifyType(line []byte, pos int) (val string, isKey bool) {
	i := skipSpaces(line, pos)
	if i >= len(line) || line[i] != ':' {
		return "", false // no colon, this was a value not a key
	}
	i = skipSpaces(line, i+1)
	if i >= len(line) || line[i] != '"' {
		return "", true // key with non-string value (null, number, etc.)
	}
	i++ // past opening quote

	end := bytes.IndexByte(line[i:], '"')
	if end < 0 || end > 20 {
		return "", true
	}
	v := string(line[i : i+end])
	switch v {
	case "assistant", "user", "system":
		return v, true
	}
	return "", true // valid key but irrelevant type (e.g., "progress")
}

// skipJSONString advances past a JSON string starting at the opening quote.
func skipJSONString(line []byte, i int) int {
	i++ // skip opening quote
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

func skipSpaces(line []byte, i int) int {
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}
