package analyze

import (
	"sort"
	"strings"

	"github.com/theirongolddev/cwrapped/internal/model"
)

var extToLanguage = map[string]string{
	"ts": "TypeScript", "tsx": "TypeScript",
	"js": "JavaScript", "jsx": "JavaScript", "mjs": "JavaScript", "cjs": "JavaScript",
	"py": "Python",
	"rs": "Rust",
	"go": "Go",
	"java": "Java",
	"kt": "Kotlin", "kts": "Kotlin",
	"rb":    "Ruby",
	"php":   "PHP",
	"swift": "Swift",
	"cs":    "C#",
	"cpp":   "C++", "cc": "C++", "cxx": "C++", "hpp": "C++",
	"c": "C",
	"h": "C/C++",
	"bas": "VBA", "cls": "VBA", "frm": "VBA",
	"vbs": "VBScript",
	"sql": "SQL",
	"sh":  "Shell", "bash": "Shell", "zsh": "Shell",
	"ps1": "PowerShell", "psm1": "PowerShell",
	"html": "HTML", "htm": "HTML",
	"css":    "CSS",
	"scss":   "SCSS",
	"sass":   "Sass",
	"less":   "Less",
	"vue":    "Vue",
	"svelte": "Svelte",
	"lua":    "Lua",
	"r":      "R",
	"scala":  "Scala",
	"ex":     "Elixir", "exs": "Elixir",
	"erl": "Erlang",
	"hs":  "Haskell",
	"ml":  "OCaml",
	"fs":  "F#", "fsx": "F#",
	"clj":  "Clojure",
	"cljs": "ClojureScript",
	"elm":  "Elm",
	"dart": "Dart",
	"zig":  "Zig",
	"nim":  "Nim",
	"v":    "V",
	"cr":   "Crystal",
}

// Documents, config, and assets don't count as a language.
var excludedExtensions = map[string]bool{
	"md": true, "txt": true, "json": true, "yaml": true, "yml": true,
	"toml": true, "xml": true,
	"gitignore": true, "env": true, "lock": true, "log": true,
	"csv": true, "tsv": true,
	"ico": true, "png": true, "jpg": true, "jpeg": true, "gif": true,
	"svg": true, "webp": true,
	"woff": true, "woff2": true, "ttf": true, "eot": true,
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
}

var filenameToLanguage = map[string]string{
	"Dockerfile":  "Docker",
	"Makefile":    "Make",
	"Rakefile":    "Ruby",
	"Gemfile":     "Ruby",
	"Vagrantfile": "Ruby",
	"Jenkinsfile": "Groovy",
	".bashrc":     "Shell",
	".zshrc":      "Shell",
	".profile":    "Shell",
}

// languageRanking counts Write and Edit targets per resolved language
// and keeps the top five. Read invocations don't count: reading a file
// is not using the language.
func languageRanking(invocations []model.ToolInvocation) []model.LanguageRank {
	counts := make(map[string]int)

	for _, inv := range invocations {
		if inv.Tool != "Write" && inv.Tool != "Edit" {
			continue
		}
		if inv.FilePath == "" {
			continue
		}

		base := lastPathSegment(inv.FilePath)
		if lang, ok := filenameToLanguage[base]; ok {
			counts[lang]++
			continue
		}

		ext := ""
		// a leading dot alone is not an extension (".bashrc" has none)
		if idx := strings.LastIndex(base, "."); idx > 0 {
			ext = strings.ToLower(base[idx+1:])
		}
		if ext == "" || excludedExtensions[ext] {
			continue
		}
		if lang, ok := extToLanguage[ext]; ok {
			counts[lang]++
		} else {
			counts[strings.ToUpper(ext)]++
		}
	}

	ranks := make([]model.LanguageRank, 0, len(counts))
	for name, count := range counts {
		ranks = append(ranks, model.LanguageRank{Name: name, Count: count})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Name < ranks[j].Name
	})
	if len(ranks) > 5 {
		ranks = ranks[:5]
	}
	return ranks
}

func lastPathSegment(path string) string {
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
