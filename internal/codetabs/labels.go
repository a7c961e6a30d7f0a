package codetabs

import "maps"

// Labels maps language tags to tab labels. The empty key holds the label
// used for sub-blocks without a language.
type Labels map[string]string

var defaultLabels = Labels{
	"":           "Text",
	"bash":       "Bash",
	"c":          "C",
	"clojure":    "Clojure",
	"cpp":        "C++",
	"cs":         "C#",
	"csharp":     "C#",
	"css":        "CSS",
	"dart":       "Dart",
	"diff":       "Diff",
	"dockerfile": "Dockerfile",
	"elixir":     "Elixir",
	"erlang":     "Erlang",
	"fsharp":     "F#",
	"go":         "Go",
	"graphql":    "GraphQL",
	"groovy":     "Groovy",
	"haskell":    "Haskell",
	"html":       "HTML",
	"http":       "HTTP",
	"ini":        "INI",
	"java":       "Java",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"json":       "JSON",
	"jsx":        "JSX",
	"kotlin":     "Kotlin",
	"kt":         "Kotlin",
	"lua":        "Lua",
	"makefile":   "Makefile",
	"markdown":   "Markdown",
	"md":         "Markdown",
	"objc":       "Objective-C",
	"ocaml":      "OCaml",
	"perl":       "Perl",
	"php":        "PHP",
	"powershell": "PowerShell",
	"ps1":        "PowerShell",
	"py":         "Python",
	"python":     "Python",
	"r":          "R",
	"rb":         "Ruby",
	"ruby":       "Ruby",
	"rust":       "Rust",
	"rs":         "Rust",
	"scala":      "Scala",
	"sh":         "Shell",
	"shell":      "Shell",
	"sql":        "SQL",
	"swift":      "Swift",
	"toml":       "TOML",
	"ts":         "TypeScript",
	"tsx":        "TSX",
	"typescript": "TypeScript",
	"xml":        "XML",
	"yaml":       "YAML",
	"yml":        "YAML",
	"zsh":        "Zsh",
}

// DefaultLabels returns a copy of the built-in label table.
func DefaultLabels() Labels {
	return maps.Clone(defaultLabels)
}

// Merge returns a new table holding l overridden by custom.
func (l Labels) Merge(custom map[string]string) Labels {
	merged := make(Labels, len(l)+len(custom))

	maps.Copy(merged, l)
	maps.Copy(merged, custom)

	return merged
}

// Resolve picks the label of a sub-block: the explicit label attribute, then
// the table entry for lang, then lang itself, then the table entry for the
// empty language. Empty candidates are skipped.
func (l Labels) Resolve(lang, explicit string) string {
	for _, label := range []string{explicit, l[lang], lang} {
		if len(label) != 0 {
			return label
		}
	}

	return l[""]
}
