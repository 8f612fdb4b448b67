package language

import (
	"fmt"
	"strings"

	"gitlab.com/cjudge-2025.net/internal/static/errs"
)

// languageMap maps human-readable language names to the identifiers the
// execution service expects. Static, read-only, process-wide data.
var languageMap = map[string]int{
	"javascript": 63,
	"python":     71,
	"java":       62,
	"cpp":        54,
	"c++":        54,
	"c":          50,
	"csharp":     51,
	"go":         60,
	"rust":       73,
	"php":        68,
	"ruby":       72,
	"swift":      83,
	"kotlin":     78,
	"typescript": 74,
	"scala":      81,
	"perl":       85,
	"haskell":    61,
	"lua":        64,
	"r":          80,
	"dart":       90,
	"elixir":     57,
	"erlang":     58,
	"clojure":    86,
	"fsharp":     87,
	"vb":         84,
	"pascal":     67,
	"fortran":    59,
	"cobol":      77,
	"assembly":   45,
	"bash":       46,
	"sql":        82,
	"matlab":     70,
	"octave":     66,
	"prolog":     69,
	"lisp":       55,
	"scheme":     56,
	"tcl":        88,
	"crystal":    89,
	"nim":        92,
	"julia":      79,
	"groovy":     88,
	"racket":     91,
}

// Resolve maps a language name to its executor identifier. Lookup is
// case-insensitive. An unknown name fails with errs.UnsupportedLanguage
// before any sandbox call is made.
func Resolve(name string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	id, ok := languageMap[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.UnsupportedLanguage, name)
	}
	return id, nil
}

// Supported returns the names of every registered language
func Supported() []string {
	names := make([]string, 0, len(languageMap))
	for name := range languageMap {
		names = append(names, name)
	}
	return names
}
