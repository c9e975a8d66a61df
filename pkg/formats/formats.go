/*
Package formats is the registry of source formats clonescan knows how to
tokenize, together with the file extensions each format claims by default.

	all := formats.Supported()                  // sorted format ids
	exts := formats.Extensions("javascript", nil) // [".cjs" ".js" ".mjs"]

Extension overrides (from --formats-exts or the formatsExts key) replace the
default list for a format wholesale.
*/
package formats

import (
	"slices"
	"sort"
	"strings"
)

// catalog maps format id to its default extensions, without the leading dot.
var catalog = map[string][]string{
	"apex":         {"cls", "trigger"},
	"bash":         {"sh", "bash", "zsh"},
	"c":            {"c", "h"},
	"clojure":      {"clj", "cljs", "cljc"},
	"coffeescript": {"coffee"},
	"cpp":          {"cpp", "cc", "cxx", "c++", "hpp", "hh", "hxx"},
	"csharp":       {"cs"},
	"css":          {"css"},
	"dart":         {"dart"},
	"elixir":       {"ex", "exs"},
	"erlang":       {"erl", "hrl"},
	"go":           {"go"},
	"groovy":       {"groovy", "gradle"},
	"haskell":      {"hs", "lhs"},
	"java":         {"java"},
	"javascript":   {"js", "cjs", "mjs"},
	"json":         {"json"},
	"jsx":          {"jsx"},
	"kotlin":       {"kt", "kts"},
	"less":         {"less"},
	"lua":          {"lua"},
	"markdown":     {"md", "markdown"},
	"markup":       {"html", "htm", "xml", "xsl", "svg"},
	"objectivec":   {"m", "mm"},
	"ocaml":        {"ml", "mli"},
	"perl":         {"pl", "pm"},
	"php":          {"php", "phtml"},
	"python":       {"py", "pyw"},
	"r":            {"r"},
	"ruby":         {"rb"},
	"rust":         {"rs"},
	"scala":        {"scala", "sc"},
	"scss":         {"scss"},
	"sql":          {"sql"},
	"swift":        {"swift"},
	"tsx":          {"tsx"},
	"typescript":   {"ts", "mts", "cts"},
	"vue":          {"vue"},
	"yaml":         {"yml", "yaml"},
}

// Supported returns every known format id in lexical order.
func Supported() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsSupported reports whether id is a known format.
func IsSupported(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Extensions returns the extensions (with a leading dot, sorted) for a format.
// An entry in overrides replaces the defaults for that format. Unknown formats
// without an override yield nil.
func Extensions(id string, overrides map[string][]string) []string {
	src, ok := overrides[id]
	if !ok {
		src = catalog[id]
	}
	if src == nil {
		return nil
	}

	exts := make([]string, 0, len(src))
	for _, ext := range src {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		exts = append(exts, "."+strings.TrimPrefix(ext, "."))
	}
	slices.Sort(exts)
	return slices.Compact(exts)
}

// Entry is one row of the catalog as shown to users.
type Entry struct {
	Format     string   `json:"format" yaml:"format"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Overridden bool     `json:"overridden,omitempty" yaml:"overridden,omitempty"`
}

// Catalog lists the given formats with their effective extensions. Format ids
// that only appear in overrides are included too.
func Catalog(ids []string, overrides map[string][]string) []Entry {
	seen := make(map[string]bool, len(ids))
	all := make([]string, 0, len(ids)+len(overrides))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			all = append(all, id)
		}
	}
	extra := make([]string, 0, len(overrides))
	for id := range overrides {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	all = append(all, extra...)

	entries := make([]Entry, 0, len(all))
	for _, id := range all {
		_, overridden := overrides[id]
		entries = append(entries, Entry{
			Format:     id,
			Extensions: Extensions(id, overrides),
			Overridden: overridden,
		})
	}
	return entries
}
