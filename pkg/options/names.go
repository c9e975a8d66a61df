package options

import (
	"slices"
	"strings"
)

// names is an ordered list of reporter or listener names. Every method
// returns a new list and leaves the receiver untouched.
type names []string

func (n names) without(drop func(string) bool) names {
	return slices.DeleteFunc(slices.Clone(n), drop)
}

func (n names) with(name string) names {
	return append(slices.Clone(n), name)
}

// last moves name to the end, adding it if absent.
func (n names) last(name string) names {
	return n.without(equals(name)).with(name)
}

// unique keeps the first occurrence of every name.
func (n names) unique() names {
	seen := make(map[string]struct{}, len(n))
	out := make(names, 0, len(n))
	for _, name := range n {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func equals(name string) func(string) bool {
	return func(s string) bool { return s == name }
}

func contains(substr string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, substr) }
}
