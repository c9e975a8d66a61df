package options

import (
	"maps"
	"slices"
	"time"
)

// executionIDLayout matches an ISO-8601 UTC timestamp with milliseconds.
const executionIDLayout = "2006-01-02T15:04:05.000Z07:00"

// Defaults returns the baseline configuration. Every field is set. The clock,
// the working directory and the supported format catalog are passed in so the
// result is deterministic.
func Defaults(now time.Time, workDir string, supported []string) Options {
	return Options{
		ExecutionID: now.UTC().Format(executionIDLayout),
		Path:        workDir,
		MinLines:    5,
		MinTokens:   50,
		Threshold:   0,
		Output:      "./report",
		Reporters:   []string{ReporterConsole, ReporterTime},
		Listeners:   []string{"state", "hashes", "statistic", "sources", ListenerClones},
		Ignore:      []string{},
		Format:      slices.Clone(supported),
		FormatsExts: map[string][]string{},
		Mode:        ModeMild,
		Debug:       false,
		Silent:      false,
		Blame:       false,
		Cache:       true,
		Absolute:    false,
		Gitignore:   false,
		List:        false,
	}
}

// Partial returns o as a partial with every field present. ConfigFile is not
// carried over: it is provenance set by the resolver, not a mergeable field.
func (o Options) Partial() Partial {
	return Partial{
		ExecutionID: ptr(o.ExecutionID),
		Path:        ptr(o.Path),
		MinLines:    ptr(o.MinLines),
		MinTokens:   ptr(o.MinTokens),
		Threshold:   ptr(o.Threshold),
		Output:      ptr(o.Output),
		XSLHref:     ptr(o.XSLHref),
		Reporters:   ptr(slices.Clone(o.Reporters)),
		Listeners:   ptr(slices.Clone(o.Listeners)),
		Ignore:      ptr(slices.Clone(o.Ignore)),
		Format:      ptr(slices.Clone(o.Format)),
		FormatsExts: ptr(cloneExts(o.FormatsExts)),
		Mode:        ptr(o.Mode),
		Debug:       ptr(o.Debug),
		Silent:      ptr(o.Silent),
		Blame:       ptr(o.Blame),
		Cache:       ptr(o.Cache),
		Absolute:    ptr(o.Absolute),
		Gitignore:   ptr(o.Gitignore),
		List:        ptr(o.List),
	}
}

// options copies p into an Options value. Absent fields become zero values;
// slices and maps are cloned so the result shares no memory with p.
func (p Partial) options() Options {
	return Options{
		ExecutionID: deref(p.ExecutionID),
		Path:        deref(p.Path),
		MinLines:    deref(p.MinLines),
		MinTokens:   deref(p.MinTokens),
		Threshold:   deref(p.Threshold),
		Output:      deref(p.Output),
		XSLHref:     deref(p.XSLHref),
		Reporters:   slices.Clone(deref(p.Reporters)),
		Listeners:   slices.Clone(deref(p.Listeners)),
		Ignore:      slices.Clone(deref(p.Ignore)),
		Format:      slices.Clone(deref(p.Format)),
		FormatsExts: cloneExts(deref(p.FormatsExts)),
		Mode:        deref(p.Mode),
		Debug:       deref(p.Debug),
		Silent:      deref(p.Silent),
		Blame:       deref(p.Blame),
		Cache:       deref(p.Cache),
		Absolute:    deref(p.Absolute),
		Gitignore:   deref(p.Gitignore),
		List:        deref(p.List),
	}
}

// Keys lists the json names of the fields present in p, in declaration order.
func (p Partial) Keys() []string {
	present := []struct {
		key string
		set bool
	}{
		{"executionId", p.ExecutionID != nil},
		{"path", p.Path != nil},
		{"minLines", p.MinLines != nil},
		{"minTokens", p.MinTokens != nil},
		{"threshold", p.Threshold != nil},
		{"output", p.Output != nil},
		{"xslHref", p.XSLHref != nil},
		{"reporters", p.Reporters != nil},
		{"listeners", p.Listeners != nil},
		{"ignore", p.Ignore != nil},
		{"format", p.Format != nil},
		{"formatsExts", p.FormatsExts != nil},
		{"mode", p.Mode != nil},
		{"debug", p.Debug != nil},
		{"silent", p.Silent != nil},
		{"blame", p.Blame != nil},
		{"cache", p.Cache != nil},
		{"absolute", p.Absolute != nil},
		{"gitignore", p.Gitignore != nil},
		{"list", p.List != nil},
	}

	keys := make([]string, 0, len(present))
	for _, f := range present {
		if f.set {
			keys = append(keys, f.key)
		}
	}
	return keys
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func cloneExts(src map[string][]string) map[string][]string {
	if src == nil {
		return nil
	}
	dst := maps.Clone(src)
	for k, v := range dst {
		dst[k] = slices.Clone(v)
	}
	return dst
}
