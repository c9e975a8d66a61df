package options

import (
	"path/filepath"
	"strings"
)

// ParseArgs turns the command-line bag into a partial configuration. Slots
// that are nil stay absent so they cannot shadow the config file or defaults.
//
// Comma separated flags (reporters, format, ignore) are split and trimmed; an
// empty value counts as not given. A positional path is made absolute against
// workDir. Args.Config is not part of the result; it only selects the file.
func ParseArgs(args Args, workDir string) (Partial, error) {
	p := Partial{
		ExecutionID: args.ExecutionID,
		MinLines:    args.MinLines,
		Threshold:   args.Threshold,
		Output:      args.Output,
		XSLHref:     args.XSLHref,
		Debug:       args.Debug,
		Silent:      args.Silent,
		Blame:       args.Blame,
		Cache:       args.Cache,
		Absolute:    args.Absolute,
		Gitignore:   args.Gitignore,
		List:        args.List,
	}

	if args.Mode != nil {
		p.Mode = ptr(Mode(*args.Mode))
	}

	p.Reporters = listArg(args.Reporters)
	p.Format = listArg(args.Format)
	p.Ignore = listArg(args.Ignore)

	if args.FormatsExts != nil && *args.FormatsExts != "" {
		exts, err := parseFormatsExts(*args.FormatsExts)
		if err != nil {
			return Partial{}, err
		}
		p.FormatsExts = &exts
	}

	if args.Path != nil && *args.Path != "" {
		p.Path = ptr(absPath(workDir, *args.Path))
	}

	return p, nil
}

func listArg(raw *string) *[]string {
	if raw == nil || *raw == "" {
		return nil
	}
	return ptr(splitList(*raw))
}

// splitList splits a comma separated value, dropping blank items.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// parseFormatsExts decodes "fmt:extA,extB;fmt2:extC". Blank entries between
// semicolons are skipped; an entry without a colon or without a format id is
// rejected. A format given twice keeps the last list.
func parseFormatsExts(raw string) (map[string][]string, error) {
	result := make(map[string][]string)
	for _, entry := range strings.Split(raw, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		format, exts, ok := strings.Cut(entry, ":")
		format = strings.TrimSpace(format)
		if !ok || format == "" {
			return nil, &InvalidFormatMappingError{Value: raw, Entry: entry}
		}

		result[format] = splitList(exts)
	}
	return result, nil
}

func absPath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
