package output

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sonemaro/clonescan/pkg/formats"
	"github.com/sonemaro/clonescan/pkg/logger"
	"github.com/sonemaro/clonescan/pkg/options"
)

// row is one "key: value" line of text output
type row struct {
	key   string
	value string
	note  string
}

func (f *formatter) optionsText(o options.Options) string {
	f.log.Debug("Formatting text output")

	rows := []row{
		{key: "config", value: textString(o.ConfigFile)},
		{key: "executionId", value: o.ExecutionID},
		{key: "path", value: textString(o.Path)},
		{key: "minLines", value: strconv.Itoa(o.MinLines)},
		{key: "minTokens", value: strconv.Itoa(o.MinTokens)},
		{key: "threshold", value: strconv.FormatFloat(o.Threshold, 'g', -1, 64)},
		{key: "output", value: textString(o.Output)},
		{key: "xslHref", value: textString(o.XSLHref)},
		{key: "reporters", value: textList(o.Reporters)},
		{key: "listeners", value: textList(o.Listeners)},
		{key: "ignore", value: textList(o.Ignore)},
		{key: "format", value: textList(o.Format)},
		{key: "formatsExts", value: textExts(o.FormatsExts)},
		{key: "mode", value: string(o.Mode)},
		{key: "debug", value: strconv.FormatBool(o.Debug)},
		{key: "silent", value: strconv.FormatBool(o.Silent)},
		{key: "blame", value: strconv.FormatBool(o.Blame)},
		{key: "cache", value: strconv.FormatBool(o.Cache)},
		{key: "absolute", value: strconv.FormatBool(o.Absolute)},
		{key: "gitignore", value: strconv.FormatBool(o.Gitignore)},
		{key: "list", value: strconv.FormatBool(o.List)},
	}

	var builder strings.Builder
	f.writeTree(&builder, "options", rows)
	return builder.String()
}

func (f *formatter) catalogText(entries []formats.Entry) string {
	rows := make([]row, 0, len(entries))
	for _, entry := range entries {
		r := row{key: entry.Format, value: textList(entry.Extensions)}
		if entry.Overridden {
			r.note = "(overridden)"
		}
		rows = append(rows, r)
	}

	var builder strings.Builder
	f.writeTree(&builder, "formats", rows)

	if f.config.WithStats {
		f.log.Debug("Adding statistics to output")
		s := f.calculateStats(entries)
		builder.WriteString("\nStatistics:\n")
		builder.WriteString(fmt.Sprintf("  Total Formats: %d\n", s.Formats))
		builder.WriteString(fmt.Sprintf("  Total Extensions: %d\n", s.Extensions))
		builder.WriteString(fmt.Sprintf("  Overridden: %d\n", s.Overridden))
	}

	return builder.String()
}

// writeTree writes a root line followed by one branch per row, keys padded to
// a common width.
func (f *formatter) writeTree(builder *strings.Builder, root string, rows []row) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.key))
	}

	builder.WriteString(f.paint(root+"/", color.FgBlue, color.Bold))
	builder.WriteString("\n")

	for i, r := range rows {
		f.log.WithFields(logger.Fields{
			"key":    r.key,
			"isLast": i == len(rows)-1,
		}).Trace("Formatting tree row")

		if i == len(rows)-1 {
			builder.WriteString("└── ")
		} else {
			builder.WriteString("├── ")
		}

		key := fmt.Sprintf("%-*s", width+1, r.key+":")
		builder.WriteString(f.paint(key, color.FgCyan))
		builder.WriteString(" ")
		builder.WriteString(r.value)
		if r.note != "" {
			builder.WriteString(" ")
			builder.WriteString(f.paint(r.note, color.FgYellow))
		}
		builder.WriteString("\n")
	}
}

// paint colors s when colors are enabled. The color is forced on because the
// caller has already decided whether the destination is a terminal.
func (f *formatter) paint(s string, attrs ...color.Attribute) string {
	if !f.config.WithColors {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func textString(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func textList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return strings.Join(items, ", ")
}

// textExts renders overrides in the --formats-exts syntax, sorted by format.
func textExts(exts map[string][]string) string {
	if len(exts) == 0 {
		return "{}"
	}

	ids := make([]string, 0, len(exts))
	for id := range exts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id+":"+strings.Join(exts[id], ","))
	}
	return strings.Join(parts, ";")
}
