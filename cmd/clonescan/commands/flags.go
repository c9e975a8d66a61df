package commands

import (
	"github.com/sonemaro/clonescan/pkg/options"
	"github.com/spf13/pflag"
)

// rootFlags holds the raw values of the root command's flags
type rootFlags struct {
	config      string
	minLines    int
	debug       bool
	executionID string
	silent      bool
	blame       bool
	cache       bool
	output      string
	xslHref     string
	format      string
	formatsExts string
	list        bool
	threshold   float64
	mode        string
	absolute    bool
	gitignore   bool
	reporters   string
	ignore      string
}

func (f *rootFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "path to config file (default: ./.clonescan.json)")
	fs.IntVarP(&f.minLines, "min-lines", "l", 0, "minimum size of a clone in lines (default: 5)")
	fs.BoolVarP(&f.debug, "debug", "d", false, "print the resolved options and exit without detection")
	fs.StringVar(&f.executionID, "execution-id", "", "identifier of this run (default: current time)")
	fs.BoolVarP(&f.silent, "silent", "s", false, "do not write detection progress and result to the console")
	fs.BoolVarP(&f.blame, "blame", "b", false, "blame authors of duplications (from git)")
	fs.BoolVar(&f.cache, "cache", true, "cache tokenized sources between runs")
	fs.StringVarP(&f.output, "output", "o", "", "path to the report directory (default: ./report)")
	fs.StringVar(&f.xslHref, "xsl-href", "", "stylesheet referenced by the xml report")
	fs.StringVarP(&f.format, "format", "f", "", "comma separated formats to analyze (default: all)")
	fs.StringVar(&f.formatsExts, "formats-exts", "", "custom extensions, e.g. javascript:es,es6;dart:dt")
	fs.BoolVar(&f.list, "list", false, "print the supported formats and exit")
	fs.Float64VarP(&f.threshold, "threshold", "t", 0, "fail when the duplication level exceeds this percentage")
	fs.StringVarP(&f.mode, "mode", "m", "", "tokenizer mode: mild, strict or weak (default: mild)")
	fs.BoolVarP(&f.absolute, "absolute", "a", false, "use absolute paths in reports")
	fs.BoolVarP(&f.gitignore, "gitignore", "g", false, "skip files ignored by .gitignore")
	fs.StringVarP(&f.reporters, "reporters", "r", "", "comma separated reporters (default: console,time)")
	fs.StringVarP(&f.ignore, "ignore", "i", "", "comma separated glob patterns to exclude")
}

// args builds the sparse bag: a slot is filled only when its flag was given
// on the command line, so flag defaults never shadow the config file.
func (f *rootFlags) args(fs *pflag.FlagSet, positional []string) options.Args {
	a := options.Args{
		Config:      changed(fs, "config", f.config),
		MinLines:    changed(fs, "min-lines", f.minLines),
		Debug:       changed(fs, "debug", f.debug),
		ExecutionID: changed(fs, "execution-id", f.executionID),
		Silent:      changed(fs, "silent", f.silent),
		Blame:       changed(fs, "blame", f.blame),
		Cache:       changed(fs, "cache", f.cache),
		Output:      changed(fs, "output", f.output),
		XSLHref:     changed(fs, "xsl-href", f.xslHref),
		Format:      changed(fs, "format", f.format),
		FormatsExts: changed(fs, "formats-exts", f.formatsExts),
		List:        changed(fs, "list", f.list),
		Threshold:   changed(fs, "threshold", f.threshold),
		Mode:        changed(fs, "mode", f.mode),
		Absolute:    changed(fs, "absolute", f.absolute),
		Gitignore:   changed(fs, "gitignore", f.gitignore),
		Reporters:   changed(fs, "reporters", f.reporters),
		Ignore:      changed(fs, "ignore", f.ignore),
	}

	if len(positional) > 0 {
		a.Path = &positional[0]
	}

	return a
}

func changed[T any](fs *pflag.FlagSet, name string, value T) *T {
	if !fs.Changed(name) {
		return nil
	}
	return &value
}
