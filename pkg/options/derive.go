package options

import "github.com/sonemaro/clonescan/pkg/logger"

// Step is one named transformation applied to merged options.
type Step struct {
	Name  string
	Apply func(Options) Options
}

// Derivations run in order; later steps see the effect of earlier ones.
var Derivations = []Step{
	{Name: "ensure-lists", Apply: ensureLists},
	{Name: "silent", Apply: applySilent},
	{Name: "threshold", Apply: applyThreshold},
	{Name: "blame", Apply: applyBlame},
	{Name: "time", Apply: applyTime},
	{Name: "dedupe", Apply: dedupe},
}

// Derive computes the final reporter and listener lists from the merged
// options. It does not modify the slices of o, and Derive(Derive(o)) equals
// Derive(o).
func Derive(o Options) Options {
	return derive(o, logger.Nop())
}

func derive(o Options, log logger.Logger) Options {
	for _, step := range Derivations {
		o = step.Apply(o)
		log.WithFields(logger.Fields{
			"step":      step.Name,
			"reporters": o.Reporters,
			"listeners": o.Listeners,
		}).Trace("Applied derivation step")
	}
	return o
}

func ensureLists(o Options) Options {
	if o.Reporters == nil {
		o.Reporters = []string{}
	}
	if o.Listeners == nil {
		o.Listeners = []string{}
	}
	return o
}

// applySilent replaces every console-like reporter with the silent one.
func applySilent(o Options) Options {
	if !o.Silent {
		return o
	}
	o.Reporters = names(o.Reporters).without(contains(ReporterConsole)).with(ReporterSilent)
	return o
}

func applyThreshold(o Options) Options {
	if o.Threshold == 0 {
		return o
	}
	o.Reporters = names(o.Reporters).with(ReporterThreshold)
	return o
}

// applyBlame swaps the clones listener for the blamer.
func applyBlame(o Options) Options {
	if !o.Blame {
		return o
	}
	o.Listeners = names(o.Listeners).without(equals(ListenerClones)).with(ListenerBlamer)
	return o
}

// applyTime pins the time reporter as the last reporter.
func applyTime(o Options) Options {
	o.Reporters = names(o.Reporters).last(ReporterTime)
	return o
}

func dedupe(o Options) Options {
	o.Reporters = names(o.Reporters).unique()
	o.Listeners = names(o.Listeners).unique()
	return o
}
