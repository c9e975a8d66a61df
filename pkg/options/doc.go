/*
Package options resolves the effective run configuration of clonescan from
three sources: command-line arguments, the persisted .clonescan.json file and
built-in defaults.

Resolution runs in four stages:

 1. ParseArgs normalizes the flag bag into a sparse Partial.
 2. LoadStored reads the config file into another Partial.
 3. Merge overlays args over stored over defaults, field by field.
 4. Derive adjusts reporters and listeners for silent, threshold and blame.

A field is "present" in a Partial when its pointer is non-nil. Presence, not
truthiness, decides precedence, so an explicit false or 0 still wins:

	r := options.NewResolver(options.ResolverConfig{}, afero.NewOsFs(), log)
	opts, err := r.Resolve(options.Args{Silent: &yes})
	if err != nil {
	    return err
	}
	// opts.Reporters == []string{"silent", "time"}

Errors are typed. A malformed config file yields *ConfigParseError and a bad
--formats-exts value yields *InvalidFormatMappingError.
*/
package options
