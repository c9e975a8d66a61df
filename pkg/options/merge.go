package options

import (
	"fmt"

	"dario.cat/mergo"
)

// Merge combines the three sources field by field. For each field the highest
// precedence source that defines it wins: args, then stored, then defaults.
// Lists and maps are replaced wholesale, never concatenated.
//
// defaults is expected to define every field (see Options.Partial); any field
// left undefined by all three sources comes out as its zero value.
func Merge(args, stored, defaults Partial) (Options, error) {
	var merged Partial
	for _, layer := range []Partial{defaults, stored, args} {
		if err := overlay(&merged, layer); err != nil {
			return Options{}, err
		}
	}
	return merged.options(), nil
}

// overlay copies every non-nil field of src onto dst. WithoutDereference makes
// mergo replace pointers instead of merging what they point at, so a present
// false or zero still wins over a lower layer.
func overlay(dst *Partial, src Partial) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return fmt.Errorf("failed to merge options: %w", err)
	}
	return nil
}
