package commands

import (
	"fmt"
	"slices"

	"github.com/sonemaro/clonescan/pkg/output"
	"github.com/spf13/cobra"
)

func newFormatsCommand(opts *Options) *cobra.Command {
	var (
		outputType string
		withStats  bool
	)

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported formats and their file extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Format(outputType)
			if !slices.Contains(output.Formats, format) {
				return fmt.Errorf("invalid output format %q: must be one of %v", outputType, output.Formats)
			}
			return newApp(cmd, opts).PrintCatalog(format, withStats, nil)
		},
	}

	cmd.Flags().StringVarP(&outputType, "output", "o", string(output.FormatText),
		"output format: text|json|yaml")
	cmd.Flags().BoolVar(&withStats, "stats", false,
		"include catalog statistics")

	return cmd
}
