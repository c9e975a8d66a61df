package commands

import (
	"fmt"

	"github.com/sonemaro/clonescan/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand(opts *Options) *cobra.Command {
	var showFull bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if showFull {
				fmt.Fprint(cmd.OutOrStdout(), info.Full())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showFull, "full", "f", false,
		"show full version information")

	return cmd
}
