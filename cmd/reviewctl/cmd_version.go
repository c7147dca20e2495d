package main

import (
	"github.com/spf13/cobra"

	"github.com/pscheid92/reviewsense/internal/platform/version"
)

func newVersionCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.OutOrStdout(), flags.output, version.Get())
		},
	}
}
