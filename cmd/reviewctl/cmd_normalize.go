package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pscheid92/reviewsense/internal/sentiment"
)

func newNormalizeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize TEXT...",
		Short: "Print the normalized form the model scorer sees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := sentiment.NewStopwordFilter(flags.stopwords)
			if err != nil {
				return err
			}
			normalized := sentiment.NewNormalizer(filter).Normalize(strings.Join(args, " "))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return err
		},
	}
}
