package main

import (
	"github.com/spf13/cobra"
)

type comparisonOutput struct {
	First  analysisOutput `json:"first" yaml:"first"`
	Second analysisOutput `json:"second" yaml:"second"`
}

func newCompareCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare TEXT_A TEXT_B",
		Short: "Analyze two reviews side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.buildService(cmd.Context())
			if err != nil {
				return err
			}
			cmp, err := svc.Engine.Compare(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			out := comparisonOutput{
				First:  toAnalysisOutput(cmp.First),
				Second: toAnalysisOutput(cmp.Second),
			}
			return render(cmd.OutOrStdout(), flags.output, out)
		},
	}
}
