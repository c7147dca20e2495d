package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pscheid92/reviewsense/internal/domain"
)

type analysisOutput struct {
	Sentiment     domain.Label        `json:"sentiment" yaml:"sentiment"`
	Confidence    float64             `json:"confidence" yaml:"confidence"`
	CleanedText   string              `json:"cleaned_text" yaml:"cleaned_text"`
	Probabilities domain.Distribution `json:"probabilities" yaml:"probabilities"`
	Scorer        string              `json:"scorer" yaml:"scorer"`
}

func toAnalysisOutput(r domain.Result) analysisOutput {
	return analysisOutput{
		Sentiment:     r.Label,
		Confidence:    r.Confidence,
		CleanedText:   r.NormalizedText,
		Probabilities: r.Distribution,
		Scorer:        r.Scorer,
	}
}

func newAnalyzeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze TEXT...",
		Short: "Analyze the sentiment of one review",
		Long:  "Analyze joins its arguments with spaces and scores the result as a single review.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := flags.buildService(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.Engine.Analyze(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), flags.output, toAnalysisOutput(res))
		},
	}
}
