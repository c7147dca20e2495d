package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pscheid92/reviewsense/internal/adapter/artifact"
	"github.com/pscheid92/reviewsense/internal/app"
	"github.com/pscheid92/reviewsense/internal/platform/logging"
	"github.com/pscheid92/reviewsense/internal/platform/version"
	"github.com/pscheid92/reviewsense/internal/sentiment"
)

type rootFlags struct {
	modelDir   string
	vectorizer string
	classifier string
	fallback   string
	stopwords  string
	output     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "reviewctl",
		Short:         "Classify product reviews as Positive, Neutral or Negative",
		Long:          "reviewctl runs the same normalizer, artifacts and scorers as the\nreviewsense HTTP service against texts given on the command line.",
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := formatterFor(flags.output); err != nil {
				return err
			}
			// Diagnostics go to stderr so stdout stays machine-readable.
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), flags.logLevel, "text"))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.modelDir, "model-dir", "models", "Directory holding the model artifacts")
	pf.StringVar(&flags.vectorizer, "vectorizer", artifact.DefaultVectorizerFile, "Vectorizer artifact file name")
	pf.StringVar(&flags.classifier, "classifier", artifact.DefaultClassifierFile, "Classifier artifact file name")
	pf.StringVar(&flags.fallback, "fallback", sentiment.FallbackRule, "Scorer used when no model is loaded (rule|vader)")
	pf.StringVar(&flags.stopwords, "stopwords", sentiment.StopwordsNLTK, "Stop-word set (nltk|extended)")
	pf.StringVarP(&flags.output, "output", "o", formatText, "Output format (json|yaml|text)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level for diagnostics on stderr")

	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newNormalizeCmd(flags))
	cmd.AddCommand(newVersionCmd(flags))

	return cmd
}

func (f *rootFlags) buildService(ctx context.Context) (*app.Service, error) {
	svc, err := app.Build(ctx, app.Options{
		ModelDir:  f.modelDir,
		Names:     artifact.Names{Vectorizer: f.vectorizer, Classifier: f.classifier},
		Fallback:  f.fallback,
		Stopwords: f.stopwords,
	})
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	return svc, nil
}
