package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pscheid92/reviewsense/internal/domain"
	"github.com/pscheid92/reviewsense/internal/platform/version"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

type formatter func(w io.Writer, v any) error

func formatterFor(name string) (formatter, error) {
	switch name {
	case formatJSON:
		return writeJSON, nil
	case formatYAML:
		return writeYAML, nil
	case formatText:
		return writeText, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected json|yaml|text)", name)
	}
}

func render(w io.Writer, format string, v any) error {
	f, err := formatterFor(format)
	if err != nil {
		return err
	}
	return f(w, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, v any) error {
	switch v := v.(type) {
	case analysisOutput:
		return writeAnalysisText(w, "", v)
	case comparisonOutput:
		if err := writeAnalysisText(w, "first", v.First); err != nil {
			return err
		}
		return writeAnalysisText(w, "second", v.Second)
	case version.Info:
		_, err := fmt.Fprintln(w, v.String())
		return err
	default:
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}

func writeAnalysisText(w io.Writer, heading string, a analysisOutput) error {
	var b strings.Builder
	if heading != "" {
		fmt.Fprintf(&b, "[%s]\n", heading)
	}
	fmt.Fprintf(&b, "Sentiment:   %s (%.4f)\n", a.Sentiment, a.Confidence)
	fmt.Fprintf(&b, "Cleaned:     %s\n", a.CleanedText)
	fmt.Fprintf(&b, "Scorer:      %s\n", a.Scorer)
	for _, label := range domain.Labels() {
		fmt.Fprintf(&b, "  %-9s %.4f\n", label, a.Probabilities[label])
	}
	_, err := io.WriteString(w, b.String())
	return err
}
