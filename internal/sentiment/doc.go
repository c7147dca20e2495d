// Package sentiment implements the review sentiment pipeline.
//
// Normalizer reduces raw review text to a canonical token string. Two scorers share the
// domain.Scorer contract: ModelScorer delegates to a trained vectorizer/classifier pair and
// reads the normalized text, RuleScorer counts marker words in the raw text. VaderScorer is
// an optional lexicon fallback. The Engine validates input, normalizes, and dispatches to
// the scorer chosen once at startup by SelectScorer. No mutable state after construction.
package sentiment
