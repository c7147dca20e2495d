package artifact

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/pscheid92/reviewsense/internal/domain"
)

// Store is the outcome of the one-time startup load. A store without a pair means
// the process runs in fallback mode for its whole lifetime.
type Store struct {
	dir   string
	names Names
	pair  *domain.ArtifactPair
}

// Open loads the artifacts once. Failures are logged and never returned: a missing
// model is a warning, an unreadable one is an error.
func Open(ctx context.Context, dir string, names Names) *Store {
	s := &Store{dir: dir, names: names}

	pair, err := Load(ctx, dir, names)
	switch {
	case err == nil:
		s.pair = pair
		slog.Info("Model artifacts loaded",
			"dir", dir,
			"vectorizer", names.Vectorizer,
			"classifier", names.Classifier,
			"kind", classifierKind(pair.Classifier),
			"features", pair.Vectorizer.Dim(),
			"classes", pair.Classifier.Classes(),
		)
		warnOnLabelMismatch(pair.Classifier.Classes())
	case errors.Is(err, domain.ErrArtifactsNotFound):
		slog.Warn("Model artifacts not found, using fallback scorer", "dir", dir, "error", err)
	default:
		slog.Error("Failed to load model artifacts, using fallback scorer", "dir", dir, "error", err)
	}
	return s
}

// NewStore wraps an already loaded pair. A nil pair yields a store in fallback mode.
func NewStore(pair *domain.ArtifactPair) *Store {
	return &Store{pair: pair, names: DefaultNames()}
}

func (s *Store) Pair() *domain.ArtifactPair { return s.pair }

func (s *Store) Loaded() bool { return s.pair != nil }

func (s *Store) Dir() string { return s.dir }

func classifierKind(c domain.Classifier) string {
	if k, ok := c.(interface{ Kind() string }); ok {
		return k.Kind()
	}
	return "unknown"
}

// The three-label contract is enforced by training, not here. A mismatch is reported
// and otherwise left alone.
func warnOnLabelMismatch(classes []domain.Label) {
	want := domain.Labels()
	got := slices.Clone(classes)
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		slog.Warn("Classifier label set differs from Positive/Neutral/Negative", "classes", classes)
	}
}
