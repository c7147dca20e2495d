package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pscheid92/reviewsense/internal/domain"
)

const (
	DefaultVectorizerFile = "tfidf_vectorizer.json"
	DefaultClassifierFile = "sentiment_model.json"
)

// Names are the artifact file names inside the model directory.
type Names struct {
	Vectorizer string
	Classifier string
}

func DefaultNames() Names {
	return Names{Vectorizer: DefaultVectorizerFile, Classifier: DefaultClassifierFile}
}

// Load reads both artifacts from dir. It returns domain.ErrArtifactsNotFound when
// either file is missing and domain.ErrArtifactCorrupt when a file cannot be decoded
// or the two do not fit together.
func Load(ctx context.Context, dir string, names Names) (*domain.ArtifactPair, error) {
	return LoadFS(ctx, os.DirFS(dir), names)
}

// LoadFS is Load over an arbitrary file system.
func LoadFS(ctx context.Context, fsys fs.FS, names Names) (*domain.ArtifactPair, error) {
	for _, name := range []string{names.Vectorizer, names.Classifier} {
		if _, err := fs.Stat(fsys, name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", domain.ErrArtifactsNotFound, name)
			}
			return nil, fmt.Errorf("%w: stat %s: %w", domain.ErrArtifactCorrupt, name, err)
		}
	}

	var vecDoc tfidfDocument
	if err := decodeFile(fsys, names.Vectorizer, &vecDoc); err != nil {
		return nil, err
	}
	vectorizer, err := newTFIDFVectorizer(vecDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrArtifactCorrupt, names.Vectorizer, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("artifact load cancelled: %w", err)
	}

	var clfDoc linearDocument
	if err := decodeFile(fsys, names.Classifier, &clfDoc); err != nil {
		return nil, err
	}
	classifier, err := newLinearClassifier(clfDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrArtifactCorrupt, names.Classifier, err)
	}

	if classifier.Dim() != vectorizer.Dim() {
		return nil, fmt.Errorf("%w: classifier expects %d features, vectorizer produces %d",
			domain.ErrArtifactCorrupt, classifier.Dim(), vectorizer.Dim())
	}

	return &domain.ArtifactPair{Vectorizer: vectorizer, Classifier: classifier}, nil
}

func decodeFile(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", domain.ErrArtifactCorrupt, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrArtifactCorrupt, name, err)
	}
	return nil
}
