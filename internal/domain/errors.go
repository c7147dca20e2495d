package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrArtifactsNotFound = errors.New("model artifacts not found")
	ErrArtifactCorrupt   = errors.New("model artifact corrupt")
)
