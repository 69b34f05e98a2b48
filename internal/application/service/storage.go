package service

import (
	"context"
	"io"
)

// ArtifactStore persists synthesized audio and serves it back by name.
type ArtifactStore interface {
	// Save writes the whole payload under a freshly generated name and
	// returns that name.
	Save(ctx context.Context, data []byte, format string) (string, error)
	// Open returns a reader for a stored artifact, or an error satisfying
	// apperror.ErrNotFound when the name does not exist.
	Open(ctx context.Context, filename string) (io.ReadCloser, int64, error)
	// Path resolves the artifact to a local path for zero-copy serving.
	Path(filename string) (string, error)
}

// Offloader pushes a stored artifact to a CDN and returns the public URL.
type Offloader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
}
