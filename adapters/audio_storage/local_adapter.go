package audio_storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

// localArtifactStore writes audio blobs whole into a dedicated directory.
// Names carry a timestamp plus random bytes, so concurrent requests never
// collide.
type localArtifactStore struct {
	dir string
	log logger.Logger
}

func NewLocalArtifactStore(dir string, log logger.Logger) (service.ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create audio dir %q: %w", dir, err)
	}
	return &localArtifactStore{dir: dir, log: log}, nil
}

func (s *localArtifactStore) Save(_ context.Context, data []byte, format string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", apperror.NewInternal("failed to generate artifact name", err)
	}

	filename := fmt.Sprintf("roast_%s_%s.%s",
		time.Now().Format("20060102_150405"), hex.EncodeToString(suffix), format)

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperror.NewInternal("failed to write audio file", err)
	}

	s.log.Info("Audio saved", zap.String("path", path))
	return filename, nil
}

func (s *localArtifactStore) Open(_ context.Context, filename string) (io.ReadCloser, int64, error) {
	path, err := s.Path(filename)
	if err != nil {
		return nil, 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, apperror.NewNotFound("Audio file", filename)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, apperror.NewNotFound("Audio file", filename)
	}
	return f, info.Size(), nil
}

// Path rejects anything that is not a bare file name so a crafted name
// cannot escape the audio directory.
func (s *localArtifactStore) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", apperror.NewNotFound("Audio file", filename)
	}
	return filepath.Join(s.dir, filename), nil
}
