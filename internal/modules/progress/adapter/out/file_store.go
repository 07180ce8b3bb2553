package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	progressout "swipescoop/internal/modules/progress/port/out"
	apperrors "swipescoop/internal/platform/errors"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStore writes each key to <dir>/<key>.json. Writes go through a
// temporary file and a rename so a crash never leaves a torn value.
type FileStore struct {
	dir string
}

func NewFileStore(stateDir string) progressout.PersistentStore {
	return &FileStore{dir: filepath.Join(stateDir, "state")}
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: store key %q", apperrors.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: read %s: %w", apperrors.ErrStorage, key, err)
	}
	return payload, true, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create state dir: %w", apperrors.ErrStorage, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrStorage, key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrStorage, key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrStorage, key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrStorage, key, err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: clear %s: %w", apperrors.ErrStorage, key, err)
	}
	return nil
}
