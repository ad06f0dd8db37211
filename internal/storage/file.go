package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/velas-starlight/storefront/pkg/errors"
)

type fileStore struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewFileStore creates a key-value store backed by a single JSON file.
// The file is created on first write.
func NewFileStore(fs afero.Fs, path string, logger *zap.Logger) *fileStore {
	return &fileStore{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

func (s *fileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, &errors.ErrStorage{Op: "get", Key: key, Err: err}
	}

	value, ok := values[key]
	return value, ok, nil
}

func (s *fileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		// A corrupt file should not make the store unwritable; start over
		// with the keys we are about to write.
		s.logger.Warn("Discarding unreadable storage file", zap.String("path", s.path), zap.Error(err))
		values = make(map[string]string)
	}

	values[key] = value
	if err := s.flush(values); err != nil {
		s.logger.Error("Failed to write storage file", zap.String("path", s.path), zap.Error(err))
		return &errors.ErrStorage{Op: "set", Key: key, Err: err}
	}

	return nil
}

func (s *fileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return &errors.ErrStorage{Op: "delete", Key: key, Err: err}
	}

	if _, ok := values[key]; !ok {
		return nil
	}

	delete(values, key)
	if err := s.flush(values); err != nil {
		s.logger.Error("Failed to write storage file", zap.String("path", s.path), zap.Error(err))
		return &errors.ErrStorage{Op: "delete", Key: key, Err: err}
	}

	return nil
}

func (s *fileStore) load() (map[string]string, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}

	return values, nil
}

func (s *fileStore) flush(values map[string]string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return afero.WriteFile(s.fs, s.path, raw, 0o644)
}
