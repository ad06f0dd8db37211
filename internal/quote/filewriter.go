package quote

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type fileWriter struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

// NewFileWriter returns a generator that writes each quote request as a
// JSON document for an external renderer to pick up.
func NewFileWriter(fs afero.Fs, dir string, logger *zap.Logger) *fileWriter {
	return &fileWriter{
		fs:     fs,
		dir:    dir,
		logger: logger,
	}
}

func (w *fileWriter) Generate(req Request) error {
	raw, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return err
	}

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("cotizacion-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(w.dir, name)
	if err := afero.WriteFile(w.fs, path, raw, 0o644); err != nil {
		return err
	}

	w.logger.Info("Quote written", zap.String("path", path))
	return nil
}
