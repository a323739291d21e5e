package common

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DefaultMaxReadSize caps how much of a file ReadFile will load.
const DefaultMaxReadSize int64 = 10 * 1024 * 1024

// FileManager provides file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists reports whether path names an existing file or directory.
// Errors other than "does not exist" (e.g. permission denied) count as existing.
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ReadFile reads a whole file, refusing files larger than maxSize bytes (0 means DefaultMaxReadSize).
func (fm *FileManager) ReadFile(path string, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxReadSize
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, WrapError(ErrNotFound, "file "+path)
		}
		return nil, WrapError(err, "failed to stat file: "+path)
	}
	if info.IsDir() {
		return nil, NewValidationError("path", path, "is a directory")
	}
	if info.Size() > maxSize {
		return nil, NewValidationError("path", path, "file exceeds maximum readable size")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "failed to read file: "+path)
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Read file")
	return data, nil
}

// CreateFile opens path for writing, creating parent directories as needed.
func (fm *FileManager) CreateFile(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, WrapError(err, "failed to create directory: "+dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, WrapError(err, "failed to create file: "+path)
	}

	fm.logger.Debug().Str("path", path).Msg("Created file")
	return f, nil
}
