package storage

import (
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ttylabs/tty/backend/internal/apperrors"
)

// LocalStore implements BlobStore on top of a local directory.
// Stored names carry a per-request unique prefix so concurrent uploads
// never contend on the same path.
type LocalStore struct {
	dir        string
	publicPath string
	maxSize    int64
	logger     Logger
}

// NewLocalStore creates a local blob store, creating the upload directory if needed
func NewLocalStore(cfg *Config, logger Logger) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, apperrors.NewStorageError("failed to create upload directory", err)
	}

	return &LocalStore{
		dir:        cfg.UploadDir,
		publicPath: cfg.PublicPath,
		maxSize:    cfg.MaxFileSize,
		logger:     logger,
	}, nil
}

// Save writes the stream to a uniquely named file in the upload directory.
// Streams exceeding the size limit are rejected and the partial file removed,
// so no over-limit blob is ever left in the public directory.
func (s *LocalStore) Save(r io.Reader, originalName string) (*SavedBlob, error) {
	storedName := uuid.New().String() + "-" + sanitizeName(originalName)
	absolutePath := filepath.Join(s.dir, storedName)

	dest, err := os.Create(absolutePath)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to create destination file", err)
	}

	written, err := io.Copy(dest, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		dest.Close()
		os.Remove(absolutePath)
		return nil, apperrors.NewStorageError("failed to write upload", err)
	}

	if err := dest.Close(); err != nil {
		os.Remove(absolutePath)
		return nil, apperrors.NewStorageError("failed to finalize upload", err)
	}

	if written > s.maxSize {
		os.Remove(absolutePath)
		return nil, apperrors.NewPayloadTooLargeError(written, s.maxSize)
	}

	s.logger.LogInfo("Stored upload locally", map[string]interface{}{
		"file": storedName,
		"size": written,
	})

	return &SavedBlob{
		StoredName:   storedName,
		PublicPath:   path.Join(s.publicPath, storedName),
		AbsolutePath: absolutePath,
		Size:         written,
	}, nil
}

// Remove deletes a previously saved file. Best-effort: callers log the
// returned CleanupError and carry on.
func (s *LocalStore) Remove(storedName string) error {
	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil {
		return apperrors.NewCleanupError(storedName, err)
	}
	return nil
}

// Dir returns the upload directory
func (s *LocalStore) Dir() string {
	return s.dir
}

// sanitizeName reduces a client-supplied filename to a safe base name
func sanitizeName(name string) string {
	base := filepath.Base(filepath.Clean(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "upload"
	}
	return base
}
