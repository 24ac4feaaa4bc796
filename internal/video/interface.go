package video

import (
	"errors"
	"io"
)

// ErrNotFound is returned when no video exists for a requested id
var ErrNotFound = errors.New("video not found")

// Repository persists and reads video metadata records
type Repository interface {
	Insert(v *Video) error
	ListRecent() ([]Video, error)
	GetByID(id string) (*Video, error)
}

// IngestService is the upload pipeline consumed by the HTTP layer
type IngestService interface {
	Ingest(file io.Reader, originalName string, declaredSize int64) (*Video, error)
	List() ([]Video, error)
	Get(id string) (*Video, error)
}

// Logger defines the logging operations needed by the video package
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogWarn(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}
