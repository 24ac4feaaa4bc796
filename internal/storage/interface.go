package storage

import "io"

// BlobStore writes upload streams to local storage and removes them again
type BlobStore interface {
	Save(r io.Reader, originalName string) (*SavedBlob, error)
	Remove(storedName string) error
}

// ObjectStorage relays a locally stored file to a remote media host
type ObjectStorage interface {
	Upload(localPath, storedName string) (*RemoteUpload, error)
}

// Logger defines the logging operations needed by storage services
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogWarn(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}
