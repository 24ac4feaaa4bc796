package apperrors

// ValidationError represents a malformed or missing input in a request
type ValidationError struct {
	Field   string
	Message string
}

// StorageError represents a failure writing to the local blob store.
// Fatal to the request that triggered it.
type StorageError struct {
	Message string
	Cause   error
}

// PayloadTooLargeError is returned when an upload exceeds the configured size limit
type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

// RemoteUploadError represents a failed relay to the remote object store.
// Recoverable: the request proceeds using local storage only.
type RemoteUploadError struct {
	Message string
	Cause   error
}

// PersistenceError represents a failure writing video metadata.
// Fatal to the request, even when the bytes are already stored.
type PersistenceError struct {
	Message string
	Cause   error
}

// CleanupError represents a failed best-effort removal of a local file.
// Never fails the caller's broader operation.
type CleanupError struct {
	Path  string
	Cause error
}
