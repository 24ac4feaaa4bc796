package apperrors

import "fmt"

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload of %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}

func (e *RemoteUploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CleanupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to remove %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to remove %s", e.Path)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError creates a new StorageError
func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{Message: message, Cause: cause}
}

// NewPayloadTooLargeError creates a new PayloadTooLargeError
func NewPayloadTooLargeError(size, limit int64) *PayloadTooLargeError {
	return &PayloadTooLargeError{Size: size, Limit: limit}
}

// NewRemoteUploadError creates a new RemoteUploadError
func NewRemoteUploadError(message string, cause error) *RemoteUploadError {
	return &RemoteUploadError{Message: message, Cause: cause}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(message string, cause error) *PersistenceError {
	return &PersistenceError{Message: message, Cause: cause}
}

// NewCleanupError creates a new CleanupError
func NewCleanupError(path string, cause error) *CleanupError {
	return &CleanupError{Path: path, Cause: cause}
}
