package storage

// Config holds local blob store settings
type Config struct {
	// UploadDir is the directory uploads are written to.
	UploadDir string
	// PublicPath is the URL prefix under which stored blobs are served.
	PublicPath string
	// MaxFileSize is the largest accepted upload in bytes.
	MaxFileSize int64
}

// S3Config holds remote object storage settings
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

// SavedBlob describes a blob written to the local store
type SavedBlob struct {
	// StoredName is the unique on-disk file name (<prefix>-<originalName>).
	StoredName string
	// PublicPath is the URL path the blob is served under.
	PublicPath string
	// AbsolutePath is the filesystem location of the stored blob.
	AbsolutePath string
	// Size is the number of bytes written.
	Size int64
}

// RemoteUpload describes a blob relayed to the remote object store
type RemoteUpload struct {
	// URL is the durable location returned by the remote store.
	URL string
	// Duration is the media duration in seconds, 0 when it could not be derived.
	Duration float64
}
