package video

import (
	"io"

	"github.com/ttylabs/tty/backend/internal/storage"
)

// Service implements the ingestion pipeline: receive, local persist,
// conditional remote relay, metadata persist.
type Service struct {
	repo         Repository
	blobs        storage.BlobStore
	remote       storage.ObjectStorage
	relayEnabled bool
	logger       Logger
}

// NewService creates a new ingestion service. remote may be nil when no
// remote storage credentials are configured.
func NewService(repo Repository, blobs storage.BlobStore, remote storage.ObjectStorage, relayEnabled bool, logger Logger) *Service {
	return &Service{
		repo:         repo,
		blobs:        blobs,
		remote:       remote,
		relayEnabled: relayEnabled,
		logger:       logger,
	}
}

// Ingest runs the pipeline for one upload. Local-write and metadata-write
// failures are fatal to the request; a failed remote relay degrades to
// local-only serving. Nothing is retried.
func (s *Service) Ingest(file io.Reader, originalName string, declaredSize int64) (*Video, error) {
	blob, err := s.blobs.Save(file, originalName)
	if err != nil {
		return nil, err
	}

	// Both facts are evaluated exactly once per request.
	relay := s.remote != nil && s.relayEnabled

	var remoteURL string
	var duration *float64
	if relay {
		result, err := s.remote.Upload(blob.AbsolutePath, blob.StoredName)
		if err != nil {
			s.logger.LogWarn("Remote relay failed, serving from local storage", map[string]interface{}{
				"file":  blob.StoredName,
				"error": err.Error(),
			})
		} else {
			remoteURL = result.URL
			if result.Duration > 0 {
				d := result.Duration
				duration = &d
			}
			// The local copy is superseded; cleanup failure never rolls
			// back the relay.
			if err := s.blobs.Remove(blob.StoredName); err != nil {
				s.logger.LogWarn("Failed to remove local file after relay", map[string]interface{}{
					"file":  blob.StoredName,
					"error": err.Error(),
				})
			}
		}
	}

	// LocalPath is recorded even when the relay removed the local copy;
	// the remote URL stays authoritative for serving.
	v := &Video{
		Filename:  originalName,
		LocalPath: blob.PublicPath,
		RemoteURL: remoteURL,
		Size:      blob.Size,
		Duration:  duration,
	}

	if err := s.repo.Insert(v); err != nil {
		if remoteURL != "" {
			// The relayed blob is orphaned; logged so an operator can reap it.
			s.logger.LogError(err, "Metadata persist failed after relay, remote blob orphaned: "+remoteURL)
		}
		return nil, err
	}

	s.logger.LogInfo("Video ingested", map[string]interface{}{
		"id":      v.ID.String(),
		"file":    blob.StoredName,
		"size":    blob.Size,
		"relayed": remoteURL != "",
	})

	return v, nil
}

// List returns all videos newest first
func (s *Service) List() ([]Video, error) {
	return s.repo.ListRecent()
}

// Get returns a single video by id
func (s *Service) Get(id string) (*Video, error) {
	return s.repo.GetByID(id)
}
