package s3

import (
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/ttylabs/tty/backend/internal/apperrors"
	"github.com/ttylabs/tty/backend/internal/storage"
)

const keyPrefix = "videos"

// Service implements the ObjectStorage interface against an S3-compatible store
type Service struct {
	uploader *s3manager.Uploader
	bucket   string
	logger   storage.Logger
}

// NewService creates a new S3 relay client. It must only be constructed when
// credentials are configured; an unconfigured deployment wires no client at all.
func NewService(cfg *storage.S3Config, logger storage.Logger) (*Service, error) {
	awsConfig := aws.NewConfig().
		WithRegion(cfg.Region).
		WithCredentials(credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""))

	if cfg.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(cfg.Endpoint).WithS3ForcePathStyle(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %v", err)
	}

	return &Service{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		logger:   logger,
	}, nil
}

// Upload relays a locally stored file to the remote bucket and returns its
// durable URL together with the probed media duration. The duration probe is
// part of a successful relay; a probe failure degrades the metadata but does
// not fail the relay.
func (s *Service) Upload(localPath, storedName string) (*storage.RemoteUpload, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, apperrors.NewRemoteUploadError("failed to open file for relay", err)
	}
	defer file.Close()

	result, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Join(keyPrefix, storedName)),
		Body:   file,
	})
	if err != nil {
		return nil, apperrors.NewRemoteUploadError("failed to upload file to S3", err)
	}

	upload := &storage.RemoteUpload{URL: result.Location}

	duration, err := ProbeDuration(localPath)
	if err != nil {
		s.logger.LogWarn("Failed to probe media duration", map[string]interface{}{
			"path":  localPath,
			"error": err.Error(),
		})
	} else {
		upload.Duration = duration
	}

	s.logger.LogInfo("Relayed file to remote storage", map[string]interface{}{
		"file": storedName,
		"url":  result.Location,
	})

	return upload, nil
}
