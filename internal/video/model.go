package video

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video represents one successfully ingested upload. Records are immutable:
// once created they are only ever read, never updated or deleted.
type Video struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename   string    `json:"filename"`
	LocalPath  string    `json:"localPath"`
	RemoteURL  string    `gorm:"column:remote_url" json:"remoteUrl,omitempty"`
	Size       int64     `json:"size"`
	Duration   *float64  `json:"duration,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// BeforeCreate assigns the record identity and creation timestamp
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.UploadedAt.IsZero() {
		v.UploadedAt = time.Now()
	}
	return nil
}

// URL returns the servable location for this video. The remote URL is
// authoritative when present; the local path can go stale after a successful
// relay and is kept as historical metadata.
func (v *Video) URL() string {
	if v.RemoteURL != "" {
		return v.RemoteURL
	}
	return v.LocalPath
}
