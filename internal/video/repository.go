package video

import (
	"errors"

	"github.com/ttylabs/tty/backend/internal/apperrors"
	"gorm.io/gorm"
)

// gormRepository implements Repository on top of GORM
type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a new metadata repository
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Insert persists a new video record, assigning its id and timestamp
func (r *gormRepository) Insert(v *Video) error {
	if err := r.db.Create(v).Error; err != nil {
		return apperrors.NewPersistenceError("failed to create video record", err)
	}
	return nil
}

// ListRecent returns all videos newest first. A fresh query on every call,
// returning an empty slice when no records exist.
func (r *gormRepository) ListRecent() ([]Video, error) {
	videos := make([]Video, 0)
	if err := r.db.Order("uploaded_at desc").Find(&videos).Error; err != nil {
		return nil, apperrors.NewPersistenceError("failed to list videos", err)
	}
	return videos, nil
}

// GetByID returns a single video or ErrNotFound
func (r *gormRepository) GetByID(id string) (*Video, error) {
	var v Video
	if err := r.db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.NewPersistenceError("failed to get video", err)
	}
	return &v, nil
}
