package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danielmerja/stnh/internal/models"
)

// Submissions is the staging table used by moderated intake. Nothing
// reads it back yet; promotion to a published post is a future moderation
// surface.
type Submissions struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubmissions(db *gorm.DB, log *zap.Logger) *Submissions {
	return &Submissions{db: db, log: log}
}

// ExistsByExternal reports whether the external post is already staged.
func (s *Submissions) ExistsByExternal(ctx context.Context, postType, externalID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("post_type = ? AND post_id = ?", postType, externalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create stages a submission. The unique (post_type, post_id) index
// mirrors the one on posts, so a race past a prior ExistsByExternal check
// still comes back as ErrDuplicatePost.
func (s *Submissions) Create(ctx context.Context, submission *models.Submission) error {
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePost
		}
		return err
	}
	return nil
}
