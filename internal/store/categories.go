package store

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danielmerja/stnh/internal/models"
)

type Categories struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCategories(db *gorm.DB, log *zap.Logger) *Categories {
	return &Categories{db: db, log: log}
}

// List returns all categories ordered by name. A store fault returns an
// empty list; callers must render without categories rather than fail.
func (s *Categories) List(ctx context.Context) []models.Category {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		s.log.Error("failed to list categories", zap.Error(err))
		return []models.Category{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}
