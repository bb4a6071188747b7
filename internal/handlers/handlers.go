package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danielmerja/stnh/internal/cache"
	"github.com/danielmerja/stnh/internal/intake"
	"github.com/danielmerja/stnh/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Category   *CategoryHandler
	Post       *PostHandler
	Submission *SubmissionHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, listings *cache.Listings, mode intake.Mode, log *zap.Logger) *Handler {
	posts := store.NewPosts(db, log)
	submissions := store.NewSubmissions(db, log)

	return &Handler{
		Category:   NewCategoryHandler(store.NewCategories(db, log)),
		Post:       NewPostHandler(posts, listings),
		Submission: NewSubmissionHandler(intake.NewService(posts, submissions, listings, mode, log)),
	}
}
