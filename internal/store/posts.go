package store

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danielmerja/stnh/internal/models"
)

// Sort options for post listings.
type SortOption string

const (
	// SortTrending is the default. Despite the name it is not a decay
	// score: it orders by upvotes with a recency tie-break.
	SortTrending SortOption = "trending"
	SortRecent   SortOption = "recent"
	SortTop      SortOption = "top"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// PostFilter is the full specification of one listing read. Handlers fill
// it from query parameters; the store turns it into a single query.
type PostFilter struct {
	CategorySlug string
	Search       string
	Sort         SortOption
	Limit        int
	Offset       int
}

// Normalized clamps the filter to its effective form: unknown sorts fall
// back to trending, the limit gets its default and cap, negative offsets
// become zero. List applies it internally; cache keys must be built from
// the normalized filter so equivalent requests share an entry.
func (f PostFilter) Normalized() PostFilter {
	switch f.Sort {
	case SortRecent, SortTop, SortTrending:
	default:
		f.Sort = SortTrending
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

type Posts struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPosts(db *gorm.DB, log *zap.Logger) *Posts {
	return &Posts{db: db, log: log}
}

// List returns published posts matching the filter, each with its
// category joined. An unknown category slug yields an empty page, not an
// unfiltered one. Store faults degrade to an empty page and a log line.
func (s *Posts) List(ctx context.Context, f PostFilter) []models.Post {
	f = f.Normalized()

	q := s.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", models.StatusPublished)

	if f.CategorySlug != "" {
		var category models.Category
		err := s.db.WithContext(ctx).Where("slug = ?", f.CategorySlug).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Post{}
		}
		if err != nil {
			s.log.Error("failed to resolve category slug", zap.String("slug", f.CategorySlug), zap.Error(err))
			return []models.Post{}
		}
		q = q.Where("category_id = ?", category.ID)
	}

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	switch f.Sort {
	case SortRecent:
		q = q.Order("created_at DESC")
	case SortTop:
		q = q.Order("upvotes DESC")
	default:
		q = q.Order("upvotes DESC").Order("created_at DESC")
	}

	var posts []models.Post
	if err := q.Limit(f.Limit).Offset(f.Offset).Find(&posts).Error; err != nil {
		s.log.Error("failed to list posts", zap.Error(err))
		return []models.Post{}
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts
}

// Get returns a single post with its category, or found=false. Store
// faults also report not found; the distinction does not matter to the
// caller and is logged here.
func (s *Posts) Get(ctx context.Context, id int) (models.Post, bool) {
	var post models.Post
	err := s.db.WithContext(ctx).Preload("Category").First(&post, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("failed to fetch post", zap.Int("id", id), zap.Error(err))
		}
		return models.Post{}, false
	}
	return post, true
}

// ExistsByExternal reports whether an external post is already archived.
func (s *Posts) ExistsByExternal(ctx context.Context, postType, externalID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("post_type = ? AND post_id = ?", postType, externalID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new post. A unique-index violation on
// (post_type, post_id) comes back as ErrDuplicatePost, which closes the
// race left open by a prior ExistsByExternal check.
func (s *Posts) Create(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePost
		}
		return err
	}
	return nil
}
