package intake

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danielmerja/stnh/internal/cache"
	"github.com/danielmerja/stnh/internal/models"
	"github.com/danielmerja/stnh/internal/store"
)

// Mode selects where accepted submissions land.
type Mode string

const (
	// ModeDirect publishes straight into the posts table (the default,
	// matching current production behavior).
	ModeDirect Mode = "direct"
	// ModeModerated stages into the submissions table instead; pending
	// rows wait for a moderation pass that does not exist yet.
	ModeModerated Mode = "moderated"
)

// submittedBy tags rows created without authentication.
const submittedBy = "anonymous"

type SubmitRequest struct {
	PostURL     string `json:"post_url" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int    `json:"category_id" binding:"required"`
}

type SubmitResult struct {
	Status string `json:"status"` // "published" or "pending"
}

type Service struct {
	posts       *store.Posts
	submissions *store.Submissions
	listings    *cache.Listings
	mode        Mode
	log         *zap.Logger
}

func NewService(posts *store.Posts, submissions *store.Submissions, listings *cache.Listings, mode Mode, log *zap.Logger) *Service {
	return &Service{posts: posts, submissions: submissions, listings: listings, mode: mode, log: log}
}

// Submit validates the URL, rejects duplicates and persists the post.
// Returned errors are the typed sentinels from this package and the store
// package; anything else is an internal fault with prior state intact.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	postType, externalID, err := Classify(req.PostURL)
	if err != nil {
		return SubmitResult{}, err
	}

	exists, err := s.posts.ExistsByExternal(ctx, postType, externalID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("error checking for existing post: %w", err)
	}
	if exists {
		return SubmitResult{}, store.ErrDuplicatePost
	}

	if s.mode == ModeModerated {
		staged, err := s.submissions.ExistsByExternal(ctx, postType, externalID)
		if err != nil {
			return SubmitResult{}, fmt.Errorf("error checking for pending submission: %w", err)
		}
		if staged {
			return SubmitResult{}, store.ErrDuplicatePost
		}

		submission := models.Submission{
			PostType:    postType,
			PostID:      externalID,
			CategoryID:  req.CategoryID,
			Title:       req.Title,
			Description: req.Description,
			SubmittedBy: submittedBy,
			Status:      models.SubmissionPending,
		}
		if err := s.submissions.Create(ctx, &submission); err != nil {
			return SubmitResult{}, err
		}
		s.log.Info("submission staged for moderation",
			zap.String("post_type", postType), zap.String("external_id", externalID))
		return SubmitResult{Status: models.SubmissionPending}, nil
	}

	post := models.Post{
		PostType:    postType,
		PostID:      externalID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPublished,
		SubmittedBy: submittedBy,
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return SubmitResult{}, err
	}

	// New post must show up on the next listing read.
	s.listings.Invalidate(ctx)

	s.log.Info("post published",
		zap.String("post_type", postType), zap.String("external_id", externalID), zap.Int("id", post.ID))
	return SubmitResult{Status: models.StatusPublished}, nil
}
