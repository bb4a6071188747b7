package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/danielmerja/stnh/internal/models"
)

// VoteResult carries the authoritative counters after reconciliation.
type VoteResult struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Vote applies one user action to the ledger and reconciles the post's
// counters, all inside a single transaction:
//
//   - no existing vote: insert one
//   - same vote type: remove it (toggle-off)
//   - opposite vote type: flip it in place
//
// The counters are then recomputed by counting ledger rows rather than by
// incremental arithmetic, so any drift between ledger and counters heals
// on the next vote. The unique (post_id, user_id) index backstops
// double-click races the lookup cannot see.
func (s *Posts) Vote(ctx context.Context, postID int, userID, voteType string) (VoteResult, error) {
	if voteType != models.VoteUp && voteType != models.VoteDown {
		return VoteResult{}, ErrInvalidVoteType
	}

	var result VoteResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var existing models.Vote
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case err == nil && existing.VoteType == voteType:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		case err == nil:
			existing.VoteType = voteType
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{PostID: postID, UserID: userID, VoteType: voteType}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
		default:
			return err
		}

		upvotes, downvotes, err := countVotes(tx, postID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			Updates(map[string]interface{}{"upvotes": upvotes, "downvotes": downvotes}).Error; err != nil {
			return err
		}

		result = VoteResult{Upvotes: upvotes, Downvotes: downvotes}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			s.log.Error("vote reconciliation failed",
				zap.Int("post_id", postID), zap.String("vote_type", voteType), zap.Error(err))
		}
		return VoteResult{}, err
	}
	return result, nil
}

func countVotes(tx *gorm.DB, postID int) (int, int, error) {
	var upvotes, downvotes int64
	if err := tx.Model(&models.Vote{}).
		Where("post_id = ? AND vote_type = ?", postID, models.VoteUp).
		Count(&upvotes).Error; err != nil {
		return 0, 0, err
	}
	if err := tx.Model(&models.Vote{}).
		Where("post_id = ? AND vote_type = ?", postID, models.VoteDown).
		Count(&downvotes).Error; err != nil {
		return 0, 0, err
	}
	return int(upvotes), int(downvotes), nil
}
