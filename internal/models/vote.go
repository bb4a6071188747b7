package models

import "time"

// Vote types
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Vote is the per-user ledger row behind a post's counters. At most one
// row exists per (PostID, UserID); voting the same way twice removes it,
// voting the other way flips VoteType in place.
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	PostID    int       `gorm:"not null;uniqueIndex:idx_votes_post_user" json:"post_id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_votes_post_user" json:"user_id"`
	VoteType  string    `gorm:"not null" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
