package models

import "time"

// Post types for supported platforms
const (
	PostTypeTwitter  = "twitter"
	PostTypeLinkedIn = "linkedin"
)

// StatusPublished is the only status the listing queries ever return.
const StatusPublished = "published"

// Post is an archived reference to an external social-media post. The
// (PostType, PostID) pair is unique: a given external post can be archived
// at most once. Counters are maintained by the vote reconciler only.
type Post struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	PostType    string    `gorm:"not null;uniqueIndex:idx_posts_external" json:"post_type"`
	PostID      string    `gorm:"not null;uniqueIndex:idx_posts_external" json:"post_id"`
	CategoryID  int       `gorm:"index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `gorm:"not null;default:published;index" json:"status"`
	Upvotes     int       `gorm:"default:0" json:"upvotes"`
	Downvotes   int       `gorm:"default:0" json:"downvotes"`
	SubmittedBy string    `json:"submitted_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
