package models

import "time"

// SubmissionPending is the status new submissions land in when intake
// runs in moderated mode. There is no promotion step yet; pending rows
// wait for a future moderation surface.
const SubmissionPending = "pending"

// Submission is a staging record for moderated intake. In direct mode the
// table is bypassed and intake writes a published Post instead.
type Submission struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	PostType    string    `gorm:"not null;uniqueIndex:idx_submissions_external" json:"post_type"`
	PostID      string    `gorm:"not null;uniqueIndex:idx_submissions_external" json:"post_id"`
	CategoryID  int       `json:"category_id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	SubmittedBy string    `json:"submitted_by,omitempty"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
