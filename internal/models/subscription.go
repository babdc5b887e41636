package models

import "time"

// Subscription represents one user (the follower) following an author.
type Subscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null" json:"follower_id"`
	AuthorID   uint      `gorm:"not null" json:"author_id"`
	CreatedOn  time.Time `json:"created_on"`
}

// SubscriptionCount is the follower tally for one author.
type SubscriptionCount struct {
	AuthorID uint  `json:"author_id"`
	Count    int64 `json:"count"`
}
