// Package models contains data structures for the application's domain models.
package models

import "time"

// Comment represents a comment on a post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null" json:"post_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Subject   string    `json:"subject"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedOn time.Time `json:"created_on"`
}

// CommentWithDetails is the joined read shape for the comments-with-details
// listing: the comment plus the author's display name.
type CommentWithDetails struct {
	ID                uint      `json:"id"`
	Subject           string    `json:"subject"`
	Content           string    `json:"content"`
	AuthorDisplayName string    `json:"author_display_name"`
	CreatedOn         time.Time `json:"created_on"`
}

// PostComments pairs a post summary with its detailed comments.
type PostComments struct {
	Post     PostSummary          `json:"post"`
	Comments []CommentWithDetails `json:"comments"`
}

// PostSummary is the minimal post header returned with comment details.
type PostSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}
