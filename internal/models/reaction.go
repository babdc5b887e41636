package models

// Reaction is one entry of the fixed reaction vocabulary
// (Like, Love, Laugh, Wow, Sad, Angry).
type Reaction struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Label    string `gorm:"not null" json:"label"`
	ImageURL string `json:"image_url"`
}

// PostReaction records one user's reaction on one post.
// The (user, reaction, post) triple is unique; adds are idempotent.
type PostReaction struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_user_reaction_post" json:"user_id"`
	ReactionID uint `gorm:"not null;uniqueIndex:idx_user_reaction_post" json:"reaction_id"`
	PostID     uint `gorm:"not null;uniqueIndex:idx_user_reaction_post" json:"post_id"`
}

// AddPostReactionRequest is the body of POST /posts/:id/reactions.
type AddPostReactionRequest struct {
	UserID     uint `json:"user_id"`
	ReactionID uint `json:"reaction_id"`
}

// ReactionCount is one row of the zero-filled per-reaction tally for a post.
type ReactionCount struct {
	ReactionID uint   `json:"reaction_id"`
	Label      string `json:"label"`
	ImageURL   string `json:"image_url"`
	Count      int64  `json:"count"`
}

// PostWithReactions is the composite detail view: the post, its reaction
// tallies, and the ids of the reactions the requesting user has used.
type PostWithReactions struct {
	Post           Post            `json:"post"`
	ReactionCounts []ReactionCount `json:"reaction_counts"`
	UserReactions  []uint          `json:"user_reactions"`
}
