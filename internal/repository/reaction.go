package repository

import (
	"context"
	"errors"

	"rare/internal/cache"
	"rare/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository defines persistence operations for reactions and
// post/reaction associations.
type ReactionRepository interface {
	List(ctx context.Context) ([]models.Reaction, error)
	GetByID(ctx context.Context, id uint) (*models.Reaction, error)
	Create(ctx context.Context, reaction *models.Reaction) error
	AddPostReaction(ctx context.Context, userID, reactionID, postID uint) (uint, error)
	RemovePostReaction(ctx context.Context, userID, reactionID, postID uint) error
	GetPostReactionCounts(ctx context.Context, postID uint) ([]models.ReactionCount, error)
	GetUserPostReactions(ctx context.Context, postID, userID uint) ([]uint, error)
	GetPostWithReactions(ctx context.Context, postID, userID uint) (*models.PostWithReactions, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository returns a new ReactionRepository implementation.
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) List(ctx context.Context) ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := cache.CacheAside(ctx, cache.ReactionsKey, &reactions, cache.LookupTTL, func() error {
		if err := r.db.WithContext(ctx).Order("id ASC").Find(&reactions).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

func (r *reactionRepository) GetByID(ctx context.Context, id uint) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.WithContext(ctx).First(&reaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reaction", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

func (r *reactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	if err := r.db.WithContext(ctx).Create(reaction).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.ReactionsKey)
	return nil
}

// AddPostReaction inserts the (user, reaction, post) row atomically. A
// repeat of an existing triple hits the unique constraint and returns the
// existing row's id, so the operation is idempotent under concurrency.
func (r *reactionRepository) AddPostReaction(ctx context.Context, userID, reactionID, postID uint) (uint, error) {
	var id uint
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO post_reactions (user_id, reaction_id, post_id) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, reaction_id, post_id) DO UPDATE SET post_id = excluded.post_id
		 RETURNING id`,
		userID, reactionID, postID,
	).Scan(&id).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostReactionsKey(postID))
	return id, nil
}

func (r *reactionRepository) RemovePostReaction(ctx context.Context, userID, reactionID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND reaction_id = ? AND post_id = ?", userID, reactionID, postID).
		Delete(&models.PostReaction{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("PostReaction", postID)
	}
	cache.Invalidate(ctx, cache.PostReactionsKey(postID))
	return nil
}

// GetPostReactionCounts returns one row per reaction in the vocabulary,
// zero-filled for reactions nobody used, ordered by reaction id.
func (r *reactionRepository) GetPostReactionCounts(ctx context.Context, postID uint) ([]models.ReactionCount, error) {
	var counts []models.ReactionCount
	err := cache.CacheAside(ctx, cache.PostReactionsKey(postID), &counts, cache.PostReactionsTTL, func() error {
		if err := r.db.WithContext(ctx).
			Table("reactions").
			Select("reactions.id AS reaction_id, reactions.label, reactions.image_url, COUNT(post_reactions.id) AS count").
			Joins("LEFT JOIN post_reactions ON post_reactions.reaction_id = reactions.id AND post_reactions.post_id = ?", postID).
			Group("reactions.id, reactions.label, reactions.image_url").
			Order("reactions.id ASC").
			Scan(&counts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *reactionRepository) GetUserPostReactions(ctx context.Context, postID, userID uint) ([]uint, error) {
	var reactionIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.PostReaction{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Order("reaction_id ASC").
		Pluck("reaction_id", &reactionIDs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reactionIDs, nil
}

// GetPostWithReactions assembles the post detail view: the post row, the
// zero-filled reaction tallies, and the caller's own reaction ids. userID 0
// means an anonymous caller and yields an empty user reaction list.
func (r *reactionRepository) GetPostWithReactions(ctx context.Context, postID, userID uint) (*models.PostWithReactions, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	counts, err := r.GetPostReactionCounts(ctx, postID)
	if err != nil {
		return nil, err
	}

	userReactions := []uint{}
	if userID != 0 {
		userReactions, err = r.GetUserPostReactions(ctx, postID, userID)
		if err != nil {
			return nil, err
		}
		if userReactions == nil {
			userReactions = []uint{}
		}
	}

	return &models.PostWithReactions{
		Post:           post,
		ReactionCounts: counts,
		UserReactions:  userReactions,
	}, nil
}
