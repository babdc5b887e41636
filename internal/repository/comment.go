package repository

import (
	"context"
	"errors"

	"rare/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	List(ctx context.Context) ([]models.Comment, error)
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	GetWithDetailsByPostID(ctx context.Context, postID uint) (*models.PostComments, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// GetWithDetailsByPostID returns the post header plus its comments joined
// with the author's display name. A missing post is NOT_FOUND even when
// stray comments reference its id.
func (r *commentRepository) GetWithDetailsByPostID(ctx context.Context, postID uint) (*models.PostComments, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Select("id", "title").
		First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	var details []models.CommentWithDetails
	if err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.subject, comments.content, comments.created_on, users.first_name || ' ' || users.last_name AS author_display_name").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.id ASC").
		Scan(&details).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	if details == nil {
		details = []models.CommentWithDetails{}
	}
	return &models.PostComments{
		Post:     models.PostSummary{ID: post.ID, Title: post.Title},
		Comments: details,
	}, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update changes the comment body only; subject, author and post binding
// are immutable after creation.
func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", comment.ID)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Comment", id)
	}
	return nil
}
