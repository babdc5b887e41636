package repository

import (
	"context"
	"errors"

	"rare/internal/cache"
	"rare/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines persistence operations for tags and post/tag pairs.
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
	GetPostTags(ctx context.Context, postID uint) ([]models.Tag, error)
	SavePostTags(ctx context.Context, postID uint, tagIDs []uint) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := cache.CacheAside(ctx, cache.TagsKey, &tags, cache.LookupTTL, func() error {
		if err := r.db.WithContext(ctx).Order("label ASC").Find(&tags).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTags(ctx)
	return nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	result := r.db.WithContext(ctx).Model(&models.Tag{}).
		Where("id = ?", tag.ID).
		Update("label", tag.Label)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", tag.ID)
	}
	cache.InvalidateTags(ctx)
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", id)
	}
	cache.InvalidateTags(ctx)
	return nil
}

func (r *tagRepository) GetPostTags(ctx context.Context, postID uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).
		Table("tags").
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.label ASC").
		Scan(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

// SavePostTags replaces the post's tag set in one transaction. Any failure
// rolls back to the prior set.
func (r *tagRepository) SavePostTags(ctx context.Context, postID uint, tagIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&models.PostTag{PostID: postID, TagID: tagID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
