package repository

import (
	"context"
	"errors"

	"rare/internal/cache"
	"rare/internal/models"

	"gorm.io/gorm"
)

// SubscriptionRepository defines persistence operations for subscriptions.
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Subscription, error)
	CountByAuthorID(ctx context.Context, authorID uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository returns a new SubscriptionRepository implementation.
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetByID(ctx context.Context, id uint) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := r.db.WithContext(ctx).First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Subscription", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &subscription, nil
}

func (r *subscriptionRepository) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := cache.CacheAside(ctx, cache.SubscriptionCountKey(authorID), &count, cache.SubscriptionCountTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Subscription{}).
			Where("author_id = ?", authorID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
