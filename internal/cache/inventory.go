package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	PostKeyPrefix        = "post:%d"
	PostReactionsPrefix  = "post:%d:reactions"
	CategoriesKey        = "categories"
	TagsKey              = "tags"
	ReactionsKey         = "reactions"
	SubscriptionCountPfx = "author:%d:followers"
)

const (
	UserTTL              = 5 * time.Minute
	PostTTL              = 30 * time.Minute
	PostReactionsTTL     = 2 * time.Minute
	LookupTTL            = 10 * time.Minute
	SubscriptionCountTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func PostReactionsKey(postID uint) string {
	return fmt.Sprintf(PostReactionsPrefix, postID)
}

func SubscriptionCountKey(authorID uint) string {
	return fmt.Sprintf(SubscriptionCountPfx, authorID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostReactionsKey(postID))
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}

func InvalidateTags(ctx context.Context) {
	Invalidate(ctx, TagsKey)
}

func InvalidateSubscriptionCount(ctx context.Context, authorID uint) {
	Invalidate(ctx, SubscriptionCountKey(authorID))
}
