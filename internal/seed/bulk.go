package seed

import (
	"log/slog"

	"rare/internal/middleware"
	"rare/internal/models"

	"gorm.io/gorm"
)

// Bulk generates a larger randomized dataset on top of the baseline rows:
// numUsers accounts, numPosts posts spread across them, plus comments,
// reactions, tags and subscriptions to make the mesh feel lived-in.
func Bulk(db *gorm.DB, numUsers, numPosts int) error {
	f := NewFactory(db)

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}
	var tags []models.Tag
	if err := db.Find(&tags).Error; err != nil {
		return err
	}
	var reactions []models.Reaction
	if err := db.Find(&reactions).Error; err != nil {
		return err
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	middleware.Logger.Info("Bulk-seeded users", slog.Int("count", len(users)))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[f.rand.Intn(len(users))]
		categoryID := categories[f.rand.Intn(len(categories))].ID
		post, err := f.CreatePost(author, categoryID)
		if err != nil {
			return err
		}
		posts = append(posts, post)

		for _, tag := range tags {
			if f.rand.Intn(4) == 0 {
				if err := f.TagPost(post, tag.ID); err != nil {
					return err
				}
			}
		}
	}
	middleware.Logger.Info("Bulk-seeded posts", slog.Int("count", len(posts)))

	for _, post := range posts {
		for i := 0; i < f.rand.Intn(4); i++ {
			commenter := users[f.rand.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
		}
		for i := 0; i < f.rand.Intn(6); i++ {
			reactor := users[f.rand.Intn(len(users))]
			reaction := reactions[f.rand.Intn(len(reactions))]
			if err := f.CreatePostReaction(reactor, post, reaction.ID); err != nil {
				return err
			}
		}
	}

	// Each user follows a handful of others.
	for _, follower := range users {
		seen := map[uint]bool{follower.ID: true}
		for i := 0; i < 3; i++ {
			author := users[f.rand.Intn(len(users))]
			if seen[author.ID] {
				continue
			}
			seen[author.ID] = true
			if err := f.CreateSubscription(follower, author); err != nil {
				return err
			}
		}
	}

	middleware.Logger.Info("Bulk seeding complete")
	return nil
}
