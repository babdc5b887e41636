// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"rare/internal/middleware"
	"rare/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedIfEmpty inserts the baseline datasets. Each table is checked
// independently, so a table someone already populated is left alone while
// the empty ones still get their rows. Order follows foreign keys.
func SeedIfEmpty(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"users", seedUsers},
		{"tags", seedTags},
		{"categories", seedCategories},
		{"posts", seedPosts},
		{"comments", seedComments},
		{"reactions", seedReactions},
		{"post_reactions", seedPostReactions},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

func tableIsEmpty(db *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedUsers(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.User{})
	if err != nil || !empty {
		return err
	}

	type account struct {
		name      string
		password  string
		createdOn time.Time
	}
	accounts := []account{
		{"test", "test", date(2025, time.August, 12)},
		{"test2", "test2", date(2025, time.August, 2)},
		{"test3", "test3", date(2025, time.August, 1)},
	}

	users := make([]models.User, 0, len(accounts))
	for _, a := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			FirstName:       a.name,
			LastName:        a.name,
			Email:           a.name + "@test.com",
			Bio:             a.name,
			Username:        a.name,
			Password:        string(hashed),
			ProfileImageURL: a.name,
			CreatedOn:       a.createdOn,
			Active:          true,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}
	middleware.Logger.Info("Seeded baseline users", slog.Int("count", len(users)))
	return nil
}

func seedTags(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.Tag{})
	if err != nil || !empty {
		return err
	}

	tags := []models.Tag{
		{Label: "#meme"},
		{Label: "#fitness"},
		{Label: "#beach"},
	}
	return db.Create(&tags).Error
}

func seedCategories(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.Category{})
	if err != nil || !empty {
		return err
	}

	categories := []models.Category{
		{Label: "News"},
		{Label: "Sports"},
		{Label: "Entertainment"},
		{Label: "Gaming"},
		{Label: "Music"},
		{Label: "Movies"},
	}
	return db.Create(&categories).Error
}

func seedPosts(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.Post{})
	if err != nil || !empty {
		return err
	}

	posts := []models.Post{
		{
			UserID:          1,
			CategoryID:      1,
			Title:           "First Post",
			PublicationDate: date(2025, time.August, 12),
			ImageURL:        "https://example.com/image1.png",
			Content:         "Hello World! This is my first post.",
			Approved:        true,
		},
		{
			UserID:          2,
			CategoryID:      2,
			Title:           "Second Post",
			PublicationDate: date(2022, time.July, 1),
			ImageURL:        "https://example.com/image2.png",
			Content:         "Another post about sports!",
			Approved:        true,
		},
		{
			UserID:          1,
			CategoryID:      3,
			Title:           "Entertainment News",
			PublicationDate: date(2025, time.August, 11),
			ImageURL:        "https://example.com/image3.png",
			Content:         "Latest entertainment updates.",
			Approved:        false,
		},
	}
	return db.Create(&posts).Error
}

func seedComments(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.Comment{})
	if err != nil || !empty {
		return err
	}

	comments := []models.Comment{
		{PostID: 1, AuthorID: 2, Content: "Great first post!"},
		{PostID: 1, AuthorID: 1, Content: "Thanks for the comment!"},
		{PostID: 2, AuthorID: 1, Content: "Love this sports content."},
	}
	return db.Create(&comments).Error
}

func seedReactions(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.Reaction{})
	if err != nil || !empty {
		return err
	}

	reactions := []models.Reaction{
		{Label: "Like", ImageURL: "https://example.com/reactions/like.png"},
		{Label: "Love", ImageURL: "https://example.com/reactions/love.png"},
		{Label: "Laugh", ImageURL: "https://example.com/reactions/laugh.png"},
		{Label: "Wow", ImageURL: "https://example.com/reactions/wow.png"},
		{Label: "Sad", ImageURL: "https://example.com/reactions/sad.png"},
		{Label: "Angry", ImageURL: "https://example.com/reactions/angry.png"},
	}
	return db.Create(&reactions).Error
}

func seedPostReactions(db *gorm.DB) error {
	empty, err := tableIsEmpty(db, &models.PostReaction{})
	if err != nil || !empty {
		return err
	}

	postReactions := []models.PostReaction{
		{UserID: 2, ReactionID: 1, PostID: 1},
		{UserID: 1, ReactionID: 2, PostID: 2},
	}
	return db.Create(&postReactions).Error
}
