// Factories build randomized demo entities for the bulk seeder. They are
// intended for development databases only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"rare/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user. All factory users share
// the password "password123". Optional override functions may modify the
// generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:       gofakeit.FirstName(),
		LastName:        gofakeit.LastName(),
		Email:           gofakeit.Email(),
		Bio:             gofakeit.Sentence(10),
		Username:        gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Password:        string(hashed),
		ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		CreatedOn:       f.pastTime(365),
		Active:          true,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given author.
func (f *Factory) CreatePost(author *models.User, categoryID uint, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:          author.ID,
		CategoryID:      categoryID,
		Title:           gofakeit.Sentence(5),
		PublicationDate: f.pastTime(90),
		ImageURL:        fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Content:         gofakeit.Paragraph(1, 3, 5, "\n"),
		Approved:        f.rand.Intn(10) > 1, // most posts approved
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the provided
// post authored by the provided user.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		AuthorID:  author.ID,
		Subject:   gofakeit.Sentence(3),
		Content:   gofakeit.Sentence(8),
		CreatedOn: f.pastTime(30),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreatePostReaction persists a reaction from `user` on `post`. Duplicate
// triples are ignored, matching the API's idempotent add.
func (f *Factory) CreatePostReaction(user *models.User, post *models.Post, reactionID uint) error {
	return f.db.Exec(
		`INSERT INTO post_reactions (user_id, reaction_id, post_id) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, reaction_id, post_id) DO NOTHING`,
		user.ID, reactionID, post.ID,
	).Error
}

// CreateSubscription persists a follower/author pair.
func (f *Factory) CreateSubscription(follower, author *models.User) error {
	sub := &models.Subscription{
		FollowerID: follower.ID,
		AuthorID:   author.ID,
		CreatedOn:  f.pastTime(180),
	}
	return f.db.Create(sub).Error
}

// TagPost attaches the tag to the post, ignoring duplicates.
func (f *Factory) TagPost(post *models.Post, tagID uint) error {
	return f.db.Exec(
		`INSERT INTO post_tags (post_id, tag_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		post.ID, tagID,
	).Error
}

// pastTime returns a time up to maxDays in the past with hour/minute jitter.
func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	return time.Now().UTC().
		Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
