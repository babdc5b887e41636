package repository

import (
	"context"
	"regexp"
	"testing"

	"rare/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentRepository_GetByPostID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "post_id", "content"}).
		AddRow(1, 7, "first").
		AddRow(2, 7, "second")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE post_id = $1 ORDER BY id ASC`)).
		WithArgs(7).
		WillReturnRows(rows)

	comments, err := repo.GetByPostID(ctx, 7)
	assert.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetWithDetailsByPostID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Post missing is not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","title" FROM "posts" WHERE "posts"."id" = $1 ORDER BY "posts"."id" LIMIT $2`)).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		details, err := repo.GetWithDetailsByPostID(ctx, 99)
		assert.Nil(t, details)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Joins author display name", func(t *testing.T) {
		postRows := sqlmock.NewRows([]string{"id", "title"}).AddRow(7, "A post")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","title" FROM "posts" WHERE "posts"."id" = $1 ORDER BY "posts"."id" LIMIT $2`)).
			WithArgs(7, 1).
			WillReturnRows(postRows)

		detailRows := sqlmock.NewRows([]string{"id", "subject", "content", "author_display_name"}).
			AddRow(1, "hi", "body", "Test User")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT comments.id, comments.subject, comments.content, comments.created_on, users.first_name || ' ' || users.last_name AS author_display_name FROM "comments" JOIN users ON users.id = comments.author_id WHERE comments.post_id = $1 ORDER BY comments.id ASC`)).
			WithArgs(7).
			WillReturnRows(detailRows)

		details, err := repo.GetWithDetailsByPostID(ctx, 7)
		assert.NoError(t, err)
		require.NotNil(t, details)
		assert.Equal(t, uint(7), details.Post.ID)
		assert.Equal(t, "A post", details.Post.Title)
		require.Len(t, details.Comments, 1)
		assert.Equal(t, "Test User", details.Comments[0].AuthorDisplayName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Post without comments yields empty list", func(t *testing.T) {
		postRows := sqlmock.NewRows([]string{"id", "title"}).AddRow(8, "Quiet post")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","title" FROM "posts" WHERE "posts"."id" = $1 ORDER BY "posts"."id" LIMIT $2`)).
			WithArgs(8, 1).
			WillReturnRows(postRows)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "comments" JOIN users ON users.id = comments.author_id WHERE comments.post_id = $1`)).
			WithArgs(8).
			WillReturnRows(sqlmock.NewRows([]string{"id", "subject", "content", "author_display_name"}))

		details, err := repo.GetWithDetailsByPostID(ctx, 8)
		assert.NoError(t, err)
		require.NotNil(t, details)
		assert.NotNil(t, details.Comments)
		assert.Empty(t, details.Comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Only content changes", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "comments" SET "content"=\$1 WHERE id = \$2`).
			WithArgs("edited", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Update(ctx, &models.Comment{ID: 1, Content: "edited", Subject: "ignored"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "comments" SET "content"=\$1 WHERE id = \$2`).
			WithArgs("edited", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Update(ctx, &models.Comment{ID: 99, Content: "edited"})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
