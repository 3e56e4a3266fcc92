package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postColumns() []string {
	return []string{"id", "user_id", "content", "platform", "status", "image_url", "created_at", "updated_at"}
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = \\$1").
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows(postColumns()).
				AddRow("p1", "u1", "hello", "twitter", models.PostStatusScheduled, nil, now, now))

		post, isExist, err := r.GetByID(context.Background(), "p1")

		require.NoError(t, err)
		require.True(t, isExist)
		assert.Equal(t, "p1", post.ID)
		assert.Equal(t, "u1", post.UserID)
		assert.False(t, post.ImageURL.Valid)
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = \\$1").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(postColumns()))

		post, isExist, err := r.GetByID(context.Background(), "nope")

		require.NoError(t, err)
		assert.False(t, isExist)
		assert.Nil(t, post)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListScheduledByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WithArgs("u1", models.PostStatusScheduled).
		WillReturnRows(sqlmock.NewRows(postColumns()).
			AddRow("p2", "u1", "newer", "twitter", models.PostStatusScheduled, nil, now, now).
			AddRow("p1", "u1", "older", "linkedin", models.PostStatusScheduled, nil, now.Add(-time.Hour), now))

	posts, err := r.ListScheduledByUserID(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "p1", posts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Create_UsesTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO posts").
		WithArgs("p1", "u1", "hello", "twitter", models.PostStatusScheduled, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	err = r.Create(context.Background(), tx, &models.Post{
		ID:       "p1",
		UserID:   "u1",
		Content:  "hello",
		Platform: "twitter",
		Status:   models.PostStatusScheduled,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostRepository(db)

	mock.ExpectExec("UPDATE posts").
		WithArgs(models.PostStatusSent, sqlmock.AnyArg(), "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.UpdateStatus(context.Background(), nil, models.PostStatusSent, "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewPostRepository(db)

	mock.ExpectExec("DELETE FROM posts WHERE id = \\$1").
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Remove(context.Background(), nil, "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
