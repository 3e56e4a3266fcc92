package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/postpilot/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, bool, error)
	ListScheduledByUserID(ctx context.Context, userID string) ([]*models.Post, error)
	UpdateContent(ctx context.Context, tx *sql.Tx, id, content, platform string) error
	UpdateStatus(ctx context.Context, tx *sql.Tx, status string, id string) error
	Remove(ctx context.Context, tx *sql.Tx, id string) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) error {
	query := `
		INSERT INTO posts (id, user_id, content, platform, status, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, post.ID, post.UserID, post.Content, post.Platform, post.Status, post.ImageURL)
	} else {
		_, err = r.db.ExecContext(ctx, query, post.ID, post.UserID, post.Content, post.Platform, post.Status, post.ImageURL)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, bool, error) {
	query := `SELECT id, user_id, content, platform, status, image_url, created_at, updated_at FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var post models.Post
	err := row.Scan(&post.ID, &post.UserID, &post.Content, &post.Platform, &post.Status, &post.ImageURL, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &post, true, nil
}

func (r *postRepository) ListScheduledByUserID(ctx context.Context, userID string) ([]*models.Post, error) {
	query := `
		SELECT id, user_id, content, platform, status, image_url, created_at, updated_at
		FROM posts
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, models.PostStatusScheduled)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.UserID, &post.Content, &post.Platform, &post.Status, &post.ImageURL, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

func (r *postRepository) UpdateContent(ctx context.Context, tx *sql.Tx, id, content, platform string) error {
	query := `
		UPDATE posts
		SET content = $1,
			platform = COALESCE(NULLIF($2, ''), platform),
			updated_at = $3
		WHERE id = $4
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, content, platform, time.Now(), id)
	} else {
		_, err = r.db.ExecContext(ctx, query, content, platform, time.Now(), id)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, status string, id string) error {
	query := `
		UPDATE posts
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, status, time.Now(), id)
	} else {
		_, err = r.db.ExecContext(ctx, query, status, time.Now(), id)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) Remove(ctx context.Context, tx *sql.Tx, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, id)
	} else {
		_, err = r.db.ExecContext(ctx, query, id)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
