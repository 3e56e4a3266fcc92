package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/postpilot/internal/models"
)

// PlatformCounts aggregates per-platform post activity in a date range.
type PlatformCounts struct {
	Platform   string `json:"platform"`
	TotalPosts int    `json:"total_posts"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

type AnalyticsRepository interface {
	CountPosts(ctx context.Context, userID string, start, end time.Time) (total int, scheduled int, err error)
	RecentPosts(ctx context.Context, userID string, start, end time.Time, platform string, limit int) ([]*models.Post, error)
	CountByPlatform(ctx context.Context, userID string, start, end time.Time) ([]*PlatformCounts, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountPosts(ctx context.Context, userID string, start, end time.Time) (int, int, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE EXISTS (
				SELECT 1 FROM scheduled_posts sp WHERE sp.post_id = posts.id
			))
		FROM posts
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
	`

	var total, scheduled int
	err := r.db.QueryRowContext(ctx, query, userID, start, end).Scan(&total, &scheduled)
	if err != nil {
		slog.Info(err.Error())
		return 0, 0, err
	}

	return total, scheduled, nil
}

func (r *analyticsRepository) RecentPosts(ctx context.Context, userID string, start, end time.Time, platform string, limit int) ([]*models.Post, error) {
	query := `
		SELECT id, user_id, content, platform, status, image_url, created_at, updated_at
		FROM posts
		WHERE user_id = $1
			AND created_at BETWEEN $2 AND $3
			AND ($4 = '' OR platform = $4)
		ORDER BY created_at DESC
		LIMIT $5
	`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end, platform, limit)
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

func (r *analyticsRepository) CountByPlatform(ctx context.Context, userID string, start, end time.Time) ([]*PlatformCounts, error) {
	query := `
		SELECT platform,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $4),
			COUNT(*) FILTER (WHERE status = $5)
		FROM posts
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
		GROUP BY platform
	`

	rows, err := r.db.QueryContext(ctx, query, userID, start, end, models.PostStatusSent, models.PostStatusFailed)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var counts []*PlatformCounts
	for rows.Next() {
		var pc PlatformCounts
		err := rows.Scan(&pc.Platform, &pc.TotalPosts, &pc.Sent, &pc.Failed)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts = append(counts, &pc)
	}
	return counts, rows.Err()
}
