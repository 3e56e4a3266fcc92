package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/maheshrc27/postpilot/internal/models"
)

type ScheduledPostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, sp *models.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, bool, error)
	CheckOwner(ctx context.Context, id, userID string) (bool, error)
	ListByPostIDs(ctx context.Context, postIDs []string) ([]*models.ScheduledPost, error)
	ListDuePending(ctx context.Context, before time.Time) ([]*models.ScheduledPost, error)
	Update(ctx context.Context, tx *sql.Tx, id string, platform string, scheduledTime *time.Time, status string) error
	UpdateStatus(ctx context.Context, tx *sql.Tx, status string, id string) error
	Remove(ctx context.Context, tx *sql.Tx, id string) error
}

type scheduledPostRepository struct {
	db *sql.DB
}

func NewScheduledPostRepository(db *sql.DB) ScheduledPostRepository {
	return &scheduledPostRepository{db: db}
}

func (r *scheduledPostRepository) Create(ctx context.Context, tx *sql.Tx, sp *models.ScheduledPost) error {
	query := `
		INSERT INTO scheduled_posts (id, post_id, platform, scheduled_time, status)
		VALUES ($1, $2, $3, $4, $5)
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, sp.ID, sp.PostID, sp.Platform, sp.ScheduledTime, sp.Status)
	} else {
		_, err = r.db.ExecContext(ctx, query, sp.ID, sp.PostID, sp.Platform, sp.ScheduledTime, sp.Status)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *scheduledPostRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, bool, error) {
	query := `SELECT id, post_id, platform, scheduled_time, status, created_at, updated_at FROM scheduled_posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var sp models.ScheduledPost
	err := row.Scan(&sp.ID, &sp.PostID, &sp.Platform, &sp.ScheduledTime, &sp.Status, &sp.CreatedAt, &sp.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &sp, true, nil
}

func (r *scheduledPostRepository) CheckOwner(ctx context.Context, id, userID string) (bool, error) {
	query := `
		SELECT 1
		FROM scheduled_posts sp
		JOIN posts p ON p.id = sp.post_id
		WHERE sp.id = $1 AND p.user_id = $2
	`

	var result int
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

func (r *scheduledPostRepository) ListByPostIDs(ctx context.Context, postIDs []string) ([]*models.ScheduledPost, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, post_id, platform, scheduled_time, status, created_at, updated_at
		FROM scheduled_posts
		WHERE post_id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanScheduledPosts(rows)
}

func (r *scheduledPostRepository) ListDuePending(ctx context.Context, before time.Time) ([]*models.ScheduledPost, error) {
	query := `
		SELECT id, post_id, platform, scheduled_time, status, created_at, updated_at
		FROM scheduled_posts
		WHERE status = $1 AND scheduled_time <= $2
	`

	rows, err := r.db.QueryContext(ctx, query, models.ScheduleStatusPending, before)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanScheduledPosts(rows)
}

// Update changes only the supplied columns. Empty platform/status and a nil
// scheduledTime leave the current values in place.
func (r *scheduledPostRepository) Update(ctx context.Context, tx *sql.Tx, id string, platform string, scheduledTime *time.Time, status string) error {
	query := `
		UPDATE scheduled_posts
		SET platform = COALESCE(NULLIF($1, ''), platform),
			scheduled_time = COALESCE($2, scheduled_time),
			status = COALESCE(NULLIF($3, ''), status),
			updated_at = $4
		WHERE id = $5
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, platform, scheduledTime, status, time.Now(), id)
	} else {
		_, err = r.db.ExecContext(ctx, query, platform, scheduledTime, status, time.Now(), id)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *scheduledPostRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, status string, id string) error {
	query := `
		UPDATE scheduled_posts
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

func (r *scheduledPostRepository) Remove(ctx context.Context, tx *sql.Tx, id string) error {
	query := `DELETE FROM scheduled_posts WHERE id = $1`

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

func scanScheduledPosts(rows *sql.Rows) ([]*models.ScheduledPost, error) {
	var result []*models.ScheduledPost
	for rows.Next() {
		var sp models.ScheduledPost
		err := rows.Scan(&sp.ID, &sp.PostID, &sp.Platform, &sp.ScheduledTime, &sp.Status, &sp.CreatedAt, &sp.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		result = append(result, &sp)
	}
	return result, rows.Err()
}
