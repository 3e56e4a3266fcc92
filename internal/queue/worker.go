package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postpilot/internal/models"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.PublishPost(ctx, payload.ScheduledPostID)
}

// PublishPost moves a due scheduled post to its terminal status and records
// the attempt. Posts that were cancelled or already handled are skipped.
// Actual delivery to the social networks is out of scope, so a successful
// run is the pending→sent transition itself.
func (q *Queue) PublishPost(ctx context.Context, scheduledPostID string) error {
	scheduledPost, isExist, err := q.sp.GetByID(ctx, scheduledPostID)
	if err != nil {
		return err
	}
	if !isExist {
		// Deleted between scheduling and execution; nothing to do.
		slog.Info("scheduled post no longer exists", "scheduled_post_id", scheduledPostID)
		return nil
	}

	if scheduledPost.Status != models.ScheduleStatusPending {
		slog.Info("skipping scheduled post", "scheduled_post_id", scheduledPostID, "status", scheduledPost.Status)
		return nil
	}

	post, isExist, err := q.pr.GetByID(ctx, scheduledPost.PostID)
	if err != nil {
		return err
	}
	if !isExist {
		slog.Info("parent post no longer exists", "post_id", scheduledPost.PostID)
		return nil
	}

	// Both rows flip to sent in one transaction so the pair never splits
	// across statuses.
	if err := q.markSent(ctx, post, scheduledPost); err != nil {
		q.markFailed(ctx, post, scheduledPost)
		q.recordHistory(ctx, post, scheduledPost, err)
		return err
	}

	q.recordHistory(ctx, post, scheduledPost, nil)
	return nil
}

func (q *Queue) markSent(ctx context.Context, post *models.Post, scheduledPost *models.ScheduledPost) (err error) {
	tx, err := q.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = q.sp.UpdateStatus(ctx, tx, models.ScheduleStatusSent, scheduledPost.ID); err != nil {
		return fmt.Errorf("error updating scheduled post status: %w", err)
	}
	if err = q.pr.UpdateStatus(ctx, tx, models.PostStatusSent, post.ID); err != nil {
		return fmt.Errorf("error updating post status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// markFailed parks both rows in their failed status after a publish attempt
// could not complete. Best effort: the rows stay pending/scheduled when even
// these writes fail, and the next sweep retries them.
func (q *Queue) markFailed(ctx context.Context, post *models.Post, scheduledPost *models.ScheduledPost) {
	if err := q.sp.UpdateStatus(ctx, nil, models.ScheduleStatusFailed, scheduledPost.ID); err != nil {
		slog.Info("error marking scheduled post failed", "scheduled_post_id", scheduledPost.ID, "err", err.Error())
	}
	if err := q.pr.UpdateStatus(ctx, nil, models.PostStatusFailed, post.ID); err != nil {
		slog.Info("error marking post failed", "post_id", post.ID, "err", err.Error())
	}
}

func (q *Queue) recordHistory(ctx context.Context, post *models.Post, scheduledPost *models.ScheduledPost, publishErr error) {
	history := models.PublishHistory{
		UserID:          post.UserID,
		PostID:          post.ID,
		ScheduledPostID: scheduledPost.ID,
	}
	if publishErr != nil {
		history.ErrorMessage = publishErr.Error()
	}

	if _, err := q.ph.Create(ctx, &history); err != nil {
		slog.Info("error saving publish history", "post_id", post.ID, "err", err.Error())
	}
}
