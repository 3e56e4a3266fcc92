package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/postpilot/internal/queue"
	"github.com/maheshrc27/postpilot/internal/repository"
)

// PublishSweepJob re-enqueues pending scheduled posts whose time has already
// passed. Covers tasks lost to a Redis flush or a crash between the DB
// commit and the enqueue.
type PublishSweepJob struct {
	sp     repository.ScheduledPostRepository
	client *asynq.Client
}

func NewPublishSweepJob(sp repository.ScheduledPostRepository, client *asynq.Client) *PublishSweepJob {
	return &PublishSweepJob{
		sp:     sp,
		client: client,
	}
}

func (j *PublishSweepJob) SweepOverdue() {
	ctx := context.Background()

	due, err := j.sp.ListDuePending(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, sp := range due {
		err := queue.EnqueuePublish(j.client, queue.PublishPostPayload{ScheduledPostID: sp.ID}, 0)
		if err != nil {
			slog.Info("unable to enqueue overdue scheduled post", "scheduled_post_id", sp.ID, "err", err.Error())
		}
	}
}
