package queue

import (
	"database/sql"

	"github.com/maheshrc27/postpilot/internal/repository"
)

// Queue holds the DB handle and repositories the publish worker needs to move
// a due scheduled post through its terminal status.
type Queue struct {
	db *sql.DB
	pr repository.PostRepository
	sp repository.ScheduledPostRepository
	ph repository.PublishHistoryRepository
}

func NewQueue(
	db *sql.DB,
	pr repository.PostRepository,
	sp repository.ScheduledPostRepository,
	ph repository.PublishHistoryRepository) *Queue {
	return &Queue{
		db: db,
		pr: pr,
		sp: sp,
		ph: ph,
	}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	ScheduledPostID string `json:"scheduled_post_id"`
}
