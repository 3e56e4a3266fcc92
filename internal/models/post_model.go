package models

import (
	"database/sql"
	"time"
)

type Post struct {
	ID        string         `db:"id" json:"id"`
	UserID    string         `db:"user_id" json:"user_id"`
	Content   string         `db:"content" json:"content"`
	Platform  string         `db:"platform" json:"platform"`
	Status    string         `db:"status" json:"status"` // draft, scheduled, sent, failed
	ImageURL  sql.NullString `db:"image_url" json:"-"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`

	ScheduledPosts []*ScheduledPost `db:"-" json:"scheduled_posts,omitempty"`
}

type ScheduledPost struct {
	ID            string    `db:"id" json:"id"`
	PostID        string    `db:"post_id" json:"post_id"`
	Platform      string    `db:"platform" json:"platform"`
	ScheduledTime time.Time `db:"scheduled_time" json:"scheduled_time"`
	Status        string    `db:"status" json:"status"` // pending, sent, failed, cancelled
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`

	Post *Post `db:"-" json:"post,omitempty"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusSent      = "sent"
	PostStatusFailed    = "failed"
)

const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusSent      = "sent"
	ScheduleStatusFailed    = "failed"
	ScheduleStatusCancelled = "cancelled"
)
