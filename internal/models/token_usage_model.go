package models

import "time"

type TokenUsage struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Tokens    int       `db:"tokens" json:"tokens"`
	Cost      float64   `db:"cost" json:"cost"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
