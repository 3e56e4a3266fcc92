package models

import "time"

// BrandProfile is a user's saved voice description, consulted read-only by
// the generation pipeline. At most one row per user.
type BrandProfile struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	Voice          string    `db:"voice" json:"voice"`
	Vocabulary     string    `db:"vocabulary" json:"vocabulary"`
	Tone           string    `db:"tone" json:"tone"`
	TargetAudience string    `db:"target_audience" json:"target_audience"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
