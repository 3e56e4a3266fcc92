package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/postpilot/internal/models"
)

type BrandProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.BrandProfile, bool, error)
	Upsert(ctx context.Context, profile *models.BrandProfile) error
}

type brandProfileRepository struct {
	db *sql.DB
}

func NewBrandProfileRepository(db *sql.DB) BrandProfileRepository {
	return &brandProfileRepository{db: db}
}

func (r *brandProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.BrandProfile, bool, error) {
	query := `
		SELECT id, user_id, voice, vocabulary, tone, target_audience, created_at, updated_at
		FROM brand_profiles
		WHERE user_id = $1
	`
	row := r.db.QueryRowContext(ctx, query, userID)

	var bp models.BrandProfile
	err := row.Scan(&bp.ID, &bp.UserID, &bp.Voice, &bp.Vocabulary, &bp.Tone, &bp.TargetAudience, &bp.CreatedAt, &bp.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &bp, true, nil
}

// Upsert keeps at most one profile per user.
func (r *brandProfileRepository) Upsert(ctx context.Context, profile *models.BrandProfile) error {
	query := `
		INSERT INTO brand_profiles (id, user_id, voice, vocabulary, tone, target_audience)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET voice = EXCLUDED.voice,
			vocabulary = EXCLUDED.vocabulary,
			tone = EXCLUDED.tone,
			target_audience = EXCLUDED.target_audience,
			updated_at = $7
	`

	_, err := r.db.ExecContext(ctx, query, profile.ID, profile.UserID, profile.Voice, profile.Vocabulary, profile.Tone, profile.TargetAudience, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
