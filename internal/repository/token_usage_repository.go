package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/postpilot/internal/models"
)

type TokenUsageRepository interface {
	Create(ctx context.Context, usage *models.TokenUsage) (int64, error)
}

type tokenUsageRepository struct {
	db *sql.DB
}

func NewTokenUsageRepository(db *sql.DB) TokenUsageRepository {
	return &tokenUsageRepository{db: db}
}

func (r *tokenUsageRepository) Create(ctx context.Context, usage *models.TokenUsage) (int64, error) {
	query := `
		INSERT INTO token_usage (user_id, tokens, cost)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, usage.UserID, usage.Tokens, usage.Cost).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}
