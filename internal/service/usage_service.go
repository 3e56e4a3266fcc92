package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/repository"
)

// $0.002 per 1,000 tokens.
const costPerThousandTokens = 0.002

// UsageService is a best-effort side channel: Record never fails the request
// it is metering, so it returns nothing and swallows storage errors.
type UsageService interface {
	Record(ctx context.Context, userID string, tokens int)
}

type usageService struct {
	tu repository.TokenUsageRepository
}

func NewUsageService(tu repository.TokenUsageRepository) UsageService {
	return &usageService{
		tu: tu,
	}
}

func (s *usageService) Record(ctx context.Context, userID string, tokens int) {
	if userID == "" || tokens <= 0 {
		return
	}

	cost := float64(tokens) * costPerThousandTokens / 1000

	slog.Info(fmt.Sprintf("user %s used %d tokens at a cost of $%.6f", userID, tokens, cost))

	usage := &models.TokenUsage{
		UserID: userID,
		Tokens: tokens,
		Cost:   cost,
	}
	if _, err := s.tu.Create(ctx, usage); err != nil {
		slog.Info(fmt.Sprintf("failed to store token usage for user %s: %v", userID, err))
	}
}
