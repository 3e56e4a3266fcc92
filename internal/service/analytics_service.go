package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maheshrc27/postpilot/internal/repository"
	"github.com/maheshrc27/postpilot/internal/transfer"
)

const recentPostsLimit = 10

type AnalyticsService interface {
	Report(ctx context.Context, userID string, start, end time.Time, platform string) (*transfer.AnalyticsReport, error)
}

type analyticsService struct {
	ar repository.AnalyticsRepository
}

func NewAnalyticsService(ar repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{
		ar: ar,
	}
}

// Report aggregates simple counts over the caller's posts in a date range.
// Reach and engagement stay zero until real platform metrics land.
func (s *analyticsService) Report(ctx context.Context, userID string, start, end time.Time, platform string) (*transfer.AnalyticsReport, error) {
	total, scheduled, err := s.ar.CountPosts(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error counting posts: %w", err)
	}

	recent, err := s.ar.RecentPosts(ctx, userID, start, end, platform, recentPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent posts: %w", err)
	}

	byPlatform, err := s.ar.CountByPlatform(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("error aggregating platform metrics: %w", err)
	}

	return &transfer.AnalyticsReport{
		Metrics: transfer.KeyMetrics{
			TotalPosts:     total,
			ScheduledPosts: scheduled,
		},
		RecentPosts:     recent,
		PlatformMetrics: byPlatform,
	}, nil
}
