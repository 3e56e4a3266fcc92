package transfer

import (
	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/repository"
)

type KeyMetrics struct {
	TotalPosts      int `json:"total_posts"`
	ScheduledPosts  int `json:"scheduled_posts"`
	TotalReach      int `json:"total_reach"`
	TotalEngagement int `json:"total_engagement"`
}

type AnalyticsReport struct {
	Metrics         KeyMetrics                   `json:"metrics"`
	RecentPosts     []*models.Post               `json:"recent_posts"`
	PlatformMetrics []*repository.PlatformCounts `json:"platform_metrics"`
}
