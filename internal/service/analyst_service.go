package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/postpilot/internal/transfer"
	"github.com/maheshrc27/postpilot/pkg/errs"
)

type AnalystService interface {
	AnalyzeAccount(ctx context.Context, url string) ([]*transfer.PostAnalysis, error)
}

type analystService struct{}

func NewAnalystService() AnalystService {
	return &analystService{}
}

// AnalyzeAccount returns canned analyses; connecting to the real platform
// APIs is out of scope.
func (s *analystService) AnalyzeAccount(ctx context.Context, url string) ([]*transfer.PostAnalysis, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: url is required", errs.ErrValidation)
	}

	return []*transfer.PostAnalysis{
		{
			Title:      "How to Boost Your Social Media Engagement",
			Hook:       "Want to increase your social media reach? Here are 5 proven strategies!",
			Theme:      "Social Media Marketing",
			Reach:      1500,
			Engagement: 120,
		},
		{
			Title:      "The Power of Storytelling in Marketing",
			Hook:       "Discover how storytelling can transform your brand's message",
			Theme:      "Content Marketing",
			Reach:      2000,
			Engagement: 180,
		},
		{
			Title:      "AI Tools for Content Creation",
			Hook:       "Explore the best AI tools to streamline your content creation process",
			Theme:      "AI & Technology",
			Reach:      1800,
			Engagement: 150,
		},
	}, nil
}
