package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maheshrc27/postpilot/internal/ai"
	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/platform"
	"github.com/maheshrc27/postpilot/internal/repository"
	"github.com/maheshrc27/postpilot/internal/transfer"
	"github.com/maheshrc27/postpilot/pkg/errs"
)

const (
	generationTemperature = 0.7
	hashtagTemperature    = 0.5
	hashtagMaxTokens      = 100
)

type ContentService interface {
	Generate(ctx context.Context, userID string, gr *transfer.GenerationRequest) (*transfer.GenerationResult, error)
}

type contentService struct {
	completer ai.Completer
	bp        repository.BrandProfileRepository
	usage     UsageService
}

func NewContentService(completer ai.Completer, bp repository.BrandProfileRepository, usage UsageService) ContentService {
	return &contentService{
		completer: completer,
		bp:        bp,
		usage:     usage,
	}
}

// Generate runs the two-stage pipeline: the primary completion bounded by the
// platform's token budget, then a hashtag pass conditioned on its output. The
// hashtag pass never starts when the primary call failed.
func (s *contentService) Generate(ctx context.Context, userID string, gr *transfer.GenerationRequest) (*transfer.GenerationResult, error) {
	if err := validateGenerationRequest(gr); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	profile := platform.Resolve(gr.Platform)

	var brandProfile *models.BrandProfile
	if userID != "" {
		bp, isExist, err := s.bp.GetByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error loading brand profile: %w", err)
		}
		if isExist {
			brandProfile = bp
		}
	}

	systemPrompt := ComposeSystemPrompt(profile, gr.Theme, brandProfile)

	primary, err := s.completer.Complete(ctx, ai.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   gr.Prompt,
		Temperature:  generationTemperature,
		MaxTokens:    int32(profile.MaxGenerationTokens),
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}

	content := strings.TrimSpace(primary.Text)
	tokensUsed := primary.TokensUsed

	if profile.SupportsHashtags {
		hashtags, err := s.completer.Complete(ctx, ai.CompletionRequest{
			SystemPrompt: ComposeHashtagPrompt(gr.Theme),
			UserPrompt:   content,
			Temperature:  hashtagTemperature,
			MaxTokens:    hashtagMaxTokens,
		})
		if err != nil {
			slog.Info(err.Error())
			return nil, fmt.Errorf("%w: %v", errs.ErrUpstream, err)
		}

		content = content + "\n\n" + strings.TrimSpace(hashtags.Text)
		tokensUsed += hashtags.TokensUsed
	}

	if userID != "" && tokensUsed > 0 {
		// Fire and forget; metering must never block or fail generation.
		go s.usage.Record(context.WithoutCancel(ctx), userID, tokensUsed)
	}

	return &transfer.GenerationResult{Content: content}, nil
}

func validateGenerationRequest(gr *transfer.GenerationRequest) error {
	if gr == nil {
		return fmt.Errorf("%w: request body is empty", errs.ErrValidation)
	}
	if strings.TrimSpace(gr.Prompt) == "" {
		return fmt.Errorf("%w: prompt is required", errs.ErrValidation)
	}
	if strings.TrimSpace(gr.Theme) == "" {
		return fmt.Errorf("%w: theme is required", errs.ErrValidation)
	}
	if strings.TrimSpace(gr.Platform) == "" {
		return fmt.Errorf("%w: platform is required", errs.ErrValidation)
	}
	return nil
}
