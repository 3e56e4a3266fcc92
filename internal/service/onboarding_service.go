package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/repository"
	"github.com/maheshrc27/postpilot/internal/transfer"
	"github.com/maheshrc27/postpilot/pkg/errs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type OnboardingService interface {
	AnalyzeContent(ctx context.Context, req *transfer.AnalyzeContentRequest) (*transfer.BrandProfileAnalysis, error)
	SaveBrandProfile(ctx context.Context, userID string, req *transfer.SaveBrandProfileRequest) (*models.BrandProfile, error)
}

type onboardingService struct {
	bp repository.BrandProfileRepository
}

func NewOnboardingService(bp repository.BrandProfileRepository) OnboardingService {
	return &onboardingService{
		bp: bp,
	}
}

var defaultVocabulary = []string{"innovative", "handcrafted", "artisanal", "premium", "quality", "authentic", "sustainable"}

// AnalyzeContent returns a canned brand-profile analysis. Real NLP analysis
// of the imported content is out of scope; only the vocabulary list reflects
// the caller's input.
func (s *onboardingService) AnalyzeContent(ctx context.Context, req *transfer.AnalyzeContentRequest) (*transfer.BrandProfileAnalysis, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", errs.ErrValidation)
	}

	vocabulary := defaultVocabulary
	if req.VocabularyList != "" {
		vocabulary = nil
		for _, item := range strings.Split(req.VocabularyList, ",") {
			vocabulary = append(vocabulary, strings.TrimSpace(item))
		}
	}

	return &transfer.BrandProfileAnalysis{
		BrandVoice:     "Your brand voice is friendly, professional, and approachable. You communicate with clarity and confidence while maintaining a conversational tone that resonates with your audience.",
		VocabularyList: vocabulary,
		Tone:           "friendly",
		TargetAudience: "Local professionals aged 25-45 interested in specialty products and experiences",
	}, nil
}

func (s *onboardingService) SaveBrandProfile(ctx context.Context, userID string, req *transfer.SaveBrandProfileRequest) (*models.BrandProfile, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request body is empty", errs.ErrValidation)
	}
	if strings.TrimSpace(req.Voice) == "" {
		return nil, fmt.Errorf("%w: voice is required", errs.ErrValidation)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	profile := &models.BrandProfile{
		ID:             id,
		UserID:         userID,
		Voice:          req.Voice,
		Vocabulary:     req.Vocabulary,
		Tone:           req.Tone,
		TargetAudience: req.TargetAudience,
	}

	if err := s.bp.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("error saving brand profile: %w", err)
	}

	return profile, nil
}
