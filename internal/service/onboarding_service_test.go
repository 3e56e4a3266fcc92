package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/postpilot/internal/transfer"
	"github.com/maheshrc27/postpilot/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingService_AnalyzeContent(t *testing.T) {
	s := NewOnboardingService(&fakeBrandProfileRepo{})

	t.Run("default vocabulary", func(t *testing.T) {
		analysis, err := s.AnalyzeContent(context.Background(), &transfer.AnalyzeContentRequest{
			Content: "we make handcrafted goods",
		})

		require.NoError(t, err)
		assert.Equal(t, "friendly", analysis.Tone)
		assert.NotEmpty(t, analysis.BrandVoice)
		assert.Contains(t, analysis.VocabularyList, "handcrafted")
		assert.Contains(t, analysis.VocabularyList, "sustainable")
	})

	t.Run("caller vocabulary overrides the default", func(t *testing.T) {
		analysis, err := s.AnalyzeContent(context.Background(), &transfer.AnalyzeContentRequest{
			Content:        "we make goods",
			VocabularyList: "bold, minimal , modern",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"bold", "minimal", "modern"}, analysis.VocabularyList)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, err := s.AnalyzeContent(context.Background(), &transfer.AnalyzeContentRequest{Content: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestOnboardingService_SaveBrandProfile(t *testing.T) {
	s := NewOnboardingService(&fakeBrandProfileRepo{})

	t.Run("saved profile carries the caller's fields", func(t *testing.T) {
		profile, err := s.SaveBrandProfile(context.Background(), "u1", &transfer.SaveBrandProfileRequest{
			Voice:          "bold",
			Vocabulary:     "plain",
			Tone:           "warm",
			TargetAudience: "founders",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, profile.ID)
		assert.Equal(t, "u1", profile.UserID)
		assert.Equal(t, "bold", profile.Voice)
	})

	t.Run("voice is required", func(t *testing.T) {
		_, err := s.SaveBrandProfile(context.Background(), "u1", &transfer.SaveBrandProfileRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
