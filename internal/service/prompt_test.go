package service

import (
	"strings"
	"testing"

	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSystemPrompt(t *testing.T) {
	profile := platform.Resolve("instagram")

	t.Run("without brand profile", func(t *testing.T) {
		prompt := ComposeSystemPrompt(profile, "product launch", nil)

		assert.Contains(t, prompt, "You are an expert social media content writer.")
		assert.Contains(t, prompt, "product launch")
		assert.Contains(t, prompt, "instagram")
		assert.Contains(t, prompt, "2200 characters")
		assert.NotContains(t, prompt, "brand's voice")
		assert.NotContains(t, prompt, "Target audience")
	})

	t.Run("brand directives keep a fixed order", func(t *testing.T) {
		bp := &models.BrandProfile{
			Voice:          "bold",
			Vocabulary:     "simple, direct",
			Tone:           "playful",
			TargetAudience: "indie developers",
		}

		prompt := ComposeSystemPrompt(profile, "product launch", bp)

		voice := strings.Index(prompt, "Write in the brand's voice: bold")
		vocab := strings.Index(prompt, "Use vocabulary that matches: simple, direct")
		tone := strings.Index(prompt, "The tone should be: playful")
		audience := strings.Index(prompt, "Target audience: indie developers")

		require.NotEqual(t, -1, voice)
		require.NotEqual(t, -1, vocab)
		require.NotEqual(t, -1, tone)
		require.NotEqual(t, -1, audience)
		assert.Less(t, voice, vocab)
		assert.Less(t, vocab, tone)
		assert.Less(t, tone, audience)
	})

	t.Run("deterministic", func(t *testing.T) {
		bp := &models.BrandProfile{Voice: "v", Vocabulary: "w", Tone: "t", TargetAudience: "a"}
		first := ComposeSystemPrompt(profile, "theme", bp)
		second := ComposeSystemPrompt(profile, "theme", bp)
		assert.Equal(t, first, second)
	})
}

func TestComposeHashtagPrompt(t *testing.T) {
	prompt := ComposeHashtagPrompt("travel")

	assert.Contains(t, prompt, "3-5 relevant hashtags")
	assert.Contains(t, prompt, "travel")
	assert.Contains(t, prompt, "separated by spaces")
}
