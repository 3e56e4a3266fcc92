package service

import (
	"fmt"
	"strings"

	"github.com/maheshrc27/postpilot/internal/models"
	"github.com/maheshrc27/postpilot/internal/platform"
)

// ComposeSystemPrompt builds the instruction text for a generation call.
// Deterministic: the same profile, theme and brand profile always yield the
// same string, and the brand directives keep a fixed order.
func ComposeSystemPrompt(profile platform.Profile, theme string, brandProfile *models.BrandProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert social media content writer. Create a %s post for %s with maximum %d characters. The content should be engaging and include a hook at the beginning and a call-to-action at the end.",
		theme, profile.ID, profile.CharLimit)

	if brandProfile != nil {
		fmt.Fprintf(&b, "\n\nWrite in the brand's voice: %s", brandProfile.Voice)
		fmt.Fprintf(&b, "\nUse vocabulary that matches: %s", brandProfile.Vocabulary)
		fmt.Fprintf(&b, "\nThe tone should be: %s", brandProfile.Tone)
		fmt.Fprintf(&b, "\nTarget audience: %s", brandProfile.TargetAudience)
	}

	return b.String()
}

// ComposeHashtagPrompt builds the instruction for the hashtag enrichment
// pass that follows a successful generation.
func ComposeHashtagPrompt(theme string) string {
	return fmt.Sprintf("Generate 3-5 relevant hashtags for the following %s social media post. Return only the hashtags, separated by spaces, with no explanation.", theme)
}
