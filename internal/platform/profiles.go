// Package platform holds the fixed per-network content constraints consulted
// by the generation pipeline.
package platform

// Profile describes a social network's content limits.
type Profile struct {
	ID                  string
	CharLimit           int
	MaxGenerationTokens int
	SupportsHashtags    bool
	HashtagCount        int
}

const (
	Twitter   = "twitter"
	Instagram = "instagram"
	LinkedIn  = "linkedin"
	Facebook  = "facebook"
)

var profiles = map[string]Profile{
	Twitter:   {ID: Twitter, CharLimit: 280, MaxGenerationTokens: 100, SupportsHashtags: true, HashtagCount: 2},
	Instagram: {ID: Instagram, CharLimit: 2200, MaxGenerationTokens: 800, SupportsHashtags: true, HashtagCount: 5},
	LinkedIn:  {ID: LinkedIn, CharLimit: 3000, MaxGenerationTokens: 1000, SupportsHashtags: true, HashtagCount: 3},
	Facebook:  {ID: Facebook, CharLimit: 5000, MaxGenerationTokens: 1500, SupportsHashtags: true, HashtagCount: 2},
}

// Resolve returns the profile for the given platform identifier. Unknown
// identifiers fall back to the twitter profile so callers always get usable
// limits.
func Resolve(platformID string) Profile {
	if p, ok := profiles[platformID]; ok {
		return p
	}
	return profiles[Twitter]
}

// Known reports whether the identifier maps to a real profile.
func Known(platformID string) bool {
	_, ok := profiles[platformID]
	return ok
}
