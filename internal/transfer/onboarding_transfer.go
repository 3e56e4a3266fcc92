package transfer

type AnalyzeContentRequest struct {
	ImportMethod   string `json:"import_method"` // text or link
	Content        string `json:"content"`
	VocabularyList string `json:"vocabulary_list"`
}

type BrandProfileAnalysis struct {
	BrandVoice     string   `json:"brand_voice"`
	VocabularyList []string `json:"vocabulary_list"`
	Tone           string   `json:"tone"`
	TargetAudience string   `json:"target_audience"`
}

type SaveBrandProfileRequest struct {
	Voice          string `json:"voice"`
	Vocabulary     string `json:"vocabulary"`
	Tone           string `json:"tone"`
	TargetAudience string `json:"target_audience"`
}
