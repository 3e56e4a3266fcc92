package transfer

type GenerationRequest struct {
	Prompt   string `json:"prompt"`
	Theme    string `json:"theme"`
	Platform string `json:"platform"`
}

type GenerationResult struct {
	Content string `json:"content"`
}
