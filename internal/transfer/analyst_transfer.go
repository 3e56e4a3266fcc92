package transfer

type AnalyzeAccountRequest struct {
	URL string `json:"url"`
}

type PostAnalysis struct {
	Title      string `json:"title"`
	Hook       string `json:"hook"`
	Theme      string `json:"theme"`
	Reach      int    `json:"reach"`
	Engagement int    `json:"engagement"`
}
