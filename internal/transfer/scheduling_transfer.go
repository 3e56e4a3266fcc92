package transfer

type ScheduledPostCreation struct {
	Content       string `json:"content"`
	Platform      string `json:"platform"`
	ScheduledTime string `json:"scheduled_time"`
	ImageURL      string `json:"image_url"`
}

// ScheduledPostUpdate carries a partial update; empty fields stay unchanged.
type ScheduledPostUpdate struct {
	Content       string `json:"content"`
	Platform      string `json:"platform"`
	ScheduledTime string `json:"scheduled_time"`
	Status        string `json:"status"`
}
