package video

// UploadResponse is the wire envelope for a successful upload
type UploadResponse struct {
	Status string        `json:"status"`
	Video  UploadedVideo `json:"video"`
}

// UploadedVideo is the client-facing view of an ingested video
type UploadedVideo struct {
	ID       string   `json:"id"`
	URL      string   `json:"url"`
	Filename string   `json:"filename"`
	Duration *float64 `json:"duration,omitempty"`
}
