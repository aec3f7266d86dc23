package api

// TextToSignRequest represents the request payload for text conversion
type TextToSignRequest struct {
	Text string `json:"text"`
}

// SignResponse represents the response payload for both conversion endpoints
type SignResponse struct {
	VideoFile string `json:"video_file"`
	Text      string `json:"text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatsResponse represents the service counters
type StatsResponse struct {
	SignImagesLoaded int     `json:"sign_images_loaded"`
	VideosGenerated  int64   `json:"videos_generated"`
	UptimeSeconds    float64 `json:"uptime_seconds"`
}
