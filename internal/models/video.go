package models

// SearchCandidate is a video as returned by the search endpoint, before
// detail enrichment. Timestamps stay in the platform's RFC3339 string form.
type SearchCandidate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
}

// VideoDetail is the per-video metadata fetched for a batch of candidate ids.
// Duration holds the raw ISO 8601 token (e.g. "PT5M30S").
type VideoDetail struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Duration     string `json:"duration"`
	PublishedAt  string `json:"published_at"`
	ChannelTitle string `json:"channel_title"`
}

// Recommendation is the winning video with its relevance score and watch URL.
// A score of 0 can mean either "model rated it 0" or "scoring failed"; failed
// scores never beat a real score in a tie.
type Recommendation struct {
	VideoDetail
	Score float64 `json:"score"`
	URL   string  `json:"url"`
}
