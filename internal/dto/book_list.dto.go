package dto

// BookSummary is the projection returned by book listings.
type BookSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	UserID     string `json:"userId"`
	Category   string `json:"category"`
	ReleasedAt string `json:"releasedAt"`
	Reviews    int    `json:"reviews"`
}
