package entity

// NewsArticle represents a single news item fetched for a ticker. Articles are
// immutable once fetched; within a collection session they are unique by title.
// Index is the article's position in its ticker's collection and, together
// with Ticker, addresses the article on the brief endpoints. It survives
// cross-ticker deduplication, so a deduplicated list may show gaps.
type NewsArticle struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Publisher   string `json:"publisher"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	PublishedAt string `json:"published_at"`
	Ticker      string `json:"ticker"`
	Index       int    `json:"index"`
}
