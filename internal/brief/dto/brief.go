package dto

import "stock-news-brief/internal/entity"

// NewsListResponse is the response body for the news collection endpoint.
// Each article carries its ticker and per-ticker index; together they address
// the article on the brief endpoints.
type NewsListResponse struct {
	Total    int                  `json:"total"`
	Articles []entity.NewsArticle `json:"articles"`
}

// BriefResponse is the response body for brief generation and retrieval.
type BriefResponse struct {
	Ticker string            `json:"ticker"`
	Index  int               `json:"index"`
	Brief  *entity.NewsBrief `json:"brief"`
	Cached bool              `json:"cached"`
}
