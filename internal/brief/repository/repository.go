package repository

import (
	"context"

	"stock-news-brief/internal/entity"
)

// NewsRepository fetches the latest news for a ticker. Implementations may
// return fewer articles than requested, or none at all.
type NewsRepository interface {
	FetchNews(ctx context.Context, ticker string, maxNews int) ([]entity.NewsArticle, error)
}

// ChartRepository fetches price history for a ticker over a period. A nil
// chart means no usable history exists for the period.
type ChartRepository interface {
	FetchChart(ctx context.Context, ticker, period string) (*entity.PriceChart, error)
}

// AIRepository generates the free-text brief for a news article. The returned
// text has no guaranteed structure; interpretation is the caller's concern.
type AIRepository interface {
	GenerateBrief(ctx context.Context, title, link, content string) (string, error)
}

// ArticleContentRepository extracts the readable body text of an article page.
type ArticleContentRepository interface {
	FetchContent(ctx context.Context, link string) (string, error)
}
