package repository

import (
	"testing"
	"time"

	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/utils"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
)

func TestRSSArticle_Mapping(t *testing.T) {
	published := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	item := &gofeed.Item{
		Title:           "Chip stocks surge",
		Link:            "https://rss.example.com/chips",
		PublishedParsed: &published,
		Image:           &gofeed.Image{URL: "https://img.example.com/chips.jpg"},
	}

	a := rssArticle("AMD", item)

	assert.Equal(t, "Chip stocks surge", a.Title)
	assert.Equal(t, "https://rss.example.com/chips", a.Link)
	assert.Equal(t, "2026-08-30 14:05", a.PublishedAt)
	assert.Equal(t, "https://img.example.com/chips.jpg", a.Thumbnail)
	assert.Equal(t, "AMD", a.Ticker)
	// The feed carries no publisher field, so the display fallback is used.
	assert.Equal(t, common.PublisherFallback, a.Publisher)
}

func TestRSSArticle_Fallbacks(t *testing.T) {
	a := rssArticle("AMD", &gofeed.Item{})

	assert.Equal(t, common.TitleFallback, a.Title)
	assert.Equal(t, common.LinkPlaceholder, a.Link)
	assert.Equal(t, common.PublisherFallback, a.Publisher)
	assert.Equal(t, utils.NoDateSentinel, a.PublishedAt)
	assert.Empty(t, a.Thumbnail)
}
