package repository

import (
	"testing"

	"stock-news-brief/internal/brief/dto"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestBuildArticle_NestedContentWins(t *testing.T) {
	item := dto.YahooNewsItem{
		Title:     "top-level title",
		Link:      "https://top.example.com",
		Publisher: "Top Publisher",
		Content: &dto.YahooContent{
			Title:        "nested title",
			PubDate:      "2026-08-30T14:05:00Z",
			Provider:     &dto.YahooProvider{DisplayName: "Nested Publisher"},
			CanonicalURL: &dto.YahooURL{URL: "https://canonical.example.com"},
			Thumbnail: &dto.YahooThumbnail{Resolutions: []dto.YahooResolution{
				{URL: "https://img.example.com/a.jpg", Width: 140, Height: 140},
				{URL: "https://img.example.com/b.jpg", Width: 720, Height: 480},
			}},
		},
	}

	a := buildArticle("AAPL", item)

	assert.Equal(t, "nested title", a.Title)
	assert.Equal(t, "https://canonical.example.com", a.Link)
	assert.Equal(t, "Nested Publisher", a.Publisher)
	assert.Equal(t, "https://img.example.com/a.jpg", a.Thumbnail)
	assert.Equal(t, "2026-08-30 14:05", a.PublishedAt)
	assert.Equal(t, "AAPL", a.Ticker)
}

func TestBuildArticle_ClickThroughBeforeTopLevelLink(t *testing.T) {
	item := dto.YahooNewsItem{
		Link: "https://top.example.com",
		Content: &dto.YahooContent{
			ClickThroughURL: &dto.YahooURL{URL: "https://click.example.com"},
		},
	}

	a := buildArticle("AAPL", item)
	assert.Equal(t, "https://click.example.com", a.Link)
}

func TestBuildArticle_Fallbacks(t *testing.T) {
	a := buildArticle("AAPL", dto.YahooNewsItem{})

	assert.Equal(t, common.TitleFallback, a.Title)
	assert.Equal(t, common.LinkPlaceholder, a.Link)
	assert.Equal(t, common.PublisherFallback, a.Publisher)
	assert.Empty(t, a.Thumbnail)
	assert.Equal(t, utils.NoDateSentinel, a.PublishedAt)
}

func TestBuildArticle_EpochFallbackDate(t *testing.T) {
	item := dto.YahooNewsItem{
		Title:               "dated",
		ProviderPublishTime: 1756600000,
	}

	a := buildArticle("AAPL", item)
	assert.NotEqual(t, utils.NoDateSentinel, a.PublishedAt)
	assert.Len(t, a.PublishedAt, len(utils.PublishedDateLayout))
}
