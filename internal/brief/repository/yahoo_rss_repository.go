package repository

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"stock-news-brief/internal/brief/config"
	"stock-news-brief/internal/entity"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"
	"stock-news-brief/pkg/utils"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

type yahooRSSRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	requestLimiter *rate.Limiter
}

// NewYahooRSSRepository creates a NewsRepository backed by the per-ticker
// Yahoo Finance RSS feed. Used as a fallback when the search API is down.
func NewYahooRSSRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	return &yahooRSSRepository{
		cfg:            cfg,
		log:            log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// FetchNews fetches the ticker's RSS headlines, newest first.
func (r *yahooRSSRepository) FetchNews(ctx context.Context, ticker string, maxNews int) ([]entity.NewsArticle, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	feedURL := fmt.Sprintf("%s/rss/2.0/headline?s=%s&region=US&lang=en-US",
		r.cfg.YahooFinance.RSSBaseURL, url.QueryEscape(ticker))

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse RSS feed",
			logger.ErrorField(err),
			logger.StringField("ticker", ticker),
		)
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	articles := make([]entity.NewsArticle, 0, maxNews)
	for _, item := range feed.Items {
		if len(articles) >= maxNews {
			break
		}
		articles = append(articles, rssArticle(ticker, item))
	}

	r.log.DebugContext(ctx, "Yahoo Finance RSS fetched",
		logger.StringField("ticker", ticker),
		logger.IntField("count", len(articles)),
	)

	return articles, nil
}

func rssArticle(ticker string, item *gofeed.Item) entity.NewsArticle {
	title := item.Title
	if title == "" {
		title = common.TitleFallback
	}

	link := item.Link
	if link == "" {
		link = common.LinkPlaceholder
	}

	publishedAt := utils.NoDateSentinel
	if item.PublishedParsed != nil {
		publishedAt = item.PublishedParsed.Format(utils.PublishedDateLayout)
	}

	var thumbnail string
	if item.Image != nil {
		thumbnail = item.Image.URL
	}

	return entity.NewsArticle{
		Title:       title,
		Link:        link,
		Publisher:   common.PublisherFallback,
		Thumbnail:   thumbnail,
		PublishedAt: publishedAt,
		Ticker:      ticker,
	}
}
