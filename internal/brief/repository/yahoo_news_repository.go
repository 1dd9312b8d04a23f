package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stock-news-brief/internal/brief/config"
	"stock-news-brief/internal/brief/dto"
	"stock-news-brief/internal/entity"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"
	"stock-news-brief/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type yahooNewsRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewYahooNewsRepository creates a NewsRepository backed by the Yahoo Finance
// search API.
func NewYahooNewsRepository(cfg *config.Config, log *logger.Logger) NewsRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	return &yahooNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: requestLimiter,
	}
}

// FetchNews fetches the latest news for a ticker, newest first. An empty slice
// means no news, not an error.
func (r *yahooNewsRepository) FetchNews(ctx context.Context, ticker string, maxNews int) ([]entity.NewsArticle, error) {
	reqURL := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=%d&quotesCount=0",
		r.cfg.YahooFinance.BaseURL, url.QueryEscape(ticker), maxNews)

	body, err := r.sendRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var response dto.YahooNewsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Yahoo news response: %w", err)
	}

	articles := make([]entity.NewsArticle, 0, len(response.News))
	for _, item := range response.News {
		if len(articles) >= maxNews {
			break
		}
		articles = append(articles, buildArticle(ticker, item))
	}

	r.log.DebugContext(ctx, "Yahoo Finance news fetched",
		logger.StringField("ticker", ticker),
		logger.IntField("count", len(articles)),
	)

	return articles, nil
}

// buildArticle maps one Yahoo news item onto a NewsArticle, preferring the
// nested content payload of newer API revisions and falling back to top-level
// fields, then to display placeholders.
func buildArticle(ticker string, item dto.YahooNewsItem) entity.NewsArticle {
	content := item.Content

	title := item.Title
	if content != nil && content.Title != "" {
		title = content.Title
	}
	if title == "" {
		title = common.TitleFallback
	}

	link := common.LinkPlaceholder
	switch {
	case content != nil && content.CanonicalURL != nil && content.CanonicalURL.URL != "":
		link = content.CanonicalURL.URL
	case content != nil && content.ClickThroughURL != nil && content.ClickThroughURL.URL != "":
		link = content.ClickThroughURL.URL
	case item.Link != "":
		link = item.Link
	}

	publisher := item.Publisher
	if content != nil && content.Provider != nil && content.Provider.DisplayName != "" {
		publisher = content.Provider.DisplayName
	}
	if publisher == "" {
		publisher = common.PublisherFallback
	}

	thumbnail := item.Thumbnail
	if content != nil && content.Thumbnail != nil {
		thumbnail = content.Thumbnail
	}
	var thumbnailURL string
	if thumbnail != nil && len(thumbnail.Resolutions) > 0 {
		thumbnailURL = thumbnail.Resolutions[0].URL
	}

	var pubDate string
	if content != nil {
		pubDate = content.PubDate
	}

	return entity.NewsArticle{
		Title:       title,
		Link:        link,
		Publisher:   publisher,
		Thumbnail:   thumbnailURL,
		PublishedAt: utils.FormatPublishedAt(pubDate, item.ProviderPublishTime),
		Ticker:      ticker,
	}
}

func (r *yahooNewsRepository) sendRequest(ctx context.Context, url string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", url),
		zap.Int("max_request_per_minute", r.cfg.YahooFinance.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo Finance API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "Received non-OK response from Yahoo Finance API", fields...)
		return nil, fmt.Errorf("received non-OK response from Yahoo Finance API: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from Yahoo Finance API", fields...)
		return nil, err
	}

	return body, nil
}
