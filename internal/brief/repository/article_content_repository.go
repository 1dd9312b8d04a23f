package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"
	"stock-news-brief/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/mauidude/go-readability"
)

type articleContentRepository struct {
	log    *logger.Logger
	client *http.Client
}

// NewArticleContentRepository creates an ArticleContentRepository that
// downloads an article page and extracts its readable body text.
func NewArticleContentRepository(log *logger.Logger) ArticleContentRepository {
	return &articleContentRepository{
		log: log,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchContent downloads the article behind link and returns its readable
// text. Placeholder links yield empty content rather than an error.
func (r *articleContentRepository) FetchContent(ctx context.Context, link string) (string, error) {
	if link == "" || link == common.LinkPlaceholder {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		r.log.Error("Failed to create request", logger.ErrorField(err), logger.StringField("url", link))
		return "", fmt.Errorf("failed to create request for article: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Error("Failed to fetch article content", logger.ErrorField(err), logger.StringField("url", link))
		return "", fmt.Errorf("failed to fetch article content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error("Failed to fetch article content with non-200 status", logger.IntField("status", resp.StatusCode), logger.StringField("url", link))
		return "", fmt.Errorf("failed to fetch article content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.Error("Failed to read response body", logger.ErrorField(err), logger.StringField("url", link))
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		r.log.Error("Failed to parse article content", logger.ErrorField(err), logger.StringField("url", link))
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}
	content := doc.Content()
	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(content)))
	if err != nil {
		r.log.Error("Failed to parse article content", logger.ErrorField(err), logger.StringField("url", link))
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	content = strings.TrimSpace(docHTML.Text())
	content = strings.ReplaceAll(content, "\n", "")
	content = strings.ReplaceAll(content, "\t", "")
	content = strings.ReplaceAll(content, "\r", "")
	content = strings.ReplaceAll(content, "\f", "")
	return utils.SafeText(content), nil
}
