package service

import (
	"context"
	"fmt"
	"sync"

	"stock-news-brief/internal/brief/config"
	"stock-news-brief/internal/brief/repository"
	"stock-news-brief/internal/entity"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"
	"stock-news-brief/pkg/utils"

	"github.com/patrickmn/go-cache"
)

// NewsService collects news per ticker with a session-scoped cache.
type NewsService interface {
	// CollectNews returns the deduplicated news of all tickers in ticker
	// order. A refresh drops the session cache first.
	CollectNews(ctx context.Context, tickers []string, count int, refresh bool) ([]entity.NewsArticle, error)
	// GetArticle returns one cached article by ticker and position, or nil
	// when none exists at that position.
	GetArticle(ctx context.Context, ticker string, index int) *entity.NewsArticle
}

// NewNewsService creates a news service over the primary news source with an
// RSS fallback.
func NewNewsService(cfg *config.Config, log *logger.Logger, newsRepo, fallbackRepo repository.NewsRepository, sessionCache *cache.Cache) NewsService {
	return &newsService{
		cfg:          cfg,
		logger:       log,
		newsRepo:     newsRepo,
		fallbackRepo: fallbackRepo,
		cache:        sessionCache,
	}
}

type newsService struct {
	cfg          *config.Config
	logger       *logger.Logger
	newsRepo     repository.NewsRepository
	fallbackRepo repository.NewsRepository
	cache        *cache.Cache
}

// CollectNews fans out one fetch per ticker, then flattens results in ticker
// order and drops duplicate titles (first occurrence wins). A ticker whose
// fetch fails contributes no articles rather than failing the collection.
func (s *newsService) CollectNews(ctx context.Context, tickers []string, count int, refresh bool) ([]entity.NewsArticle, error) {
	count = clampNewsCount(count)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		byTicker = make(map[string][]entity.NewsArticle, len(tickers))
	)

	for _, ticker := range tickers {
		if refresh {
			s.cache.Delete(newsCacheKey(ticker))
		}

		wg.Add(1)
		t := ticker
		utils.GoSafe(func() {
			defer wg.Done()
			articles := s.fetchTickerNews(ctx, t, count)
			mu.Lock()
			byTicker[t] = articles
			mu.Unlock()
		})
	}
	wg.Wait()

	seenTitles := make(map[string]struct{})
	var all []entity.NewsArticle
	for _, ticker := range tickers {
		for _, article := range byTicker[ticker] {
			if _, seen := seenTitles[article.Title]; seen {
				continue
			}
			seenTitles[article.Title] = struct{}{}
			all = append(all, article)
		}
	}

	return all, nil
}

// GetArticle looks up an article from the ticker's cached collection,
// fetching it first when the session has none yet.
func (s *newsService) GetArticle(ctx context.Context, ticker string, index int) *entity.NewsArticle {
	articles := s.fetchTickerNews(ctx, ticker, common.MaxNewsCount)
	if index < 0 || index >= len(articles) {
		return nil
	}
	return &articles[index]
}

func (s *newsService) fetchTickerNews(ctx context.Context, ticker string, count int) []entity.NewsArticle {
	key := newsCacheKey(ticker)
	if cached, found := s.cache.Get(key); found {
		articles := cached.([]entity.NewsArticle)
		if len(articles) >= count {
			return articles[:count]
		}
		return articles
	}

	articles, err := s.newsRepo.FetchNews(ctx, ticker, count)
	if err != nil {
		s.logger.Error("Failed to fetch news, trying RSS fallback",
			logger.ErrorField(err),
			logger.StringField("ticker", ticker),
		)
		articles, err = s.fallbackRepo.FetchNews(ctx, ticker, count)
		if err != nil {
			s.logger.Error("Failed to fetch news from RSS fallback",
				logger.ErrorField(err),
				logger.StringField("ticker", ticker),
			)
			return nil
		}
	}

	// Pin each article's position before caching so its (ticker, index)
	// address stays valid after deduplication trims the displayed list.
	for i := range articles {
		articles[i].Index = i
	}

	s.cache.Set(key, articles, cache.DefaultExpiration)
	return articles
}

func clampNewsCount(count int) int {
	if count < 1 {
		return common.DefaultNewsCount
	}
	if count > common.MaxNewsCount {
		return common.MaxNewsCount
	}
	return count
}

func newsCacheKey(ticker string) string {
	return fmt.Sprintf("%s:%s", common.CacheKeyNewsPrefix, ticker)
}
