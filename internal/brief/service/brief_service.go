package service

import (
	"context"
	"fmt"

	"stock-news-brief/internal/brief/config"
	"stock-news-brief/internal/brief/dto"
	"stock-news-brief/internal/brief/repository"
	"stock-news-brief/internal/entity"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"
	"stock-news-brief/pkg/telegram"

	"github.com/patrickmn/go-cache"
)

// ErrArticleNotFound is returned when no article exists at the requested
// ticker/position.
var ErrArticleNotFound = fmt.Errorf("article not found")

// BriefService generates and caches AI briefs for collected articles.
type BriefService interface {
	// GenerateBrief produces the brief for the article at (ticker, index),
	// serving the cached brief unless force replaces it. A failed generation
	// yields a degraded brief, never an error.
	GenerateBrief(ctx context.Context, ticker string, index int, force bool) (*dto.BriefResponse, error)
	// GetBrief returns the cached brief, or nil when none was generated yet.
	GetBrief(ctx context.Context, ticker string, index int) *dto.BriefResponse
}

// NewBriefService creates a brief service.
func NewBriefService(
	cfg *config.Config,
	log *logger.Logger,
	newsService NewsService,
	aiRepo repository.AIRepository,
	contentRepo repository.ArticleContentRepository,
	telegramNotifier telegram.Notifier,
	sessionCache *cache.Cache,
) BriefService {
	return &briefService{
		cfg:              cfg,
		logger:           log,
		newsService:      newsService,
		aiRepo:           aiRepo,
		contentRepo:      contentRepo,
		telegramNotifier: telegramNotifier,
		cache:            sessionCache,
	}
}

type briefService struct {
	cfg              *config.Config
	logger           *logger.Logger
	newsService      NewsService
	aiRepo           repository.AIRepository
	contentRepo      repository.ArticleContentRepository
	telegramNotifier telegram.Notifier
	cache            *cache.Cache
}

func (s *briefService) GenerateBrief(ctx context.Context, ticker string, index int, force bool) (*dto.BriefResponse, error) {
	key := briefCacheKey(ticker, index)
	if !force {
		if cached, found := s.cache.Get(key); found {
			return &dto.BriefResponse{Ticker: ticker, Index: index, Brief: cached.(*entity.NewsBrief), Cached: true}, nil
		}
	}

	article := s.newsService.GetArticle(ctx, ticker, index)
	if article == nil {
		return nil, ErrArticleNotFound
	}

	var content string
	if s.cfg.News.FetchArticleContent {
		fetched, err := s.contentRepo.FetchContent(ctx, article.Link)
		if err != nil {
			// The prompt falls back to title and link only.
			s.logger.Warn("Failed to fetch article content",
				logger.ErrorField(err),
				logger.StringField("link", article.Link),
			)
		} else {
			content = fetched
		}
	}

	brief := s.generate(ctx, article, content)

	// Replaced wholesale on re-summarization, never mutated in place.
	s.cache.Set(key, brief, cache.DefaultExpiration)

	s.notify(article, brief)

	return &dto.BriefResponse{Ticker: ticker, Index: index, Brief: brief}, nil
}

func (s *briefService) GetBrief(ctx context.Context, ticker string, index int) *dto.BriefResponse {
	cached, found := s.cache.Get(briefCacheKey(ticker, index))
	if !found {
		return nil
	}
	return &dto.BriefResponse{Ticker: ticker, Index: index, Brief: cached.(*entity.NewsBrief), Cached: true}
}

// generate runs the model call and interprets the response. A generation
// failure degrades to a visible placeholder brief with Neutral sentiment
// rather than propagating.
func (s *briefService) generate(ctx context.Context, article *entity.NewsArticle, content string) *entity.NewsBrief {
	rawText, err := s.aiRepo.GenerateBrief(ctx, article.Title, article.Link, content)
	if err != nil {
		s.logger.Error("Failed to generate brief",
			logger.ErrorField(err),
			logger.StringField("ticker", article.Ticker),
			logger.StringField("title", article.Title),
		)
		return &entity.NewsBrief{
			KoreanTitle:    article.Title,
			Summary:        fmt.Sprintf("%s: %s", common.BriefFailurePrefix, err.Error()),
			Sentiment:      entity.SentimentNeutral,
			SentimentLabel: entity.SentimentNeutral.Label(),
		}
	}

	return InterpretBriefResponse(rawText, article.Title)
}

func (s *briefService) notify(article *entity.NewsArticle, brief *entity.NewsBrief) {
	if !s.cfg.Telegram.Enabled || s.telegramNotifier == nil {
		return
	}
	message := telegram.FormatBriefForTelegram(article, brief)
	if err := s.telegramNotifier.SendMessage(message); err != nil {
		s.logger.Error("Failed to send Telegram notification",
			logger.ErrorField(err),
			logger.StringField("ticker", article.Ticker),
		)
	}
}

func briefCacheKey(ticker string, index int) string {
	return fmt.Sprintf("%s:%s_%d", common.CacheKeyBriefPrefix, ticker, index)
}
