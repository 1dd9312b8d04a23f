package service

import (
	"context"
	"fmt"

	"stock-news-brief/internal/brief/repository"
	"stock-news-brief/internal/entity"
	"stock-news-brief/pkg/common"
	"stock-news-brief/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// validChartPeriods are the selectable chart ranges.
var validChartPeriods = map[string]struct{}{
	"5d": {}, "1mo": {}, "3mo": {}, "6mo": {}, "1y": {}, "2y": {}, "5y": {}, "max": {},
}

// ChartService fetches price charts with a session-scoped cache.
type ChartService interface {
	// GetChart returns the ticker's chart for the period. A nil chart means
	// no usable price history exists.
	GetChart(ctx context.Context, ticker, period string, refresh bool) (*entity.PriceChart, error)
}

// NewChartService creates a chart service.
func NewChartService(log *logger.Logger, chartRepo repository.ChartRepository, sessionCache *cache.Cache) ChartService {
	return &chartService{
		logger:    log,
		chartRepo: chartRepo,
		cache:     sessionCache,
	}
}

type chartService struct {
	logger    *logger.Logger
	chartRepo repository.ChartRepository
	cache     *cache.Cache
}

func (s *chartService) GetChart(ctx context.Context, ticker, period string, refresh bool) (*entity.PriceChart, error) {
	if _, ok := validChartPeriods[period]; !ok {
		period = common.DefaultChartPeriod
	}

	key := chartCacheKey(ticker, period)
	if refresh {
		s.cache.Delete(key)
	}
	if cached, found := s.cache.Get(key); found {
		return cached.(*entity.PriceChart), nil
	}

	chart, err := s.chartRepo.FetchChart(ctx, ticker, period)
	if err != nil {
		s.logger.Error("Failed to fetch chart",
			logger.ErrorField(err),
			logger.StringField("ticker", ticker),
			logger.StringField("period", period),
		)
		return nil, err
	}
	if chart == nil {
		return nil, nil
	}

	s.cache.Set(key, chart, cache.DefaultExpiration)
	return chart, nil
}

func chartCacheKey(ticker, period string) string {
	return fmt.Sprintf("%s:%s:%s", common.CacheKeyChartPrefix, ticker, period)
}
