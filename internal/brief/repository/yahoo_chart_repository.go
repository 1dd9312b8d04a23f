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
	"stock-news-brief/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// chartIntervalMap picks a bar interval per period so short ranges get
// fine-grained data.
var chartIntervalMap = map[string]string{
	"5d":  "15m",
	"1mo": "1h",
	"3mo": "1d",
	"6mo": "1d",
	"1y":  "1d",
	"2y":  "1wk",
	"5y":  "1wk",
	"max": "1mo",
}

type yahooChartRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewYahooChartRepository creates a ChartRepository backed by the Yahoo
// Finance chart API.
func NewYahooChartRepository(cfg *config.Config, log *logger.Logger) ChartRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	return &yahooChartRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// FetchChart fetches price history for the ticker over the period. When the
// fine-grained query yields fewer than two usable bars it is retried at the
// default daily interval; a nil chart means no usable history exists.
func (r *yahooChartRepository) FetchChart(ctx context.Context, ticker, period string) (*entity.PriceChart, error) {
	interval, ok := chartIntervalMap[period]
	if !ok {
		interval = "1d"
	}

	chart, err := r.fetchChartData(ctx, ticker, period, interval)
	if err != nil {
		return nil, err
	}

	if (chart == nil || chart.DataPoints < 2) && interval != "1d" {
		chart, err = r.fetchChartData(ctx, ticker, period, "1d")
		if err != nil {
			return nil, err
		}
	}

	if chart == nil || chart.DataPoints < 2 {
		return nil, nil
	}
	return chart, nil
}

func (r *yahooChartRepository) fetchChartData(ctx context.Context, ticker, period, interval string) (*entity.PriceChart, error) {
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		r.cfg.YahooFinance.BaseURL, url.PathEscape(ticker), url.QueryEscape(period), url.QueryEscape(interval))

	body, err := r.sendRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var response dto.YahooChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Yahoo chart response: %w", err)
	}

	if response.Chart.Error != nil {
		return nil, fmt.Errorf("Yahoo chart API error: %s - %s", response.Chart.Error.Code, response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 || len(response.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	return buildChart(ticker, period, response.Chart.Result[0]), nil
}

// buildChart derives the display figures from the raw series: current price is
// the last close, change is measured against the first close of the period,
// high/low span the whole period. Bars with missing closes are skipped.
func buildChart(ticker, period string, result dto.YahooChartResult) *entity.PriceChart {
	quote := result.Indicators.Quote[0]

	points := make([]entity.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		points = append(points, entity.PricePoint{
			Timestamp: time.Unix(ts, 0).UTC(),
			Close:     *quote.Close[i],
		})
	}

	if len(points) < 2 {
		return &entity.PriceChart{Ticker: ticker, Period: period, Points: points, DataPoints: len(points)}
	}

	currentPrice := points[len(points)-1].Close
	prevPrice := points[0].Close
	change := currentPrice - prevPrice
	var changePct float64
	if prevPrice != 0 {
		changePct = change / prevPrice * 100
	}

	// High/low span the whole period; close prices stand in for bars whose
	// high/low series is missing.
	high := points[0].Close
	low := points[0].Close
	for _, p := range points {
		if p.Close > high {
			high = p.Close
		}
		if p.Close < low {
			low = p.Close
		}
	}
	for i, h := range quote.High {
		if h != nil && *h > high {
			high = *h
		}
		if i < len(quote.Low) && quote.Low[i] != nil && *quote.Low[i] < low {
			low = *quote.Low[i]
		}
	}

	return &entity.PriceChart{
		Ticker:       ticker,
		Period:       period,
		Points:       points,
		CurrentPrice: currentPrice,
		Change:       change,
		ChangePct:    changePct,
		High:         high,
		Low:          low,
		DataPoints:   len(points),
	}
}

func (r *yahooChartRepository) sendRequest(ctx context.Context, url string) ([]byte, error) {
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
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo chart API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.ErrorContext(ctx, "Received non-OK response from Yahoo chart API", fields...)
		return nil, fmt.Errorf("received non-OK response from Yahoo chart API: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from Yahoo chart API", fields...)
		return nil, err
	}

	return body, nil
}
