package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stock-news-brief/internal/brief/config"
	"stock-news-brief/internal/entity"
	"stock-news-brief/pkg/common"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIRepo struct {
	response string
	err      error
	calls    int
}

func (f *fakeAIRepo) GenerateBrief(ctx context.Context, title, link, content string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeContentRepo struct {
	content string
	err     error
	calls   int
}

func (f *fakeContentRepo) FetchContent(ctx context.Context, link string) (string, error) {
	f.calls++
	return f.content, f.err
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) SendMessage(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

func newTestBriefService(t *testing.T, cfg *config.Config, aiRepo *fakeAIRepo, contentRepo *fakeContentRepo, notifier *fakeNotifier) BriefService {
	t.Helper()

	primary := &fakeNewsRepo{articles: map[string][]entity.NewsArticle{
		"NVDA": {article("NVDA", "NVIDIA beats estimates")},
	}}
	sessionCache := cache.New(common.CacheDefaultExpiration, common.CacheCleanupInterval)
	newsSvc := NewNewsService(cfg, testLogger(t), primary, &fakeNewsRepo{}, sessionCache)

	if notifier == nil {
		return NewBriefService(cfg, testLogger(t), newsSvc, aiRepo, contentRepo, nil, sessionCache)
	}
	return NewBriefService(cfg, testLogger(t), newsSvc, aiRepo, contentRepo, notifier, sessionCache)
}

func TestGenerateBrief_Success(t *testing.T) {
	aiRepo := &fakeAIRepo{response: "1. 한국어 제목: 엔비디아 실적 발표\n4. 감성 분석: 호재 - 실적 호조"}
	svc := newTestBriefService(t, &config.Config{}, aiRepo, &fakeContentRepo{}, nil)

	resp, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)
	require.NotNil(t, resp.Brief)

	assert.Equal(t, "엔비디아 실적 발표", resp.Brief.KoreanTitle)
	assert.Equal(t, entity.SentimentPositive, resp.Brief.Sentiment)
	assert.Equal(t, aiRepo.response, resp.Brief.RawResponse)
	assert.False(t, resp.Cached)
}

func TestGenerateBrief_CachedOnSecondCall(t *testing.T) {
	aiRepo := &fakeAIRepo{response: "감성 분석: 호재"}
	svc := newTestBriefService(t, &config.Config{}, aiRepo, &fakeContentRepo{}, nil)

	_, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)

	resp, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, 1, aiRepo.calls)
}

func TestGenerateBrief_ForceReplacesWholesale(t *testing.T) {
	aiRepo := &fakeAIRepo{response: "감성 분석: 호재"}
	svc := newTestBriefService(t, &config.Config{}, aiRepo, &fakeContentRepo{}, nil)

	first, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)

	aiRepo.response = "감성 분석: 악재"
	second, err := svc.GenerateBrief(context.Background(), "NVDA", 0, true)
	require.NoError(t, err)

	assert.Equal(t, 2, aiRepo.calls)
	assert.Equal(t, entity.SentimentPositive, first.Brief.Sentiment)
	assert.Equal(t, entity.SentimentNegative, second.Brief.Sentiment)

	cached := svc.GetBrief(context.Background(), "NVDA", 0)
	require.NotNil(t, cached)
	assert.Equal(t, entity.SentimentNegative, cached.Brief.Sentiment)
}

func TestGenerateBrief_DegradedOnGenerationError(t *testing.T) {
	aiRepo := &fakeAIRepo{err: errors.New("quota exceeded")}
	svc := newTestBriefService(t, &config.Config{}, aiRepo, &fakeContentRepo{}, nil)

	resp, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)
	require.NotNil(t, resp.Brief)

	assert.Equal(t, "NVIDIA beats estimates", resp.Brief.KoreanTitle)
	assert.True(t, strings.HasPrefix(resp.Brief.Summary, common.BriefFailurePrefix))
	assert.Contains(t, resp.Brief.Summary, "quota exceeded")
	assert.Equal(t, entity.SentimentNeutral, resp.Brief.Sentiment)
	assert.Empty(t, resp.Brief.RawResponse)
}

func TestGenerateBrief_ArticleNotFound(t *testing.T) {
	svc := newTestBriefService(t, &config.Config{}, &fakeAIRepo{response: "x"}, &fakeContentRepo{}, nil)

	_, err := svc.GenerateBrief(context.Background(), "NVDA", 9, false)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestGenerateBrief_FetchesArticleContentWhenEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.News.FetchArticleContent = true
	contentRepo := &fakeContentRepo{content: "article body"}
	svc := newTestBriefService(t, cfg, &fakeAIRepo{response: "감성 분석: 중립"}, contentRepo, nil)

	_, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, contentRepo.calls)
}

func TestGenerateBrief_ContentFetchFailureIsNotFatal(t *testing.T) {
	cfg := &config.Config{}
	cfg.News.FetchArticleContent = true
	contentRepo := &fakeContentRepo{err: errors.New("blocked")}
	svc := newTestBriefService(t, cfg, &fakeAIRepo{response: "감성 분석: 호재"}, contentRepo, nil)

	resp, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)
	assert.Equal(t, entity.SentimentPositive, resp.Brief.Sentiment)
}

func TestGenerateBrief_TelegramDelivery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telegram.Enabled = true
	notifier := &fakeNotifier{}
	svc := newTestBriefService(t, cfg, &fakeAIRepo{response: "1. 한국어 제목: 테스트\n감성 분석: 호재"}, &fakeContentRepo{}, notifier)

	_, err := svc.GenerateBrief(context.Background(), "NVDA", 0, false)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "NVDA")
	assert.Contains(t, notifier.messages[0], "테스트")
}

func TestGetBrief_NilWhenNotGenerated(t *testing.T) {
	svc := newTestBriefService(t, &config.Config{}, &fakeAIRepo{response: "x"}, &fakeContentRepo{}, nil)
	assert.Nil(t, svc.GetBrief(context.Background(), "NVDA", 0))
}
