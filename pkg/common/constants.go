package common

import "time"

const (
	CacheKeyNewsPrefix  = "news"
	CacheKeyChartPrefix = "chart"
	CacheKeyBriefPrefix = "brief"

	// Session cache entries live until a refresh replaces them.
	CacheDefaultExpiration = 30 * time.Minute
	CacheCleanupInterval   = 10 * time.Minute

	DefaultNewsCount = 3
	MaxNewsCount     = 10

	DefaultChartPeriod = "1mo"

	// Display fallbacks matching the dashboard's expectations.
	TitleFallback     = "제목 없음"
	PublisherFallback = "알 수 없음"
	LinkPlaceholder   = "#"

	// Shown as the brief summary when generation fails.
	BriefFailurePrefix = "⚠️ 요약 생성 실패"
)
