package strategy

import (
	"strings"
	"testing"

	"stock-news-brief/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestLabeledLineResolver(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		want   entity.Sentiment
		wantOK bool
	}{
		{"positive after colon", []string{"4. 감성 분석: 호재 - 실적 호조"}, entity.SentimentPositive, true},
		{"negative after colon", []string{"4. 감성 분석: 악재 - 소송 리스크"}, entity.SentimentNegative, true},
		{"no colon uses whole line", []string{"감성분석 호재"}, entity.SentimentPositive, true},
		{"ambiguous abstains", []string{"감성 분석: 불확실"}, entity.SentimentNeutral, false},
		{"no marker abstains", []string{"아무 관련 없는 줄"}, entity.SentimentNeutral, false},
		{"later labeled line overrides", []string{"감성 분석: 호재", "감성 분석: 악재"}, entity.SentimentNegative, true},
		{"later ambiguous line abstains", []string{"감성 분석: 호재", "감성 분석: 모호"}, entity.SentimentNeutral, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := labeledLineResolver{}.Resolve(tt.lines, strings.Join(tt.lines, "\n"))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLooseLineResolver(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		want   entity.Sentiment
		wantOK bool
	}{
		{"korean mention", []string{"여기서 감성은 호재로 읽힌다"}, entity.SentimentPositive, true},
		{"english mention case-insensitive", []string{"Overall SENTIMENT leans 악재"}, entity.SentimentNegative, true},
		{"first match in line order wins", []string{"감성: 악재", "감성: 호재"}, entity.SentimentNegative, true},
		{"mention without token abstains", []string{"감성 판단은 유보"}, entity.SentimentNeutral, false},
		{"token without mention abstains", []string{"호재라는 단어만 있는 줄"}, entity.SentimentNeutral, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := looseLineResolver{}.Resolve(tt.lines, strings.Join(tt.lines, "\n"))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLastMentionResolver(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   entity.Sentiment
		wantOK bool
	}{
		{"positive mentioned last", "악재 이후 호재", entity.SentimentPositive, true},
		{"negative mentioned last", "호재 이후 악재", entity.SentimentNegative, true},
		{"only positive", "호재뿐", entity.SentimentPositive, true},
		{"only negative", "악재뿐", entity.SentimentNegative, true},
		{"neither token", "어느 쪽도 아님", entity.SentimentNeutral, false},
		{"frequency does not matter", "호재 호재 호재 악재", entity.SentimentNegative, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lastMentionResolver{}.Resolve(nil, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSentiment_TierOrder(t *testing.T) {
	// The labeled line decides even when later free text disagrees.
	lines := []string{"감성 분석: 악재", "하지만 본문 끝에는 호재"}
	got := ResolveSentiment(lines, strings.Join(lines, "\n"))
	assert.Equal(t, entity.SentimentNegative, got)

	// With no decisive tier the default is Neutral.
	got = ResolveSentiment([]string{"중립적인 본문"}, "중립적인 본문")
	assert.Equal(t, entity.SentimentNeutral, got)
}
