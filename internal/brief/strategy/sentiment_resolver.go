package strategy

import (
	"strings"

	"stock-news-brief/internal/entity"
)

// Sentiment section markers in the model response.
const (
	MarkerSentiment        = "감성 분석"
	MarkerSentimentCompact = "감성분석"
)

// SentimentResolver is one tier of the sentiment resolution chain. A resolver
// either yields a decisive Positive/Negative call or abstains; it never yields
// Neutral itself.
type SentimentResolver interface {
	Resolve(lines []string, rawText string) (entity.Sentiment, bool)
}

// DefaultResolvers returns the resolution tiers in order: the labeled
// sentiment line, then a loose scan of any sentiment-mentioning line, then
// last-mention-wins over the full text.
func DefaultResolvers() []SentimentResolver {
	return []SentimentResolver{
		labeledLineResolver{},
		looseLineResolver{},
		lastMentionResolver{},
	}
}

// ResolveSentiment applies the resolver tiers in order until one yields a
// result. When every tier abstains the sentiment is Neutral.
func ResolveSentiment(lines []string, rawText string) entity.Sentiment {
	for _, resolver := range DefaultResolvers() {
		if sentiment, ok := resolver.Resolve(lines, rawText); ok {
			return sentiment
		}
	}
	return entity.SentimentNeutral
}

// labeledLineResolver reads the text after the first colon of a line carrying
// the sentiment marker. A later marker line overwrites an earlier one, so the
// last labeled line decides; an ambiguous label abstains to the next tier.
type labeledLineResolver struct{}

func (labeledLineResolver) Resolve(lines []string, _ string) (entity.Sentiment, bool) {
	result := entity.SentimentNeutral
	found := false
	for _, line := range lines {
		if !strings.Contains(line, MarkerSentiment) && !strings.Contains(line, MarkerSentimentCompact) {
			continue
		}
		found = true
		text := line
		if idx := strings.Index(line, ":"); idx >= 0 {
			text = line[idx+1:]
		}
		switch {
		case strings.Contains(text, entity.SentimentLabelPositive):
			result = entity.SentimentPositive
		case strings.Contains(text, entity.SentimentLabelNegative):
			result = entity.SentimentNegative
		default:
			result = entity.SentimentNeutral
		}
	}
	if !found || result == entity.SentimentNeutral {
		return entity.SentimentNeutral, false
	}
	return result, true
}

// looseLineResolver re-scans every line mentioning sentiment, in either
// Korean or English, and takes the first one carrying a decisive token.
type looseLineResolver struct{}

func (looseLineResolver) Resolve(lines []string, _ string) (entity.Sentiment, bool) {
	for _, line := range lines {
		if !strings.Contains(line, "감성") && !strings.Contains(strings.ToLower(line), "sentiment") {
			continue
		}
		if strings.Contains(line, entity.SentimentLabelPositive) {
			return entity.SentimentPositive, true
		}
		if strings.Contains(line, entity.SentimentLabelNegative) {
			return entity.SentimentNegative, true
		}
	}
	return entity.SentimentNeutral, false
}

// lastMentionResolver compares the last occurrence of each token over the full
// raw text; whichever appears later wins.
type lastMentionResolver struct{}

func (lastMentionResolver) Resolve(_ []string, rawText string) (entity.Sentiment, bool) {
	lastPositive := strings.LastIndex(rawText, entity.SentimentLabelPositive)
	lastNegative := strings.LastIndex(rawText, entity.SentimentLabelNegative)
	if lastPositive > lastNegative && lastPositive != -1 {
		return entity.SentimentPositive, true
	}
	if lastNegative > lastPositive && lastNegative != -1 {
		return entity.SentimentNegative, true
	}
	return entity.SentimentNeutral, false
}
