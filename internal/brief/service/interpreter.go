package service

import (
	"strings"

	"stock-news-brief/internal/brief/strategy"
	"stock-news-brief/internal/entity"
)

// Section markers the model is instructed to emit. The response has no
// guaranteed schema beyond these informal labels, so every extraction below
// has a fallback and the interpreter itself can never fail.
const (
	markerKoreanTitle = "한국어 제목:"
	markerSummary     = "3줄 요약:"
	markerKeyQuotes   = "핵심 문장:"
)

// sectionWindow is how many lines after a section marker are scanned for that
// section's content.
const sectionWindow = 3

// InterpretBriefResponse converts the free-text model response into a
// structured NewsBrief. Pure function of its inputs: missing sections degrade
// to defaults, the fallback title stands in when no translation is found, and
// the raw response is always carried verbatim. When a marker appears more than
// once the later occurrence wins.
func InterpretBriefResponse(rawText, fallbackTitle string) *entity.NewsBrief {
	lines := strings.Split(strings.TrimSpace(rawText), "\n")

	koreanTitle := fallbackTitle
	var summary, keyQuotes string

	for i, line := range lines {
		switch {
		case strings.Contains(line, markerKoreanTitle):
			idx := strings.LastIndex(line, markerKoreanTitle)
			koreanTitle = strings.TrimSpace(line[idx+len(markerKoreanTitle):])

		case strings.Contains(line, markerSummary):
			bullets := collectBullets(lines, i+1)
			if len(bullets) > 0 {
				summary = strings.Join(bullets, "\n")
			} else {
				summary = rawText
			}

		case strings.Contains(line, markerKeyQuotes):
			keyQuotes = strings.Join(collectQuotes(lines, i+1), "\n")
		}
	}

	if summary == "" {
		summary = rawText
	}

	sentiment := strategy.ResolveSentiment(lines, rawText)

	return &entity.NewsBrief{
		KoreanTitle:    koreanTitle,
		Summary:        summary,
		KeyQuotes:      keyQuotes,
		Sentiment:      sentiment,
		SentimentLabel: sentiment.Label(),
		RawResponse:    rawText,
	}
}

// collectBullets gathers bullet lines from the summary section's lookahead
// window.
func collectBullets(lines []string, start int) []string {
	var bullets []string
	for j := start; j < start+sectionWindow && j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") {
			bullets = append(bullets, trimmed)
		}
	}
	return bullets
}

// collectQuotes gathers quote lines from the quotes section's lookahead
// window, stopping early when the sentiment section begins.
func collectQuotes(lines []string, start int) []string {
	var quotes []string
	for j := start; j < start+sectionWindow && j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, `"`) || strings.HasPrefix(trimmed, "“") {
			quotes = append(quotes, trimmed)
		} else if strings.Contains(trimmed, strategy.MarkerSentiment) {
			break
		}
	}
	return quotes
}
