package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"stock-news-brief/internal/entity"
)

// telegramMaxLen keeps a formatted brief inside Telegram's message limit.
const telegramMaxLen = 4090

// FormatBriefForTelegram formats one article and its AI brief into a Markdown
// message for Telegram.
func FormatBriefForTelegram(article *entity.NewsArticle, brief *entity.NewsBrief) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("📈 *- - - - - %s - - - - -*\n", article.Ticker))
	builder.WriteString(fmt.Sprintf("🇰🇷 *%s*\n", brief.KoreanTitle))
	builder.WriteString(fmt.Sprintf("📅 %s | 🏢 %s\n\n", article.PublishedAt, article.Publisher))

	builder.WriteString(fmt.Sprintf("%s\n", brief.Summary))

	if brief.KeyQuotes != "" {
		builder.WriteString(fmt.Sprintf("\n📌 *핵심 문장:*\n%s\n", brief.KeyQuotes))
	}

	var sentimentIcon string
	switch brief.Sentiment {
	case entity.SentimentPositive:
		sentimentIcon = "🟢"
	case entity.SentimentNegative:
		sentimentIcon = "🔴"
	default:
		sentimentIcon = "⚪"
	}
	builder.WriteString(fmt.Sprintf("\n%s *%s*\n", sentimentIcon, brief.SentimentLabel))

	if article.Link != "" && article.Link != "#" {
		builder.WriteString(fmt.Sprintf("\n🔗 [원문 보기](%s)\n", article.Link))
	}

	message := builder.String()
	if len(message) > telegramMaxLen {
		// Back off to a rune boundary so the cut never splits a multi-byte
		// character, which Telegram rejects.
		cut := telegramMaxLen
		for cut > 0 && !utf8.RuneStart(message[cut]) {
			cut--
		}
		message = message[:cut]
	}
	return message
}
