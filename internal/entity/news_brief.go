package entity

// Sentiment is the coarse market-impact classification of a news item. It is
// always exactly one of the three values below, never empty or free text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Korean sentiment labels as requested from the model and shown on the badge.
const (
	SentimentLabelPositive = "호재"
	SentimentLabelNegative = "악재"
	SentimentLabelNeutral  = "중립"
)

// Label returns the Korean display label for the sentiment.
func (s Sentiment) Label() string {
	switch s {
	case SentimentPositive:
		return SentimentLabelPositive
	case SentimentNegative:
		return SentimentLabelNegative
	default:
		return SentimentLabelNeutral
	}
}

// NewsBrief is the structured result interpreted from a free-text model
// response for one article. Created once per article on demand, never mutated
// afterwards; a re-summarization replaces the whole record.
type NewsBrief struct {
	KoreanTitle    string    `json:"korean_title"`
	Summary        string    `json:"summary"`
	KeyQuotes      string    `json:"key_quotes,omitempty"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentLabel string    `json:"sentiment_label"`
	RawResponse    string    `json:"raw_response"`
}
