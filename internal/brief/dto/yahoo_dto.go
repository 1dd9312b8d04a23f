package dto

// YahooNewsResponse is the relevant slice of the Yahoo Finance search response.
type YahooNewsResponse struct {
	News []YahooNewsItem `json:"news"`
}

// YahooNewsItem is a single news entry. Newer API revisions nest the article
// under "content"; older ones carry the fields at the top level. Both shapes
// are kept so either revision decodes.
type YahooNewsItem struct {
	Title               string          `json:"title"`
	Link                string          `json:"link"`
	Publisher           string          `json:"publisher"`
	ProviderPublishTime int64           `json:"providerPublishTime"`
	Thumbnail           *YahooThumbnail `json:"thumbnail,omitempty"`
	Content             *YahooContent   `json:"content,omitempty"`
}

// YahooContent is the nested article payload of newer API revisions.
type YahooContent struct {
	Title           string          `json:"title"`
	Summary         string          `json:"summary"`
	PubDate         string          `json:"pubDate"`
	Provider        *YahooProvider  `json:"provider,omitempty"`
	CanonicalURL    *YahooURL       `json:"canonicalUrl,omitempty"`
	ClickThroughURL *YahooURL       `json:"clickThroughUrl,omitempty"`
	Thumbnail       *YahooThumbnail `json:"thumbnail,omitempty"`
}

// YahooProvider identifies the publisher of an article.
type YahooProvider struct {
	DisplayName string `json:"displayName"`
}

// YahooURL wraps a URL field.
type YahooURL struct {
	URL string `json:"url"`
}

// YahooThumbnail holds the available thumbnail resolutions.
type YahooThumbnail struct {
	Resolutions []YahooResolution `json:"resolutions"`
}

// YahooResolution is one rendition of a thumbnail image.
type YahooResolution struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// YahooChartResponse is the relevant slice of the Yahoo Finance chart response.
type YahooChartResponse struct {
	Chart YahooChart `json:"chart"`
}

// YahooChart holds the chart result list and error, one of which is set.
type YahooChart struct {
	Result []YahooChartResult `json:"result"`
	Error  *YahooChartError   `json:"error"`
}

// YahooChartError is the error payload of a failed chart request.
type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooChartResult is one ticker's chart data.
type YahooChartResult struct {
	Timestamp  []int64         `json:"timestamp"`
	Indicators YahooIndicators `json:"indicators"`
}

// YahooIndicators holds the quote series of a chart result.
type YahooIndicators struct {
	Quote []YahooQuote `json:"quote"`
}

// YahooQuote carries the OHLC series; entries may be null for missing bars.
type YahooQuote struct {
	Close []*float64 `json:"close"`
	High  []*float64 `json:"high"`
	Low   []*float64 `json:"low"`
}
