package utils

import (
	"time"
)

// PublishedDateLayout is the display layout for article publication times.
const PublishedDateLayout = "2006-01-02 15:04"

// NoDateSentinel is shown when an article carries no usable publication time.
const NoDateSentinel = "날짜 없음"

// FormatPublishedAt renders an article publication time for display. The raw
// ISO string takes priority; a unix timestamp is used when the ISO string is
// absent; otherwise the no-date sentinel is returned. An unparseable ISO
// string is truncated to its date-time prefix rather than discarded.
func FormatPublishedAt(isoDate string, unixTime int64) string {
	if isoDate != "" {
		if t, err := time.Parse(time.RFC3339, isoDate); err == nil {
			return t.Format(PublishedDateLayout)
		}
		if len(isoDate) > 16 {
			return isoDate[:16]
		}
		return isoDate
	}
	if unixTime > 0 {
		return time.Unix(unixTime, 0).Format(PublishedDateLayout)
	}
	return NoDateSentinel
}
