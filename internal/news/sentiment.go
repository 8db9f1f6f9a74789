package news

import (
	"fmt"
	"math"
)

// SentimentKind buckets a sentiment score into the three display
// classes. Scores are expected in [-1,1]; out-of-range values fall into
// the nearest bucket without explicit clamping.
type SentimentKind int

const (
	SentimentPositive SentimentKind = iota
	SentimentNeutral
	SentimentNegative
)

const (
	positiveThreshold = 0.3
	negativeThreshold = -0.3
)

// ClassifySentiment maps a score onto its bucket: ≥0.3 positive,
// ≥-0.3 neutral, otherwise negative.
func ClassifySentiment(score float64) SentimentKind {
	switch {
	case score >= positiveThreshold:
		return SentimentPositive
	case score >= negativeThreshold:
		return SentimentNeutral
	default:
		return SentimentNegative
	}
}

func (k SentimentKind) String() string {
	switch k {
	case SentimentPositive:
		return "Positive"
	case SentimentNeutral:
		return "Neutral"
	default:
		return "Negative"
	}
}

// Color returns the hex color for the bucket's badge.
func (k SentimentKind) Color() string {
	switch k {
	case SentimentPositive:
		return "#16A34A"
	case SentimentNeutral:
		return "#F59E0B"
	default:
		return "#DC2626"
	}
}

// Icon returns the badge glyph for the bucket.
func (k SentimentKind) Icon() string {
	switch k {
	case SentimentPositive:
		return "▲"
	case SentimentNeutral:
		return "►"
	default:
		return "▼"
	}
}

// SentimentPercent maps [-1,1] onto [0,100], rounded.
func SentimentPercent(score float64) int {
	return int(math.Round(((score + 1) / 2) * 100))
}

// SentimentLabel renders the badge text, e.g. "75% - Positive".
func SentimentLabel(score float64) string {
	return fmt.Sprintf("%d%% - %s", SentimentPercent(score), ClassifySentiment(score))
}
