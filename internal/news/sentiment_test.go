package news

import "testing"

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		score float64
		want  SentimentKind
	}{
		{1.0, SentimentPositive},
		{0.5, SentimentPositive},
		{0.3, SentimentPositive}, // boundary is inclusive
		{0.29, SentimentNeutral},
		{0.0, SentimentNeutral},
		{-0.3, SentimentNeutral}, // boundary is inclusive
		{-0.31, SentimentNegative},
		{-1.0, SentimentNegative},
		// out-of-range scores behave as if clamped
		{2.5, SentimentPositive},
		{-3.0, SentimentNegative},
	}

	for _, tt := range tests {
		if got := ClassifySentiment(tt.score); got != tt.want {
			t.Errorf("ClassifySentiment(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSentimentPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{-1.0, 0},
		{0.0, 50},
		{0.5, 75},
		{1.0, 100},
		{-0.5, 25},
		{0.33, 67}, // rounded, not truncated
	}

	for _, tt := range tests {
		if got := SentimentPercent(tt.score); got != tt.want {
			t.Errorf("SentimentPercent(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestSentimentPercentRange(t *testing.T) {
	for s := -1.0; s <= 1.0; s += 0.01 {
		p := SentimentPercent(s)
		if p < 0 || p > 100 {
			t.Fatalf("SentimentPercent(%v) = %d out of [0,100]", s, p)
		}
	}
}

func TestSentimentLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.5, "75% - Positive"},
		{0.0, "50% - Neutral"},
		{-0.8, "10% - Negative"},
	}

	for _, tt := range tests {
		if got := SentimentLabel(tt.score); got != tt.want {
			t.Errorf("SentimentLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSentimentKindAppearance(t *testing.T) {
	if SentimentPositive.Color() == SentimentNegative.Color() {
		t.Error("positive and negative must use distinct colors")
	}
	for _, k := range []SentimentKind{SentimentPositive, SentimentNeutral, SentimentNegative} {
		if k.Icon() == "" {
			t.Errorf("%v has no icon", k)
		}
		if k.Color() == "" {
			t.Errorf("%v has no color", k)
		}
	}
}
