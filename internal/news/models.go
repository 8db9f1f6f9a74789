package news

import "time"

// Article is one backend-supplied news record. The article list is
// read-only once fetched; per-article UI state (bookmarks, expanded
// summaries) lives in the TUI layer and is never written back.
type Article struct {
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Topic     string   `json:"topic"`
	Sentiment float64  `json:"sentiment"`
	Source    string   `json:"source"`
	Entities  Entities `json:"entities"`
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url,omitempty"`
}

// Entities holds the place and person names the backend extracted from
// the article text. Both lists are opaque to the dashboard beyond
// search matching and display.
type Entities struct {
	States []string `json:"states"`
	People []string `json:"people"`
}

// timestampLayouts covers the ISO-8601 shapes the backend emits.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// PublishedAt parses the article's ISO-8601 timestamp. Returns the zero
// time when the timestamp is missing or unparseable; callers render
// nothing in that case rather than a bogus date.
func (a *Article) PublishedAt() time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, a.Timestamp); err == nil {
			return t
		}
	}
	return time.Time{}
}
