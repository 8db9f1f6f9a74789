package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/newsdeck/newsdeck/internal/debuglog"
)

// Placeholder values substituted for absent record fields. Rendering
// raw zero values would surface as blank text in the dashboard.
const (
	PlaceholderTitle   = "(untitled)"
	PlaceholderSummary = "No summary available."
	PlaceholderTopic   = "General"
	PlaceholderSource  = "Unknown Source"
)

// Client fetches the pre-processed article collection from the backend
// API. One GET per dashboard run; there is no retry or backoff.
type Client struct {
	client    *http.Client
	endpoint  string
	userAgent string
}

func NewClient(endpoint, userAgent string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		endpoint:  endpoint,
		userAgent: userAgent,
	}
}

// Fetch retrieves and decodes the article list. A response body that is
// valid JSON but not an array coerces to an empty list; malformed JSON
// and non-2xx statuses are errors.
func (c *Client) Fetch(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	articles, err := decodeArticles(body)
	if err != nil {
		return nil, err
	}

	debuglog.Infof("fetched %d articles from %s", len(articles), c.endpoint)
	return normalize(articles), nil
}

// Endpoint reports the configured backend URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func decodeArticles(body []byte) ([]Article, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parsing news response: empty body")
	}

	if trimmed[0] != '[' {
		// Object/scalar payloads are coerced to an empty collection
		// rather than rejected, matching the backend contract.
		if !json.Valid(body) {
			return nil, fmt.Errorf("parsing news response: invalid JSON")
		}
		debuglog.Warnf("news response is not a JSON array; treating as empty")
		return []Article{}, nil
	}

	var articles []Article
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, fmt.Errorf("parsing news response: %w", err)
	}
	return articles, nil
}

// normalize substitutes placeholders for missing text fields so the
// dashboard never renders blank metadata. Sentiment is deliberately not
// clamped; the threshold comparisons behave as an implicit clamp.
func normalize(articles []Article) []Article {
	for i := range articles {
		a := &articles[i]
		if strings.TrimSpace(a.Title) == "" {
			debuglog.Warnf("article %d has no title", i)
			a.Title = PlaceholderTitle
		}
		if strings.TrimSpace(a.Summary) == "" {
			a.Summary = PlaceholderSummary
		}
		if strings.TrimSpace(a.Topic) == "" {
			a.Topic = PlaceholderTopic
		}
		if strings.TrimSpace(a.Source) == "" {
			a.Source = PlaceholderSource
		}
	}
	return articles
}
