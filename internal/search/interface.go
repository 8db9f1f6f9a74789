package search

import "github.com/newsdeck/newsdeck/internal/news"

// Searcher is the minimal search API the dashboard consumes. The
// article collection is immutable once fetched, so engines index it
// once and answer queries with positions into the indexed slice; the
// caller keys transient per-article state by those positions.
type Searcher interface {
	// Index replaces the engine's view of the article collection.
	Index(articles []news.Article) error
	// Search returns positions of matching articles. limit <= 0 means
	// unbounded.
	Search(query string, limit int) ([]int, error)
}

// Engine names accepted in configuration.
const (
	EngineSubstring = "substring"
	EngineBleve     = "bleve"
)
