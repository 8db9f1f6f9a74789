package search

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/newsdeck/newsdeck/internal/news"
)

// Engine is the default search backend: case-insensitive substring
// matching across title, summary, topic, source, and both entity
// lists, preserving collection order. This is the dashboard's
// canonical search semantics; the bleve engine trades the guaranteed
// ordering for relevance ranking.
type Engine struct {
	articles []news.Article
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Index(articles []news.Article) error {
	e.articles = articles
	return nil
}

func (e *Engine) Search(query string, limit int) ([]int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []int{}, nil
	}

	f := news.Filter{Query: query}
	var out []int
	for i, a := range e.articles {
		if f.Matches(a) {
			out = append(out, i)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}

// NewSearcher builds the engine named in configuration.
func NewSearcher(engine string) (Searcher, error) {
	switch engine {
	case EngineSubstring, "":
		return NewEngine(), nil
	case EngineBleve:
		return NewBleveEngine()
	default:
		return nil, fmt.Errorf("unknown search engine %q", engine)
	}
}

// tokenize breaks a query into lowercase alphanumeric terms, skipping
// single characters.
func tokenize(text string) []string {
	var terms []string
	current := strings.Builder{}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			if term := current.String(); len(term) > 1 {
				terms = append(terms, term)
			}
			current.Reset()
		}
	}

	if current.Len() > 1 {
		terms = append(terms, current.String())
	}

	return terms
}
