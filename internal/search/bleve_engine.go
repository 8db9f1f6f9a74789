package search

import (
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/newsdeck/newsdeck/internal/news"
)

type bleveEngine struct {
	idx bleve.Index
}

// NewBleveEngine creates a memory-only ranked engine. Nothing touches
// disk; the index lives and dies with the dashboard run.
func NewBleveEngine() (Searcher, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &bleveEngine{idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = false
	title.IncludeTermVectors = true

	summary := bleve.NewTextFieldMapping()
	summary.Analyzer = standard.Name
	summary.Store = false

	short := bleve.NewTextFieldMapping()
	short.Analyzer = standard.Name
	short.Store = false

	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("summary", summary)
	dm.AddFieldMappingsAt("topic", short)
	dm.AddFieldMappingsAt("source", short)
	dm.AddFieldMappingsAt("states", short)
	dm.AddFieldMappingsAt("people", short)

	im.DefaultMapping = dm
	return im
}

func (b *bleveEngine) Index(articles []news.Article) error {
	batch := b.idx.NewBatch()
	for i, a := range articles {
		err := batch.Index(strconv.Itoa(i), map[string]any{
			"title":   a.Title,
			"summary": a.Summary,
			"topic":   a.Topic,
			"source":  a.Source,
			"states":  strings.Join(a.Entities.States, " "),
			"people":  strings.Join(a.Entities.People, " "),
		})
		if err != nil {
			return err
		}
	}
	return b.idx.Batch(batch)
}

// fieldBoosts mirrors the visual weight of each field on the card.
var fieldBoosts = []struct {
	field string
	boost float64
}{
	{"title", 4.0},
	{"summary", 2.0},
	{"topic", 1.5},
	{"source", 1.5},
	{"states", 1.0},
	{"people", 1.0},
}

func (b *bleveEngine) Search(query string, limit int) ([]int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []int{}, nil
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []int{}, nil
	}

	var qs []bleveQuery.Query
	for _, tok := range tokens {
		for _, fb := range fieldBoosts {
			qm := bleve.NewMatchQuery(tok)
			qm.SetField(fb.field)
			qm.SetBoost(fb.boost)
			qs = append(qs, qm)

			qp := bleve.NewPrefixQuery(strings.ToLower(tok))
			qp.SetField(fb.field)
			qp.SetBoost(fb.boost * 0.8)
			qs = append(qs, qp)
		}
	}

	if limit <= 0 {
		limit = 1000
	}

	q := bleve.NewDisjunctionQuery(qs...)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := b.idx.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(res.Hits))
	for _, h := range res.Hits {
		pos, err := strconv.Atoi(h.ID)
		if err != nil {
			continue
		}
		out = append(out, pos)
	}
	return out, nil
}
