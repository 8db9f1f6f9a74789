package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleArticles() []Article {
	return []Article{
		{
			Title:     "Election results announced",
			Summary:   "The ruling party secured a majority.",
			Topic:     "Politics",
			Sentiment: 0.2,
			Source:    "NDTV",
			Entities: Entities{
				States: []string{"Maharashtra", "Kerala"},
				People: []string{"Anil Sharma"},
			},
		},
		{
			Title:     "Stock markets rally",
			Summary:   "Benchmark indices hit record highs.",
			Topic:     "Business",
			Sentiment: 0.7,
			Source:    "Reuters",
			Entities: Entities{
				States: []string{"Mumbai"},
				People: []string{"Priya Nair"},
			},
		},
		{
			Title:     "Monsoon floods displace thousands",
			Summary:   "Rescue operations continue in coastal districts.",
			Topic:     "Weather",
			Sentiment: -0.6,
			Source:    "NDTV",
			Entities: Entities{
				States: []string{"Kerala"},
				People: nil,
			},
		},
		{
			Title:     "Championship final tonight",
			Summary:   "Two rivals meet for the trophy.",
			Topic:     "Sports",
			Sentiment: 0.5,
			Source:    "BBC News",
			Entities:  Entities{},
		},
	}
}

func TestFilter_Identity(t *testing.T) {
	articles := sampleArticles()

	// all/all/"" must equal the full input set
	out := Filter{Topic: FilterAll, Source: FilterAll, Query: ""}.Apply(articles)
	assert.Equal(t, articles, out)

	// zero-value filter behaves the same
	out = Filter{}.Apply(articles)
	assert.Equal(t, articles, out)
}

func TestFilter_Conjunction(t *testing.T) {
	articles := sampleArticles()

	tests := []struct {
		name   string
		filter Filter
		titles []string
	}{
		{
			name:   "topic only",
			filter: Filter{Topic: "Politics", Source: FilterAll},
			titles: []string{"Election results announced"},
		},
		{
			name:   "source only",
			filter: Filter{Topic: FilterAll, Source: "NDTV"},
			titles: []string{"Election results announced", "Monsoon floods displace thousands"},
		},
		{
			name:   "topic and source",
			filter: Filter{Topic: "Weather", Source: "NDTV"},
			titles: []string{"Monsoon floods displace thousands"},
		},
		{
			name:   "topic and source mismatch",
			filter: Filter{Topic: "Politics", Source: "Reuters"},
			titles: []string{},
		},
		{
			name:   "all three predicates",
			filter: Filter{Topic: "Politics", Source: "NDTV", Query: "majority"},
			titles: []string{"Election results announced"},
		},
		{
			name:   "query excludes within topic",
			filter: Filter{Topic: "Politics", Source: FilterAll, Query: "trophy"},
			titles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.filter.Apply(articles)
			titles := make([]string, 0, len(out))
			for _, a := range out {
				titles = append(titles, a.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestFilter_SearchFields(t *testing.T) {
	articles := sampleArticles()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "title match", query: "election", want: "Election results announced"},
		{name: "summary match", query: "record highs", want: "Stock markets rally"},
		{name: "topic match", query: "sports", want: "Championship final tonight"},
		{name: "source match", query: "reuters", want: "Stock markets rally"},
		{name: "state entity match", query: "mumbai", want: "Stock markets rally"},
		{name: "person entity match", query: "priya", want: "Stock markets rally"},
		{name: "mixed case", query: "ElEcTiOn", want: "Election results announced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Filter{Query: tt.query}.Apply(articles)
			if assert.NotEmpty(t, out) {
				assert.Equal(t, tt.want, out[0].Title)
			}
		})
	}

	out := Filter{Query: "nonexistent phrase"}.Apply(articles)
	assert.Empty(t, out)
}

func TestTopicsAndSources_FirstSeenOrder(t *testing.T) {
	articles := sampleArticles()

	assert.Equal(t, []string{"Politics", "Business", "Weather", "Sports"}, Topics(articles))
	assert.Equal(t, []string{"NDTV", "Reuters", "BBC News"}, Sources(articles))

	// no duplicates even with repeated values
	doubled := append(sampleArticles(), sampleArticles()...)
	assert.Equal(t, Topics(articles), Topics(doubled))
	assert.Equal(t, Sources(articles), Sources(doubled))
}

func TestTopicCounts(t *testing.T) {
	articles := append(sampleArticles(), Article{Title: "More politics", Topic: "Politics", Source: "CNN"})

	counts := TopicCounts(articles)
	assert.Equal(t, []TopicCount{
		{Topic: "Politics", Count: 2},
		{Topic: "Business", Count: 1},
		{Topic: "Weather", Count: 1},
		{Topic: "Sports", Count: 1},
	}, counts)

	total := 0
	for _, tc := range counts {
		total += tc.Count
	}
	assert.Equal(t, len(articles), total)
}

func TestTopicCounts_Empty(t *testing.T) {
	assert.Empty(t, TopicCounts(nil))
}
