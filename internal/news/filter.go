package news

import "strings"

// FilterAll is the wildcard value for the topic and source selectors.
const FilterAll = "all"

// Filter narrows the article collection. The three predicates are
// independent and combined as a conjunction; empty or "all" values
// match everything.
type Filter struct {
	Topic  string
	Source string
	Query  string
}

// Apply returns the articles satisfying the filter, preserving input
// order. The input slice is never mutated.
func (f Filter) Apply(articles []Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Matches reports whether one article satisfies all three predicates.
func (f Filter) Matches(a Article) bool {
	if !wildcard(f.Topic) && a.Topic != f.Topic {
		return false
	}
	if !wildcard(f.Source) && a.Source != f.Source {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	for _, field := range []string{a.Title, a.Summary, a.Topic, a.Source} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, state := range a.Entities.States {
		if strings.Contains(strings.ToLower(state), query) {
			return true
		}
	}
	for _, person := range a.Entities.People {
		if strings.Contains(strings.ToLower(person), query) {
			return true
		}
	}
	return false
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

// Topics returns the distinct topic values in first-seen order.
func Topics(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.Topic })
}

// Sources returns the distinct publisher names in first-seen order.
func Sources(articles []Article) []string {
	return distinct(articles, func(a Article) string { return a.Source })
}

func distinct(articles []Article, key func(Article) string) []string {
	seen := make(map[string]struct{}, len(articles))
	var out []string
	for _, a := range articles {
		k := key(a)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// TopicCount pairs a topic with the number of articles carrying it.
type TopicCount struct {
	Topic string
	Count int
}

// TopicCounts tallies articles per topic, ordered by first occurrence.
// Feeds the topic-distribution chart.
func TopicCounts(articles []Article) []TopicCount {
	counts := make(map[string]int, len(articles))
	for _, a := range articles {
		counts[a.Topic]++
	}

	topics := Topics(articles)
	out := make([]TopicCount, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicCount{Topic: t, Count: counts[t]})
	}
	return out
}
