package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/newsdeck/newsdeck/internal/news"
)

// listSummaryLength bounds the summary line shown in the article list;
// the full card in the reader uses the configured summary length.
const listSummaryLength = 80

// cardItem adapts one article for the bubbles list. position indexes
// the full article collection so transient flags (bookmark, expanded
// summary) survive filtering.
type cardItem struct {
	article    news.Article
	position   int
	bookmarked bool
}

func (i cardItem) Title() string {
	marker := "  "
	if i.bookmarked {
		marker = BookmarkStyle.Render("★") + " "
	}

	kind := news.ClassifySentiment(i.article.Sentiment)
	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(kind.Color())).
		Render(kind.Icon())

	return marker + icon + " " + i.article.Title
}

func (i cardItem) Description() string {
	meta := i.article.Source + " • " + i.article.Topic
	if t := i.article.PublishedAt(); !t.IsZero() {
		meta += " • " + t.Format("Jan 2, 15:04")
	}

	return renderMuted(truncateEnd(i.article.Summary, listSummaryLength)) +
		TimeStyle.Render("  "+meta)
}

func (i cardItem) FilterValue() string { return i.article.Title }

// displaySummary returns the summary text for the card and whether the
// read-more toggle applies. Collapsed summaries show the first limit
// runes plus an ellipsis; toggling twice restores the original view.
func displaySummary(summary string, expanded bool, limit int) (string, bool) {
	r := []rune(summary)
	if len(r) <= limit {
		return summary, false
	}
	if expanded {
		return summary, true
	}
	return string(r[:limit]) + "…", true
}

// renderAvatar draws the publisher avatar: initials on the house color.
func renderAvatar(source string) string {
	initials := news.SourceInitials(source)
	if initials == "" {
		initials = "?"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(news.SourceColor(source))).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 1).
		Render(initials)
}

// renderSentimentBadge draws the colored sentiment label.
func renderSentimentBadge(score float64) string {
	kind := news.ClassifySentiment(score)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(kind.Color())).
		Bold(true).
		Render(kind.Icon() + " " + news.SentimentLabel(score))
}

// cardHeader renders the reader header line: avatar, source, sentiment
// badge, bookmark marker.
func cardHeader(a news.Article, bookmarked bool, width int) string {
	parts := []string{
		renderAvatar(a.Source),
		HeaderStyle.Render(truncateEnd(a.Source, width/3)),
		renderSentimentBadge(a.Sentiment),
	}
	if bookmarked {
		parts = append(parts, BookmarkStyle.Render("★"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

// cardMarkdown builds the reader body for the glamour renderer.
func cardMarkdown(a news.Article, expanded bool, limit int, readMoreKey string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", a.Title))

	meta := a.Topic
	if t := a.PublishedAt(); !t.IsZero() {
		meta += " • " + t.Format("Mon, 02 Jan 2006 15:04")
	}
	b.WriteString(fmt.Sprintf("*%s*\n\n", meta))

	if len(a.Entities.States) > 0 {
		b.WriteString(fmt.Sprintf("**Places:** %s\n\n", strings.Join(a.Entities.States, ", ")))
	}
	if len(a.Entities.People) > 0 {
		b.WriteString(fmt.Sprintf("**People:** %s\n\n", strings.Join(a.Entities.People, ", ")))
	}

	b.WriteString("---\n\n")

	summary, truncatable := displaySummary(a.Summary, expanded, limit)
	b.WriteString(summary)
	b.WriteString("\n\n")

	if truncatable {
		if expanded {
			b.WriteString(fmt.Sprintf("*Press %s to show less*\n\n", readMoreKey))
		} else {
			b.WriteString(fmt.Sprintf("*Press %s to read more*\n\n", readMoreKey))
		}
	}

	if a.URL != "" {
		b.WriteString(fmt.Sprintf("[Read Online](%s)\n", a.URL))
	}

	return b.String()
}
