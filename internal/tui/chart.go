package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/newsdeck/newsdeck/internal/news"
)

// renderTopicChart draws the topic distribution as horizontal bars, one
// row per topic in first-seen order. Counts are over the full article
// collection, independent of the active filters.
func renderTopicChart(counts []news.TopicCount, width int) string {
	if len(counts) == 0 {
		return renderMuted(MsgNoArticles)
	}

	total := 0
	maxCount := 0
	longestLabel := 0
	for _, tc := range counts {
		total += tc.Count
		if tc.Count > maxCount {
			maxCount = tc.Count
		}
		if n := len([]rune(tc.Topic)); n > longestLabel {
			longestLabel = n
		}
	}
	if longestLabel > 24 {
		longestLabel = 24
	}

	barWidth := width - longestLabel - 14
	if barWidth < 10 {
		barWidth = 10
	}

	rows := []string{
		HeaderStyle.Render("› topic distribution"),
		renderMuted(MsgArticleCount(total)),
		"",
	}

	for i, tc := range counts {
		bar := chartBar(tc.Count, maxCount, barWidth)
		color := BannerColors[i%len(BannerColors)]
		pct := (tc.Count*100 + total/2) / total

		rows = append(rows, fmt.Sprintf("%-*s %s %d (%d%%)",
			longestLabel,
			truncateEnd(tc.Topic, longestLabel),
			lipgloss.NewStyle().Foreground(color).Render(bar),
			tc.Count,
			pct,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

// chartBar scales a count against the largest one. A non-zero count
// always yields at least one cell.
func chartBar(count, maxCount, barWidth int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	cells := count * barWidth / maxCount
	if cells < 1 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}
