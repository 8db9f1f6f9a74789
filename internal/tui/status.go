package tui

import "fmt"

// Canonical short status messages used across the dashboard.
const (
	MsgLoading      = "Loading news…"
	MsgNoArticles   = "No news articles found"
	MsgErrorTitle   = "Error Loading News"
	MsgRetryLater   = "Please try again later."
	MsgBookmarked   = "Bookmarked"
	MsgUnbookmarked = "Bookmark removed"
)

func MsgArticleCount(n int) string {
	if n == 1 {
		return "1 article"
	}
	return fmt.Sprintf("%d articles", n)
}
