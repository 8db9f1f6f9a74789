package share

import (
	"github.com/atotto/clipboard"

	"github.com/newsdeck/newsdeck/internal/debuglog"
	"github.com/newsdeck/newsdeck/internal/news"
)

// CopyNotice is the toast shown after a copy attempt. Success and
// failure surface the same notice; failures are only logged.
const CopyNotice = "Link copied to clipboard!"

// CopyLink writes the article's share link to the system clipboard and
// returns the toast text to display.
func CopyLink(a news.Article, pageURL string) string {
	link := Link(a, pageURL)
	if err := clipboard.WriteAll(link); err != nil {
		debuglog.Warnf("clipboard write failed for %s: %v", link, err)
	}
	return CopyNotice
}
