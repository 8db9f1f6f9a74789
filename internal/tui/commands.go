package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsdeck/newsdeck/internal/debuglog"
	"github.com/newsdeck/newsdeck/internal/share"
)

// fetchNews loads the article collection from the configured endpoint.
// The captured seq ties the response to the fetch generation that
// issued it.
func (a *App) fetchNews() tea.Cmd {
	seq := a.fetchSeq
	client := a.client
	timeout := a.config.API.HTTPTimeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		articles, err := client.Fetch(ctx)
		if err != nil {
			debuglog.Errorf("fetch failed: %v", err)
			return newsErrorMsg{seq: seq, err: err}
		}

		debuglog.Infof("fetched %d articles", len(articles))
		return newsLoadedMsg{seq: seq, articles: articles}
	}
}

// showToast displays a transient status message that clears itself
// after the configured duration. A newer toast supersedes the pending
// clear of an older one.
func (a *App) showToast(text string) tea.Cmd {
	a.toast = text
	a.err = nil
	a.toastSeq++
	seq := a.toastSeq

	return tea.Tick(a.config.UI.ToastDuration, func(t time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}

func (a *App) shareArticle(platform share.Platform) tea.Cmd {
	if a.shareTarget < 0 || a.shareTarget >= len(a.articles) {
		return nil
	}
	article := a.articles[a.shareTarget]

	if platform == share.PlatformCopy {
		notice := share.CopyLink(article, a.config.UI.PageURL)
		return a.showToast(notice)
	}

	shareURL, err := share.BuildURL(platform, article, a.config.UI.PageURL)
	if err != nil {
		return func() tea.Msg { return errorMsg{err: wrapErr("share", err)} }
	}

	opener := a.opener
	return func() tea.Msg {
		if err := opener.Open(shareURL); err != nil {
			return errorMsg{err: wrapErr("opening share link", err)}
		}
		return nil
	}
}

// renderArticle produces the reader content for the article at pos.
// Glamour rendering is slow enough to keep off the update path.
func (a *App) renderArticle(pos int) tea.Cmd {
	if pos < 0 || pos >= len(a.articles) {
		return nil
	}

	renderer, err := a.getRenderer()
	if err != nil {
		return func() tea.Msg { return errorMsg{err: wrapErr("creating renderer", err)} }
	}

	markdown := cardMarkdown(
		a.articles[pos],
		a.expanded[pos],
		a.config.UI.SummaryLength,
		a.config.Keys.Bindings.ReadMore,
	)

	return func() tea.Msg {
		content, err := renderer.Render(markdown)
		if err != nil {
			return errorMsg{err: wrapErr("rendering article", err)}
		}
		return articleRenderedMsg{content: content}
	}
}

func (a *App) openArticle(pos int) tea.Cmd {
	if pos < 0 || pos >= len(a.articles) {
		return nil
	}

	rawURL := a.articles[pos].URL
	if rawURL == "" {
		return func() tea.Msg { return errorMsg{err: wrapErr("open", errNoArticleURL)} }
	}

	normalized, err := a.validator.ValidateAndNormalize(rawURL)
	if err != nil {
		return func() tea.Msg { return errorMsg{err: wrapErr("invalid article URL", err)} }
	}

	opener := a.opener
	return func() tea.Msg {
		if err := opener.Open(normalized); err != nil {
			return errorMsg{err: wrapErr("opening article", err)}
		}
		return nil
	}
}

// toggleBookmark flips the in-memory bookmark flag for the article at
// pos and returns the toast confirming the new state.
func (a *App) toggleBookmark(pos int) tea.Cmd {
	if pos < 0 || pos >= len(a.articles) {
		return nil
	}

	a.bookmarked[pos] = !a.bookmarked[pos]
	a.refreshDerived()

	if a.bookmarked[pos] {
		return a.showToast(MsgBookmarked)
	}
	return a.showToast(MsgUnbookmarked)
}
