package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsdeck/newsdeck/internal/config"
	"github.com/newsdeck/newsdeck/internal/share"
)

// KeyHandler routes key presses by view, with the bindings taken from
// configuration.
type KeyHandler struct {
	app  *App
	keys config.KeyBindings
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, keys: cfg.Keys.Bindings}
}

func (h *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// While the search box is focused every printable key belongs to
	// it; only escape and enter leave input mode.
	if a.view == ViewDashboard && a.searchInput.Focused() {
		return h.handleSearchInput(msg)
	}

	if key == h.keys.Quit {
		return a, tea.Quit
	}
	if key == h.keys.Back {
		return h.navigateBack()
	}

	switch a.view {
	case ViewDashboard:
		return h.handleDashboardKeys(msg)
	case ViewChart:
		return h.handleChartKeys(msg)
	case ViewReader:
		return h.handleReaderKeys(msg)
	case ViewShare:
		return h.handleShareKeys(msg)
	}

	return a, nil
}

func (h *KeyHandler) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app

	switch msg.String() {
	case "esc":
		a.searchInput.Blur()
		a.searchInput.SetValue("")
		a.refreshDerived()
		return a, nil
	case "enter":
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	before := a.searchInput.Value()
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.refreshDerived()
	}
	return a, cmd
}

func (h *KeyHandler) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app

	switch msg.String() {
	case h.keys.Search:
		a.searchInput.Focus()
		return a, nil

	case h.keys.Chart:
		a.previousView = a.view
		a.view = ViewChart
		return a, nil

	case h.keys.CycleTopic:
		a.topicIdx = (a.topicIdx + 1) % (len(a.topics) + 1)
		a.refreshDerived()
		return a, nil

	case h.keys.CycleSource:
		a.sourceIdx = (a.sourceIdx + 1) % (len(a.sources) + 1)
		a.refreshDerived()
		return a, nil

	case h.keys.Bookmark:
		return a, a.toggleBookmark(a.selectedPosition())

	case h.keys.Share:
		if pos := a.selectedPosition(); pos >= 0 {
			a.shareTarget = pos
			a.shareCursor = 0
			a.previousView = a.view
			a.view = ViewShare
		}
		return a, nil

	case h.keys.Open:
		return a, a.openArticle(a.selectedPosition())

	case h.keys.ReadMore:
		if pos := a.selectedPosition(); pos >= 0 {
			a.expanded[pos] = !a.expanded[pos]
			a.refreshDerived()
		}
		return a, nil

	case "enter":
		if pos := a.selectedPosition(); pos >= 0 {
			a.current = pos
			a.previousView = a.view
			a.view = ViewReader
			return a, a.renderArticle(pos)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.articleList, cmd = a.articleList.Update(msg)
	return a, cmd
}

func (h *KeyHandler) handleChartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app

	switch msg.String() {
	case h.keys.Chart, "enter":
		return h.navigateBack()
	}

	return a, nil
}

func (h *KeyHandler) handleReaderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app

	switch msg.String() {
	case h.keys.Bookmark:
		return a, a.toggleBookmark(a.current)

	case h.keys.Share:
		if a.current >= 0 {
			a.shareTarget = a.current
			a.shareCursor = 0
			a.previousView = a.view
			a.view = ViewShare
		}
		return a, nil

	case h.keys.Open:
		return a, a.openArticle(a.current)

	case h.keys.ReadMore:
		if a.current >= 0 {
			a.expanded[a.current] = !a.expanded[a.current]
			a.refreshDerived()
			return a, a.renderArticle(a.current)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (h *KeyHandler) handleShareKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := h.app

	switch msg.String() {
	case "up", "k":
		if a.shareCursor > 0 {
			a.shareCursor--
		}
		return a, nil

	case "down", "j":
		if a.shareCursor < len(share.Platforms)-1 {
			a.shareCursor++
		}
		return a, nil

	case "enter":
		platform := share.Platforms[a.shareCursor]
		cmd := a.shareArticle(platform)
		a.view = a.previousView
		a.shareTarget = -1
		return a, cmd
	}

	return a, nil
}

func (h *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	a := h.app

	switch a.view {
	case ViewDashboard:
		// A populated search box clears before the app quits on back.
		if a.searchInput.Value() != "" {
			a.searchInput.SetValue("")
			a.refreshDerived()
			return a, nil
		}
		return a, nil

	case ViewShare:
		a.shareTarget = -1
		a.view = a.previousView
		return a, nil

	case ViewReader:
		a.current = -1
		a.view = ViewDashboard
		return a, nil

	case ViewChart:
		a.view = ViewDashboard
		return a, nil
	}

	a.view = ViewDashboard
	return a, nil
}

// GetHelpForCurrentView returns the status-bar key hints for the
// active view.
func (h *KeyHandler) GetHelpForCurrentView() []string {
	switch h.app.view {
	case ViewDashboard:
		return []string{
			fmt.Sprintf("%s: search", h.keys.Search),
			fmt.Sprintf("%s: topic", h.keys.CycleTopic),
			fmt.Sprintf("%s: source", h.keys.CycleSource),
			fmt.Sprintf("%s: chart", h.keys.Chart),
			fmt.Sprintf("%s: bookmark", h.keys.Bookmark),
			fmt.Sprintf("%s: share", h.keys.Share),
			"enter: read",
			fmt.Sprintf("%s: quit", h.keys.Quit),
		}
	case ViewChart:
		return []string{
			fmt.Sprintf("%s: back", h.keys.Back),
			fmt.Sprintf("%s: quit", h.keys.Quit),
		}
	case ViewReader:
		return []string{
			fmt.Sprintf("%s: read more", h.keys.ReadMore),
			fmt.Sprintf("%s: bookmark", h.keys.Bookmark),
			fmt.Sprintf("%s: share", h.keys.Share),
			fmt.Sprintf("%s: open", h.keys.Open),
			fmt.Sprintf("%s: back", h.keys.Back),
		}
	case ViewShare:
		return []string{"↑↓: choose", "enter: share", fmt.Sprintf("%s: cancel", h.keys.Back)}
	}
	return nil
}
