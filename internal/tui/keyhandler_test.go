package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeck/newsdeck/internal/config"
)

func TestKeyHandlerInitialized(t *testing.T) {
	app := newTestApp(t)
	require.NotNil(t, app.keyHandler)
	assert.Equal(t, "q", app.keyHandler.keys.Quit)
	assert.Equal(t, "/", app.keyHandler.keys.Search)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		keyRune('q'),
		{Type: tea.KeyCtrlC},
	} {
		app := newTestApp(t)
		app = loadArticles(t, app, testArticles())

		_, cmd := app.Update(key)
		require.NotNil(t, cmd, "quit key %q should produce a command", key.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestQuitKeyTypesIntoFocusedSearch(t *testing.T) {
	app := newTestApp(t)
	app = loadArticles(t, app, testArticles())

	updatedModel, _ := app.Update(keyRune('/'))
	app = updatedModel.(*App)
	require.True(t, app.searchInput.Focused())

	updatedModel, cmd := app.Update(keyRune('q'))
	app = updatedModel.(*App)

	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd(), "'q' must type into the search box, not quit")
	}
	assert.Equal(t, "q", app.searchInput.Value())
}

func TestEnterLeavesSearchFocusAndKeepsQuery(t *testing.T) {
	app := newTestApp(t)
	app = loadArticles(t, app, testArticles())

	updatedModel, _ := app.Update(keyRune('/'))
	app = updatedModel.(*App)
	for _, r := range "markets" {
		updatedModel, _ = app.Update(keyRune(r))
		app = updatedModel.(*App)
	}

	updatedModel, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = updatedModel.(*App)

	assert.False(t, app.searchInput.Focused())
	assert.Equal(t, "markets", app.searchInput.Value())
	assert.Len(t, app.filtered, 1)
}

func TestCustomKeyBindings(t *testing.T) {
	cfg := config.TestConfig()
	cfg.Keys.Bindings.Chart = "g"

	app, err := NewApp(cfg)
	require.NoError(t, err)
	updatedModel, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = updatedModel.(*App)
	app = loadArticles(t, app, testArticles())

	updatedModel, _ = app.Update(keyRune('g'))
	app = updatedModel.(*App)
	assert.Equal(t, ViewChart, app.view)

	// The default binding no longer applies.
	app.view = ViewDashboard
	updatedModel, _ = app.Update(keyRune('c'))
	app = updatedModel.(*App)
	assert.Equal(t, ViewDashboard, app.view)
}

func TestNavigateBackClearsSearchBeforeAnythingElse(t *testing.T) {
	app := newTestApp(t)
	app = loadArticles(t, app, testArticles())

	updatedModel, _ := app.Update(keyRune('/'))
	app = updatedModel.(*App)
	for _, r := range "stadium" {
		updatedModel, _ = app.Update(keyRune(r))
		app = updatedModel.(*App)
	}
	updatedModel, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = updatedModel.(*App)
	require.Equal(t, "stadium", app.searchInput.Value())

	updatedModel, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = updatedModel.(*App)
	assert.Empty(t, app.searchInput.Value())
	assert.Equal(t, ViewDashboard, app.view)
	assert.Len(t, app.filtered, 3)
}

func TestShareEnterReturnsToPreviousView(t *testing.T) {
	app := newTestApp(t)
	app = loadArticles(t, app, testArticles())

	updatedModel, _ := app.Update(keyRune('s'))
	app = updatedModel.(*App)
	require.Equal(t, ViewShare, app.view)
	require.GreaterOrEqual(t, app.shareTarget, 0)

	// Move to the copy entry; selecting it shares and leaves the menu.
	for i := 0; i < 4; i++ {
		updatedModel, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
		app = updatedModel.(*App)
	}
	updatedModel, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = updatedModel.(*App)

	assert.Equal(t, ViewDashboard, app.view)
	assert.Equal(t, -1, app.shareTarget)
	assert.NotNil(t, cmd)
	assert.Equal(t, "Link copied to clipboard!", app.toast)
}

func TestGetHelpForCurrentView(t *testing.T) {
	app := newTestApp(t)
	app = loadArticles(t, app, testArticles())

	tests := []struct {
		view View
		want string
	}{
		{ViewDashboard, "search"},
		{ViewChart, "back"},
		{ViewReader, "read more"},
		{ViewShare, "share"},
	}

	for _, tt := range tests {
		app.view = tt.view
		help := strings.Join(app.keyHandler.GetHelpForCurrentView(), " ")
		assert.Contains(t, help, tt.want, "help for view %v", tt.view)
	}
}
