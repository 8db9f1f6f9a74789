package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/newsdeck/newsdeck/internal/config"
	"github.com/newsdeck/newsdeck/internal/news"
	"github.com/newsdeck/newsdeck/internal/search"
	"github.com/newsdeck/newsdeck/internal/share"
	"github.com/newsdeck/newsdeck/internal/validation"
)

type App struct {
	config    *config.Config
	client    *news.Client
	searcher  search.Searcher
	opener    *share.Opener
	validator *validation.URLValidator

	keyHandler *KeyHandler

	articleList list.Model
	searchInput textinput.Model
	viewport    viewport.Model
	spin        spinner.Model

	view         View
	previousView View
	width        int
	height       int

	// fetch lifecycle; fetchSeq is the generation token that lets the
	// model discard responses from superseded fetches
	loading  bool
	fetchSeq int
	fetchErr error

	articles    []news.Article
	topics      []string
	sources     []string
	topicCounts []news.TopicCount
	filtered    []int // positions into articles

	// 0 selects the "all" wildcard; i>0 selects topics[i-1]/sources[i-1]
	topicIdx  int
	sourceIdx int

	// transient per-article flags, keyed by position; reset every run
	bookmarked map[int]bool
	expanded   map[int]bool

	current     int // article shown in the reader, -1 when none
	shareTarget int // article the share menu acts on
	shareCursor int

	toast    string
	toastSeq int
	err      error

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(cfg *config.Config) (*App, error) {
	searcher, err := search.NewSearcher(cfg.Search.Engine)
	if err != nil {
		return nil, fmt.Errorf("creating search engine: %w", err)
	}

	validator := validation.NewURLValidator()
	if cfg.API.Environment == config.EnvDevelopment {
		validator = validation.NewPermissiveURLValidator()
	}

	articleList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	articleList.Title = "› articles"
	articleList.SetShowStatusBar(false)
	articleList.SetFilteringEnabled(false)
	articleList.SetShowHelp(false)

	si := textinput.New()
	si.Placeholder = "Search title, summary, topic, source, entities…"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	vp := viewport.New(0, 0)

	app := &App{
		config:      cfg,
		client:      news.NewClient(cfg.API.Endpoint(), cfg.API.UserAgent, cfg.API.HTTPTimeout),
		searcher:    searcher,
		opener:      share.NewOpener(cfg.Share.Opener),
		validator:   validator,
		articleList: articleList,
		searchInput: si,
		spin:        sp,
		viewport:    vp,
		view:        ViewDashboard,
		loading:     true,
		bookmarked:  make(map[int]bool),
		expanded:    make(map[int]bool),
		current:     -1,
		shareTarget: -1,
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app, nil
}

func (a *App) Init() tea.Cmd {
	a.fetchSeq++
	return tea.Batch(
		a.spin.Tick,
		a.fetchNews(),
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Dashboard chrome: header, search frame, status bar
		listHeight := msg.Height - 9
		if listHeight < 5 {
			listHeight = 5
		}
		a.articleList.SetSize(msg.Width, listHeight)
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 6

		inputWidth := msg.Width - 8
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case newsLoadedMsg:
		if msg.seq != a.fetchSeq {
			break // superseded fetch; ignore
		}
		a.loading = false
		a.fetchErr = nil
		a.articles = msg.articles
		if err := a.searcher.Index(a.articles); err != nil {
			a.err = wrapErr("indexing articles", err)
		}
		a.refreshDerived()

	case newsErrorMsg:
		if msg.seq != a.fetchSeq {
			break
		}
		a.loading = false
		a.fetchErr = msg.err

	case articleRenderedMsg:
		if a.view == ViewReader {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
		}

	case toastClearMsg:
		if msg.seq == a.toastSeq {
			a.toast = ""
		}

	case errorMsg:
		a.err = msg.err
	}

	switch a.view {
	case ViewDashboard:
		newListModel, cmd := a.articleList.Update(msg)
		a.articleList = newListModel
		cmds = append(cmds, cmd)
	case ViewReader:
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

// refreshDerived recomputes everything derived from the article
// collection and the current filter/search state. Cheap at dashboard
// scale, so no memoization.
func (a *App) refreshDerived() {
	a.topics = news.Topics(a.articles)
	a.sources = news.Sources(a.articles)
	a.topicCounts = news.TopicCounts(a.articles)

	if a.topicIdx > len(a.topics) {
		a.topicIdx = 0
	}
	if a.sourceIdx > len(a.sources) {
		a.sourceIdx = 0
	}

	positions := a.queryPositions()
	f := news.Filter{Topic: a.selectedTopic(), Source: a.selectedSource()}
	a.filtered = a.filtered[:0]
	for _, pos := range positions {
		if pos < 0 || pos >= len(a.articles) {
			continue
		}
		if f.Matches(a.articles[pos]) {
			a.filtered = append(a.filtered, pos)
		}
	}

	items := make([]list.Item, len(a.filtered))
	for i, pos := range a.filtered {
		items[i] = cardItem{
			article:    a.articles[pos],
			position:   pos,
			bookmarked: a.bookmarked[pos],
		}
	}
	a.articleList.SetItems(items)
}

func (a *App) queryPositions() []int {
	query := strings.TrimSpace(a.searchInput.Value())
	if query == "" {
		all := make([]int, len(a.articles))
		for i := range a.articles {
			all[i] = i
		}
		return all
	}

	positions, err := a.searcher.Search(query, a.config.Search.Limit)
	if err != nil {
		a.err = wrapErr("search", err)
		return nil
	}
	return positions
}

func (a *App) selectedTopic() string {
	if a.topicIdx <= 0 || a.topicIdx > len(a.topics) {
		return news.FilterAll
	}
	return a.topics[a.topicIdx-1]
}

func (a *App) selectedSource() string {
	if a.sourceIdx <= 0 || a.sourceIdx > len(a.sources) {
		return news.FilterAll
	}
	return a.sources[a.sourceIdx-1]
}

// selectedPosition returns the collection position of the highlighted
// list entry, or -1.
func (a *App) selectedPosition() int {
	if item, ok := a.articleList.SelectedItem().(cardItem); ok {
		return item.position
	}
	return -1
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > a.config.UI.WordWrapMaxWidth {
		wordWrapWidth = a.config.UI.WordWrapMaxWidth
	}
	if wordWrapWidth < a.config.UI.WordWrapMinWidth {
		wordWrapWidth = a.config.UI.WordWrapMinWidth
	}
	if a.width > 0 && a.width < 50 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) View() string {
	var content string

	switch {
	case a.loading:
		content = renderCentered(a.width, a.height-3,
			lipgloss.JoinVertical(
				lipgloss.Center,
				GetWelcomeMessage(),
				"",
				a.spin.View()+" "+renderMuted(MsgLoading),
			))

	case a.fetchErr != nil:
		content = renderCentered(a.width, a.height-3,
			lipgloss.JoinVertical(
				lipgloss.Center,
				ErrorMessageStyle.Render("✗ "+MsgErrorTitle),
				"",
				lipgloss.NewStyle().Foreground(TextColor).Render(a.fetchErr.Error()),
				"",
				renderMuted(MsgRetryLater),
			))

	default:
		switch a.view {
		case ViewDashboard:
			content = a.dashboardView()
		case ViewChart:
			content = ContentWrapper(a.width, a.height-3).
				Padding(1, 2).
				Render(renderTopicChart(a.topicCounts, a.width-4))
		case ViewReader:
			content = a.readerView()
		case ViewShare:
			content = a.shareView()
		}
	}

	status := a.statusBar()
	if status != "" {
		separatorWidth := a.width - 2
		if separatorWidth < 0 {
			separatorWidth = 0
		}
		separator := SeparatorStyle.Render("─" + strings.Repeat("─", separatorWidth))
		return lipgloss.JoinVertical(lipgloss.Top, content, separator, status)
	}

	return content
}

func (a *App) dashboardView() string {
	subtitle := fmt.Sprintf("%s • topic: %s • source: %s",
		MsgArticleCount(len(a.filtered)), a.selectedTopic(), a.selectedSource())
	header := renderHeader("› "+AppName, subtitle, a.width)

	searchFrame := renderInputFrame(a.searchInput.View(), a.searchInput.Focused(), a.searchInput.Width)

	var body string
	if len(a.filtered) == 0 {
		body = renderCentered(a.width, a.articleList.Height(), renderMuted(MsgNoArticles))
	} else {
		body = a.articleList.View()
	}

	return ContentWrapper(a.width, a.height-3).Render(
		lipgloss.JoinVertical(lipgloss.Top, header, searchFrame, body),
	)
}

func (a *App) readerView() string {
	if a.current < 0 || a.current >= len(a.articles) {
		return renderCentered(a.width, a.height-3, renderMuted(MsgNoArticles))
	}
	article := a.articles[a.current]

	header := cardHeader(article, a.bookmarked[a.current], a.width)

	link := ""
	if article.URL != "" {
		link = TimeStyle.Render(truncateMiddle(article.URL, a.width-4))
	}

	return ContentWrapper(a.width, a.height-3).Render(
		lipgloss.JoinVertical(lipgloss.Top, header, link, a.viewport.View()),
	)
}

func (a *App) shareView() string {
	rows := []string{TitleStyle.Render("› share article"), ""}

	for i, p := range share.Platforms {
		label := p.Label()
		if i == a.shareCursor {
			label = lipgloss.NewStyle().
				Foreground(BackgroundColor).
				Background(AccentColor).
				Bold(true).
				Padding(0, 1).
				Render(label)
		} else {
			label = lipgloss.NewStyle().Padding(0, 1).Render(label)
		}
		rows = append(rows, label)
	}

	rows = append(rows, "", renderHelp("↑↓: choose • Enter: share • Esc: cancel"))

	return renderCentered(a.width, a.height-3,
		lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (a *App) statusBar() string {
	if a.toast != "" {
		return StatusBarStyle.Width(a.width).Render(ToastStyle.Render("✓ " + a.toast))
	}

	if a.err != nil {
		return StatusBarStyle.Width(a.width).Render(
			ErrorMessageStyle.Render(fmt.Sprintf("✗ %v", a.err)))
	}

	commands := a.keyHandler.GetHelpForCurrentView()
	if len(commands) == 0 {
		return ""
	}
	return StatusBarStyle.Width(a.width).Render(strings.Join(commands, " • "))
}

type newsLoadedMsg struct {
	seq      int
	articles []news.Article
}

type newsErrorMsg struct {
	seq int
	err error
}

type articleRenderedMsg struct {
	content string
}

type toastClearMsg struct {
	seq int
}

type errorMsg struct {
	err error
}
