package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"etfdash/internal/api"
	"etfdash/internal/session"
	"etfdash/internal/theme"
)

type page int

const (
	pageDashboard page = iota
	pageRankings
	pageSearch
	pageThemes
	pageWatchlist
	pageLogin
	pageDetail
)

type Model struct {
	client *api.Client
	sess   *session.Store
	log    zerolog.Logger

	page     page
	prevPage page

	dashboard dashboardModel
	rankings  rankingsModel
	search    searchModel
	themes    themesModel
	watchlist watchlistModel
	login     loginModel
	detail    detailModel

	// UI state
	width    int
	height   int
	maxWidth int
	ready    bool

	viewport viewport.Model
	spin     spinner.Model
}

// mountMsg kicks off the first page load once the program is running.
type mountMsg struct{}

// userRefreshMsg carries the re-fetched account record after login, so
// the stored user picks up server-side fields like the watchlist count.
type userRefreshMsg struct {
	resp api.UserResponse
	err  error
}

func NewModel(client *api.Client, sess *session.Store, log zerolog.Logger, maxWidth int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Default.Primary)

	return Model{
		client:   client,
		sess:     sess,
		log:      log.With().Str("component", "ui").Logger(),
		search:   newSearchModel(),
		login:    newLoginModel(),
		maxWidth: maxWidth,
		spin:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg { return mountMsg{} },
	)
}

// openPage mounts a top-level page. The session is re-read from the
// bridge on every mount so an out-of-band change is picked up no later
// than the next navigation.
func (m Model) openPage(p page) (Model, tea.Cmd) {
	state := m.sess.Load()

	m.prevPage = m.page
	m.page = p

	var cmd tea.Cmd
	switch p {
	case pageDashboard:
		m.dashboard, cmd = m.dashboard.load(m.client)
	case pageRankings:
		m.rankings, cmd = m.rankings.load(m.client)
	case pageSearch:
		m.search, cmd = m.search.mount("", m.client)
	case pageThemes:
		m.themes, cmd = m.themes.load(m.client)
	case pageWatchlist:
		m.watchlist, cmd = m.watchlist.load(m.client, state)
	case pageLogin:
		m.login = newLoginModel()
		cmd = nil
	}
	return m, cmd
}

// openDetail pushes the detail page for one instrument.
func (m Model) openDetail(isin string) (Model, tea.Cmd) {
	m.prevPage = m.page
	m.page = pageDetail
	var cmd tea.Cmd
	m.detail, cmd = m.detail.load(isin, m.client)
	return m, cmd
}

// openSearch pushes the search page seeded with a keyword, firing the
// search immediately.
func (m Model) openSearch(keyword string) (Model, tea.Cmd) {
	m.prevPage = m.page
	m.page = pageSearch
	var cmd tea.Cmd
	m.search, cmd = m.search.mount(keyword, m.client)
	return m, cmd
}

func refreshUser(c *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.GetUser(context.Background(), id)
		return userRefreshMsg{resp: resp, err: err}
	}
}
