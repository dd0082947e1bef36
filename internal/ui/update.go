package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"etfdash/internal/api"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.maxWidth > 0 && m.width > m.maxWidth {
			m.width = m.maxWidth
		}
		m.viewport = viewport.New(m.width, max(m.height-chromeHeight, 1))
		m.ready = true

	case mountMsg:
		var cmd tea.Cmd
		m, cmd = m.openPage(pageDashboard)
		cmds = append(cmds, cmd)

	case tea.FocusMsg:
		// The terminal regained focus; another process may have changed
		// the session file in the meantime.
		state := m.sess.Load()
		if m.page == pageWatchlist {
			var cmd tea.Cmd
			m.watchlist, cmd = m.watchlist.load(m.client, state)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	case debounceMsg:
		var cmd tea.Cmd
		m.search, cmd = m.search.onDebounce(msg, m.client)
		cmds = append(cmds, cmd)

	case dashboardMsg:
		m.dashboard = m.dashboard.update(msg)

	case rankingsMsg:
		m.rankings = m.rankings.update(msg)

	case searchMsg:
		m.search = m.search.update(msg)

	case themesMsg:
		m.themes = m.themes.update(msg)

	case detailMsg:
		m.detail = m.detail.update(msg)

	case loginMsg:
		var account *api.User
		m.login, account = m.login.updateLogin(msg)
		if account != nil {
			m.sess.Login(account)
			var cmd tea.Cmd
			m, cmd = m.openPage(pageDashboard)
			cmds = append(cmds, cmd, refreshUser(m.client, account.ID))
		}

	case registerMsg:
		m.login = m.login.updateRegister(msg)

	case userRefreshMsg:
		if msg.err == nil && msg.resp.Success {
			if account := msg.resp.Account(); account != nil {
				m.sess.Login(account)
			}
		}

	case watchlistMsg:
		m.watchlist = m.watchlist.updateItems(msg)

	case popularMsg:
		m.watchlist = m.watchlist.updatePopular(msg)

	case removeMsg:
		m.watchlist = m.watchlist.updateRemove(msg)

	case addMsg:
		var cmd tea.Cmd
		m.watchlist, cmd = m.watchlist.updateAdd(msg, m.client, m.sess.Current())
		cmds = append(cmds, cmd)

	case statsMsg:
		m.watchlist = m.watchlist.updateStats(msg)
	}

	if m.ready {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(keyMsg, keys.PageUp) || key.Matches(keyMsg, keys.PageDown) {
				var cmd tea.Cmd
				m.viewport, cmd = m.viewport.Update(keyMsg)
				cmds = append(cmds, cmd)
			}
		}
		m.viewport.SetContent(m.pageView())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Pages with an active text input swallow most keys.
	if m.page == pageLogin {
		return m.handleLoginKey(msg)
	}
	if m.page == pageSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		if m.page == pageDetail {
			m.page = m.prevPage
		}
		return m, nil

	case key.Matches(msg, keys.Dashboard):
		return m.openPage(pageDashboard)
	case key.Matches(msg, keys.Rankings):
		return m.openPage(pageRankings)
	case key.Matches(msg, keys.Search):
		return m.openPage(pageSearch)
	case key.Matches(msg, keys.Themes):
		return m.openPage(pageThemes)
	case key.Matches(msg, keys.Watchlist):
		return m.openPage(pageWatchlist)

	case key.Matches(msg, keys.Login):
		if !m.sess.Current().LoggedIn {
			return m.openPage(pageLogin)
		}
		return m, nil

	case key.Matches(msg, keys.Logout):
		if m.sess.Current().LoggedIn {
			m.sess.Logout()
			if m.page == pageWatchlist {
				var cmd tea.Cmd
				m.watchlist, cmd = m.watchlist.load(m.client, m.sess.Current())
				return m, cmd
			}
		}
		return m, nil

	case key.Matches(msg, keys.Retry):
		return m.retryPage()

	case key.Matches(msg, keys.Up):
		return m.moveCursor(-1), nil
	case key.Matches(msg, keys.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, keys.Select):
		return m.selectRow()

	case key.Matches(msg, keys.PrevTab):
		if m.page == pageRankings {
			var cmd tea.Cmd
			m.rankings, cmd = m.rankings.switchTab(-1, m.client)
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, keys.NextTab):
		if m.page == pageRankings {
			var cmd tea.Cmd
			m.rankings, cmd = m.rankings.switchTab(1, m.client)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, keys.Section):
		if m.page == pageWatchlist {
			m.watchlist = m.watchlist.switchSection()
		}
		return m, nil

	case key.Matches(msg, keys.Remove):
		if m.page == pageWatchlist {
			var cmd tea.Cmd
			m.watchlist, cmd = m.watchlist.remove(m.client)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, keys.Stats):
		if m.page == pageWatchlist {
			var cmd tea.Cmd
			m.watchlist, cmd = m.watchlist.toggleStats(m.client)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, keys.Add):
		return m.addToWatchlist()
	}

	return m, nil
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.page = m.prevPage
		return m, nil
	case key.Matches(msg, keys.SwitchForm):
		var cmd tea.Cmd
		m.login, cmd = m.login.toggleMode()
		return m, cmd
	case key.Matches(msg, keys.NextField):
		m.login = m.login.cycleFocus(1)
		return m, nil
	case key.Matches(msg, keys.PrevField):
		m.login = m.login.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, keys.Select):
		var cmd tea.Cmd
		m.login, cmd = m.login.submit(m.client)
		return m, cmd
	}
	var cmd tea.Cmd
	m.login, cmd = m.login.updateFields(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.page = m.prevPage
		return m, nil
	case msg.Type == tea.KeyUp:
		m.search = m.search.moveCursor(-1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.search = m.search.moveCursor(1)
		return m, nil
	case key.Matches(msg, keys.Select):
		// Enter opens the highlighted result when the settled results
		// still match the input; otherwise it submits immediately.
		settled := m.search.state == stateSuccess &&
			strings.TrimSpace(m.search.input.Value()) == m.search.keyword
		if settled {
			if sel := m.search.selected(); sel != nil {
				return m.openDetail(sel.IsinCd)
			}
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.submit(m.client)
		return m, cmd
	case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
		return m, nil
	}

	var inputCmd tea.Cmd
	m.search.input, inputCmd = m.search.input.Update(msg)
	var debCmd tea.Cmd
	m.search, debCmd = m.search.onInput()
	return m, tea.Batch(inputCmd, debCmd)
}

// addToWatchlist saves the instrument the user is looking at: the open
// detail page, or the highlighted popular entry on the watchlist page.
func (m Model) addToWatchlist() (Model, tea.Cmd) {
	var isin string
	switch {
	case m.page == pageDetail && m.detail.etf != nil:
		isin = m.detail.etf.IsinCd
	case m.page == pageWatchlist && m.watchlist.section == sectionPopular:
		isin = m.watchlist.selectedIsin()
	}
	if isin == "" {
		return m, nil
	}

	state := m.sess.Load()
	if !state.LoggedIn {
		return m.openPage(pageLogin)
	}
	m.watchlist.loggedIn = true
	m.watchlist.userID = state.User.ID
	var cmd tea.Cmd
	m.watchlist, cmd = m.watchlist.add(isin, m.client)
	return m, cmd
}

// retryPage re-issues the current page's load. Pages that settled
// successfully only reload where a manual refresh makes sense
// (watchlist); the rest retry out of their error state.
func (m Model) retryPage() (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageDashboard:
		if m.dashboard.state == stateError {
			m.dashboard, cmd = m.dashboard.load(m.client)
		}
	case pageRankings:
		if m.rankings.state == stateError {
			m.rankings, cmd = m.rankings.load(m.client)
		}
	case pageThemes:
		if m.themes.state == stateError {
			m.themes, cmd = m.themes.load(m.client)
		}
	case pageDetail:
		if m.detail.state == stateError {
			m.detail, cmd = m.detail.retry(m.client)
		}
	case pageWatchlist:
		m.watchlist, cmd = m.watchlist.load(m.client, m.sess.Load())
	}
	return m, cmd
}

func (m Model) moveCursor(delta int) Model {
	switch m.page {
	case pageRankings:
		m.rankings = m.rankings.moveCursor(delta)
	case pageThemes:
		m.themes = m.themes.moveCursor(delta)
	case pageWatchlist:
		m.watchlist = m.watchlist.moveCursor(delta)
	}
	return m
}

func (m Model) selectRow() (Model, tea.Cmd) {
	switch m.page {
	case pageRankings:
		if sel := m.rankings.selected(); sel != nil {
			return m.openDetail(sel.IsinCd)
		}
	case pageThemes:
		if keyword := m.themes.selected(); keyword != "" {
			return m.openSearch(keyword)
		}
	case pageWatchlist:
		if isin := m.watchlist.selectedIsin(); isin != "" {
			return m.openDetail(isin)
		}
	}
	return m, nil
}
