package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etfdash/internal/api"
	"etfdash/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	bridge := session.NewBridge(filepath.Join(t.TempDir(), "session.json"), zerolog.Nop())
	sess := session.NewStore(bridge, zerolog.Nop())
	client := api.NewClient("http://127.0.0.1:0", zerolog.Nop())
	m := NewModel(client, sess, zerolog.Nop(), 0)

	// Size the window so the viewport exists.
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return mm.(Model)
}

func keyPress(m Model, s string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	mm, cmd := m.Update(msg)
	return mm.(Model), cmd
}

func TestModel_MountOpensDashboard(t *testing.T) {
	m := newTestModel(t)

	mm, cmd := m.Update(mountMsg{})
	m = mm.(Model)

	assert.Equal(t, pageDashboard, m.page)
	assert.Equal(t, stateLoading, m.dashboard.state)
	require.NotNil(t, cmd)
}

func TestModel_NumberKeysSwitchPages(t *testing.T) {
	m := newTestModel(t)

	m, cmd := keyPress(m, "2")
	assert.Equal(t, pageRankings, m.page)
	require.NotNil(t, cmd)

	m, _ = keyPress(m, "4")
	assert.Equal(t, pageThemes, m.page)

	m, _ = keyPress(m, "3")
	assert.Equal(t, pageSearch, m.page)
}

func TestModel_DetailBackReturnsToPreviousPage(t *testing.T) {
	m := newTestModel(t)
	m, _ = keyPress(m, "2")

	m, _ = m.openDetail("KR7069500007")
	assert.Equal(t, pageDetail, m.page)

	m, _ = keyPress(m, "esc")
	assert.Equal(t, pageRankings, m.page)
}

func TestModel_LoginKeyOnlyWhenLoggedOut(t *testing.T) {
	m := newTestModel(t)

	m, _ = keyPress(m, "l")
	assert.Equal(t, pageLogin, m.page)
}

func TestModel_LoginSuccessStoresSessionAndReturnsToDashboard(t *testing.T) {
	m := newTestModel(t)
	m, _ = keyPress(m, "l")
	m.login.fields[0].SetValue("hong")
	m.login.fields[1].SetValue("secret")
	m, _ = keyPress(m, "enter")

	mm, _ := m.Update(loginMsg{gen: m.login.gen, resp: api.UserResponse{
		Success: true,
		User:    &api.User{ID: 7, Username: "hong"},
	}})
	m = mm.(Model)

	assert.Equal(t, pageDashboard, m.page)
	state := m.sess.Current()
	require.True(t, state.LoggedIn)
	assert.Equal(t, "hong", state.User.Username)
}

func TestModel_LogoutClearsSession(t *testing.T) {
	m := newTestModel(t)
	m.sess.Login(&api.User{ID: 7, Username: "hong"})

	m, _ = keyPress(m, "x")
	assert.False(t, m.sess.Current().LoggedIn)
}

func TestModel_FocusReloadsSessionOnWatchlist(t *testing.T) {
	m := newTestModel(t)
	m, _ = keyPress(m, "5")
	assert.Equal(t, pageWatchlist, m.page)
	assert.False(t, m.watchlist.loggedIn)

	// A login lands in the session file while the terminal is unfocused.
	m.sess.Login(&api.User{ID: 7, Username: "hong"})

	mm, cmd := m.Update(tea.FocusMsg{})
	m = mm.(Model)
	assert.True(t, m.watchlist.loggedIn)
	require.NotNil(t, cmd)
}

func TestModel_WatchlistRendersLoggedOutOnHalfWrittenSession(t *testing.T) {
	bridge := session.NewBridge(filepath.Join(t.TempDir(), "session.json"), zerolog.Nop())
	// A login flag with no user record must fail closed.
	bridge.Set("isLoggedIn", true)
	sess := session.NewStore(bridge, zerolog.Nop())
	client := api.NewClient("http://127.0.0.1:0", zerolog.Nop())
	m := NewModel(client, sess, zerolog.Nop(), 0)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = mm.(Model)

	m, cmd := keyPress(m, "5")
	assert.Nil(t, cmd)
	assert.False(t, m.watchlist.loggedIn)

	out := ansi.Strip(m.watchlist.view(120, ""))
	assert.Contains(t, out, "로그인이 필요합니다")
}

func TestModel_OpenSearchSeedsKeyword(t *testing.T) {
	m := newTestModel(t)
	m, cmd := m.openSearch("반도체")

	assert.Equal(t, pageSearch, m.page)
	assert.Equal(t, stateLoading, m.search.state)
	assert.Equal(t, "반도체", m.search.keyword)
	require.NotNil(t, cmd)
}

func TestModel_NavShowsSessionState(t *testing.T) {
	m := newTestModel(t)

	out := ansi.Strip(m.navView())
	assert.Contains(t, out, "l 로그인")

	m.sess.Login(&api.User{ID: 7, Username: "hong"})
	out = ansi.Strip(m.navView())
	assert.Contains(t, out, "안녕하세요, hong님")
	assert.Contains(t, out, "x 로그아웃")
}

func TestModel_RankingsTabKeysReload(t *testing.T) {
	m := newTestModel(t)
	m, _ = keyPress(m, "2")
	firstGen := m.rankings.gen

	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = mm.(Model)
	assert.Equal(t, 1, m.rankings.tab)
	assert.Greater(t, m.rankings.gen, firstGen)
	require.NotNil(t, cmd)
}
