package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etfdash/internal/api"
	"etfdash/internal/session"
)

func loggedInState() session.State {
	return session.LoggedIn(&api.User{ID: 42, Username: "hong"})
}

func watchlistFixture() []api.WatchlistItem {
	return []api.WatchlistItem{
		{ID: 1, UserID: 42, IsinCd: "KR7001", EtfInfo: &api.EtfInfo{ItmsNm: "KODEX 200", SrtnCd: "069500", ClosePrice: 35000, FltRt: 1.0}},
		{ID: 2, UserID: 42, IsinCd: "KR7002", EtfInfo: &api.EtfInfo{ItmsNm: "TIGER 나스닥", SrtnCd: "133690", ClosePrice: 90000, FltRt: -0.5}},
	}
}

func TestWatchlist_LoggedOutSkipsFetch(t *testing.T) {
	w, cmd := watchlistModel{}.load(nil, session.LoggedOut())
	assert.Nil(t, cmd)
	assert.Equal(t, stateSuccess, w.state)
	assert.False(t, w.loggedIn)
}

func TestWatchlist_LoggedInFetchesBoth(t *testing.T) {
	w, cmd := watchlistModel{}.load(nil, loggedInState())
	assert.Equal(t, stateLoading, w.state)
	assert.True(t, w.loggedIn)
	assert.Equal(t, int64(42), w.userID)
	require.NotNil(t, cmd)
}

func TestWatchlist_SettlesOnlyAfterBothResponses(t *testing.T) {
	w, _ := watchlistModel{}.load(nil, loggedInState())

	w = w.updateItems(watchlistMsg{gen: w.gen, resp: api.WatchlistResponse{
		Success: true,
		Data:    watchlistFixture(),
	}})
	assert.Equal(t, stateLoading, w.state)

	w = w.updatePopular(popularMsg{gen: w.gen, resp: api.PopularResponse{
		Success: true,
		Data:    []api.PopularEtf{{IsinCd: "KR7001", EtfName: "KODEX 200", LikeCount: 12}},
	}})
	assert.Equal(t, stateSuccess, w.state)
	assert.Len(t, w.items, 2)
	assert.Len(t, w.popular, 1)
}

func TestWatchlist_OneFailureFailsWholePage(t *testing.T) {
	w, _ := watchlistModel{}.load(nil, loggedInState())

	w = w.updateItems(watchlistMsg{gen: w.gen, resp: api.WatchlistResponse{
		Success: true,
		Data:    watchlistFixture(),
	}})
	w = w.updatePopular(popularMsg{gen: w.gen, err: assert.AnError})

	assert.Equal(t, stateError, w.state)
}

func TestWatchlist_StaleResponsesDiscarded(t *testing.T) {
	w, _ := watchlistModel{}.load(nil, loggedInState())
	staleGen := w.gen
	w, _ = w.load(nil, loggedInState())

	w = w.updateItems(watchlistMsg{gen: staleGen, err: assert.AnError})
	w = w.updatePopular(popularMsg{gen: staleGen, err: assert.AnError})
	assert.Equal(t, stateLoading, w.state)
}

func settledWatchlist(t *testing.T) watchlistModel {
	t.Helper()
	w, _ := watchlistModel{}.load(nil, loggedInState())
	w = w.updateItems(watchlistMsg{gen: w.gen, resp: api.WatchlistResponse{Success: true, Data: watchlistFixture()}})
	w = w.updatePopular(popularMsg{gen: w.gen, resp: api.PopularResponse{Success: true}})
	require.Equal(t, stateSuccess, w.state)
	return w
}

func TestWatchlist_RemoveFiltersLocally(t *testing.T) {
	w := settledWatchlist(t)

	w, cmd := w.remove(nil)
	require.NotNil(t, cmd)

	w = w.updateRemove(removeMsg{gen: w.gen, id: 1, resp: api.RemoveWatchlistResponse{Success: true}})
	require.Len(t, w.items, 1)
	assert.Equal(t, int64(2), w.items[0].ID)
	assert.Equal(t, "관심종목에서 삭제되었습니다.", w.toast)
}

func TestWatchlist_RemoveFailureKeepsItems(t *testing.T) {
	w := settledWatchlist(t)

	w, _ = w.remove(nil)
	w = w.updateRemove(removeMsg{gen: w.gen, id: 1, err: assert.AnError})

	assert.Len(t, w.items, 2)
	assert.NotEmpty(t, w.toast)
}

func TestWatchlist_RemoveClampsCursor(t *testing.T) {
	w := settledWatchlist(t)
	w.cursor = 1

	w, _ = w.remove(nil)
	w = w.updateRemove(removeMsg{gen: w.gen, id: 2, resp: api.RemoveWatchlistResponse{Success: true}})

	assert.Equal(t, 0, w.cursor)
}

func TestWatchlist_SectionSwitchAndSelection(t *testing.T) {
	w := settledWatchlist(t)
	w.popular = []api.PopularEtf{{IsinCd: "KR7009", EtfName: "인기 ETF", LikeCount: 3}}

	assert.Equal(t, "KR7001", w.selectedIsin())

	w = w.switchSection()
	assert.Equal(t, sectionPopular, w.section)
	assert.Equal(t, "KR7009", w.selectedIsin())

	w = w.switchSection()
	assert.Equal(t, sectionItems, w.section)
}

func TestWatchlist_AddRequiresLogin(t *testing.T) {
	w := watchlistModel{}
	w, cmd := w.add("KR7001", nil)
	assert.Nil(t, cmd)
}

func TestWatchlist_StatsPanelDoesNotGatePage(t *testing.T) {
	w := settledWatchlist(t)

	w, cmd := w.toggleStats(nil)
	require.NotNil(t, cmd)
	assert.True(t, w.statsOpen)
	assert.Equal(t, stateSuccess, w.state)

	// A stats failure only marks the panel, never the page.
	w = w.updateStats(statsMsg{gen: w.gen, err: assert.AnError})
	assert.True(t, w.statsErr)
	assert.Equal(t, stateSuccess, w.state)

	w, cmd = w.toggleStats(nil)
	assert.Nil(t, cmd)
	assert.False(t, w.statsOpen)
}

func TestWatchlist_StatsPopulates(t *testing.T) {
	w := settledWatchlist(t)
	w, _ = w.toggleStats(nil)

	w = w.updateStats(statsMsg{gen: w.gen, resp: api.StatisticsResponse{
		Success: true,
		Data:    &api.Statistics{TotalUsers: 10, TotalEtfs: 900, TotalWatchLists: 55},
	}})
	require.NotNil(t, w.stats)
	assert.Equal(t, int64(55), w.stats.TotalWatchLists)
}

func TestWatchlist_ViewLoggedOutPrompt(t *testing.T) {
	w, _ := watchlistModel{}.load(nil, session.LoggedOut())
	out := ansi.Strip(w.view(120, ""))
	assert.Contains(t, out, "로그인이 필요합니다")
}

func TestWatchlist_ViewRendersItemsAndPopular(t *testing.T) {
	w := settledWatchlist(t)
	w.popular = []api.PopularEtf{{IsinCd: "KR7001", EtfName: "KODEX 200", LikeCount: 12}}

	out := ansi.Strip(w.view(120, ""))
	assert.Contains(t, out, "내 관심종목")
	assert.Contains(t, out, "2개")
	assert.Contains(t, out, "TIGER 나스닥")
	assert.Contains(t, out, "인기 ETF Top 5")
	assert.Contains(t, out, "♥ 12")
}
