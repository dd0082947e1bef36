package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/api"
	"etfdash/internal/session"
	"etfdash/internal/theme"
)

type watchlistSection int

const (
	sectionItems watchlistSection = iota
	sectionPopular
)

type watchlistModel struct {
	state    pageState
	gen      int
	loggedIn bool
	userID   int64

	items   []api.WatchlistItem
	popular []api.PopularEtf

	// The page settles only after both fetches report back; one failure
	// fails the whole page.
	wlDone  bool
	popDone bool
	failed  bool

	section watchlistSection
	cursor  int
	toast   string

	statsOpen bool
	stats     *api.Statistics
	statsErr  bool

	errText string
}

type watchlistMsg struct {
	gen  int
	resp api.WatchlistResponse
	err  error
}

type popularMsg struct {
	gen  int
	resp api.PopularResponse
	err  error
}

type removeMsg struct {
	gen  int
	id   int64
	resp api.RemoveWatchlistResponse
	err  error
}

type addMsg struct {
	gen  int
	resp api.AddWatchlistResponse
	err  error
}

type statsMsg struct {
	gen  int
	resp api.StatisticsResponse
	err  error
}

// load refreshes the page. Without a session it renders the login
// prompt immediately and fetches nothing.
func (w watchlistModel) load(c *api.Client, state session.State) (watchlistModel, tea.Cmd) {
	w.toast = ""
	w.statsOpen = false
	w.stats = nil

	if !state.LoggedIn || state.User == nil {
		w.loggedIn = false
		w.userID = 0
		w.items = nil
		w.popular = nil
		w.state = stateSuccess
		return w, nil
	}

	w.loggedIn = true
	w.userID = state.User.ID
	w.gen++
	w.state = stateLoading
	w.wlDone = false
	w.popDone = false
	w.failed = false
	w.cursor = 0
	gen := w.gen
	userID := w.userID

	fetchItems := func() tea.Msg {
		resp, err := c.Watchlist(context.Background(), userID, true)
		return watchlistMsg{gen: gen, resp: resp, err: err}
	}
	fetchPopular := func() tea.Msg {
		resp, err := c.PopularEtfs(context.Background(), api.DefaultPopularLimit)
		return popularMsg{gen: gen, resp: resp, err: err}
	}
	return w, tea.Batch(fetchItems, fetchPopular)
}

func (w watchlistModel) updateItems(msg watchlistMsg) watchlistModel {
	if msg.gen != w.gen {
		return w
	}
	if msg.err != nil || !msg.resp.Success {
		w.failed = true
		w.errText = messageOr(msg.resp.Message, genericError)
	} else {
		w.items = msg.resp.Data
	}
	w.wlDone = true
	return w.settle()
}

func (w watchlistModel) updatePopular(msg popularMsg) watchlistModel {
	if msg.gen != w.gen {
		return w
	}
	if msg.err != nil || !msg.resp.Success {
		w.failed = true
		w.errText = messageOr(msg.resp.Message, genericError)
	} else {
		w.popular = msg.resp.Data
	}
	w.popDone = true
	return w.settle()
}

func (w watchlistModel) settle() watchlistModel {
	if !w.wlDone || !w.popDone {
		return w
	}
	if w.failed {
		w.state = stateError
		return w
	}
	w.state = stateSuccess
	return w
}

// remove deletes the highlighted entry.
func (w watchlistModel) remove(c *api.Client) (watchlistModel, tea.Cmd) {
	if w.section != sectionItems || w.cursor < 0 || w.cursor >= len(w.items) {
		return w, nil
	}
	id := w.items[w.cursor].ID
	gen := w.gen
	return w, func() tea.Msg {
		resp, err := c.RemoveWatchlist(context.Background(), id)
		return removeMsg{gen: gen, id: id, resp: resp, err: err}
	}
}

func (w watchlistModel) updateRemove(msg removeMsg) watchlistModel {
	if msg.gen != w.gen {
		return w
	}
	if msg.err != nil || !msg.resp.Success {
		w.toast = messageOr(msg.resp.Message, "삭제에 실패했습니다. 다시 시도해주세요.")
		return w
	}
	kept := w.items[:0]
	for _, item := range w.items {
		if item.ID != msg.id {
			kept = append(kept, item)
		}
	}
	w.items = kept
	if w.cursor >= len(w.items) && w.cursor > 0 {
		w.cursor--
	}
	w.toast = "관심종목에서 삭제되었습니다."
	return w
}

// add saves an instrument and reloads the page on success so the
// embedded snapshots stay fresh.
func (w watchlistModel) add(isinCd string, c *api.Client) (watchlistModel, tea.Cmd) {
	if !w.loggedIn || isinCd == "" {
		return w, nil
	}
	gen := w.gen
	userID := w.userID
	return w, func() tea.Msg {
		resp, err := c.AddWatchlist(context.Background(), userID, isinCd, "")
		return addMsg{gen: gen, resp: resp, err: err}
	}
}

func (w watchlistModel) updateAdd(msg addMsg, c *api.Client, state session.State) (watchlistModel, tea.Cmd) {
	if msg.gen != w.gen {
		return w, nil
	}
	if msg.err != nil || !msg.resp.Success {
		w.toast = messageOr(msg.resp.Message, "관심종목 추가에 실패했습니다.")
		return w, nil
	}
	w, cmd := w.load(c, state)
	w.toast = "관심종목에 추가되었습니다."
	return w, cmd
}

// toggleStats opens or closes the statistics panel. The panel has its
// own fetch and never gates the main page.
func (w watchlistModel) toggleStats(c *api.Client) (watchlistModel, tea.Cmd) {
	if !w.loggedIn {
		return w, nil
	}
	if w.statsOpen {
		w.statsOpen = false
		return w, nil
	}
	w.statsOpen = true
	w.stats = nil
	w.statsErr = false
	gen := w.gen
	userID := w.userID
	return w, func() tea.Msg {
		resp, err := c.Statistics(context.Background(), userID)
		return statsMsg{gen: gen, resp: resp, err: err}
	}
}

func (w watchlistModel) updateStats(msg statsMsg) watchlistModel {
	if msg.gen != w.gen || !w.statsOpen {
		return w
	}
	if msg.err != nil || !msg.resp.Success || msg.resp.Data == nil {
		w.statsErr = true
		return w
	}
	w.stats = msg.resp.Data
	return w
}

func (w watchlistModel) switchSection() watchlistModel {
	if w.section == sectionItems {
		w.section = sectionPopular
	} else {
		w.section = sectionItems
	}
	w.cursor = 0
	return w
}

func (w watchlistModel) sectionLen() int {
	if w.section == sectionItems {
		return len(w.items)
	}
	return len(w.popular)
}

func (w watchlistModel) moveCursor(delta int) watchlistModel {
	n := w.sectionLen()
	if n == 0 {
		return w
	}
	w.cursor += delta
	if w.cursor < 0 {
		w.cursor = 0
	}
	if w.cursor >= n {
		w.cursor = n - 1
	}
	return w
}

// selectedIsin returns the ISIN of the highlighted row, for opening the
// detail page.
func (w watchlistModel) selectedIsin() string {
	if w.section == sectionItems {
		if w.cursor >= 0 && w.cursor < len(w.items) {
			return w.items[w.cursor].IsinCd
		}
		return ""
	}
	if w.cursor >= 0 && w.cursor < len(w.popular) {
		return w.popular[w.cursor].IsinCd
	}
	return ""
}

func (w watchlistModel) view(width int, spin string) string {
	t := theme.Default

	if !w.loggedIn {
		prompt := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render("로그인이 필요합니다"),
			lipgloss.NewStyle().Foreground(t.Subtext).Render("관심종목을 사용하려면 로그인해주세요. (l 로그인)"),
		)
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2).
			Render(prompt)
	}

	switch w.state {
	case stateLoading:
		return loadingView(spin, "관심종목을 불러오는 중...")
	case stateError:
		return errorView("관심종목 로딩 실패", w.errText)
	}

	var lines []string
	if w.toast != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Success).Render(w.toast), "")
	}

	lines = append(lines, w.sectionHeader("내 관심종목", sectionItems)+"  "+
		lipgloss.NewStyle().Foreground(t.Muted).Render(formatInt(int64(len(w.items)))+"개"))
	if len(w.items) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("  아직 관심종목이 없습니다."))
	}
	for i, item := range w.items {
		row := w.itemRow(item)
		if w.section == sectionItems && i == w.cursor {
			row = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Bold(true).Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", w.sectionHeader("인기 ETF Top 5", sectionPopular))
	if len(w.popular) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("  데이터가 없습니다."))
	}
	for i, pop := range w.popular {
		likes := lipgloss.NewStyle().Foreground(t.Warning).Render(fmt.Sprintf("♥ %d", pop.LikeCount))
		row := fmt.Sprintf("%2d. %s  %s", i+1, pop.EtfName, likes)
		if w.section == sectionPopular && i == w.cursor {
			row = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Bold(true).Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	if w.statsOpen {
		lines = append(lines, "", w.statsView())
	}

	return strings.Join(lines, "\n")
}

func (w watchlistModel) sectionHeader(title string, section watchlistSection) string {
	t := theme.Default
	style := lipgloss.NewStyle().Foreground(t.Info).Bold(true)
	if w.section == section {
		style = style.Underline(true)
	}
	return style.Render(title)
}

func (w watchlistModel) itemRow(item api.WatchlistItem) string {
	t := theme.Default
	if item.EtfInfo == nil {
		return item.IsinCd + "  " + lipgloss.NewStyle().Foreground(t.Muted).Render(noData)
	}
	etf := *item.EtfInfo
	code := lipgloss.NewStyle().Foreground(t.Muted).Render(etf.SrtnCd)
	price := wonOr(etf.ClosePrice, dash)
	change := lipgloss.NewStyle().Foreground(priceColor(etf.FltRt)).Render(percent(etf.FltRt))
	row := fmt.Sprintf("%s %s  %s  %s", etf.ItmsNm, code, price, change)
	if item.Memo != "" {
		row += "  " + lipgloss.NewStyle().Foreground(t.Muted).Italic(true).Render(item.Memo)
	}
	return row
}

func (w watchlistModel) statsView() string {
	t := theme.Default
	var body string
	switch {
	case w.statsErr:
		body = lipgloss.NewStyle().Foreground(t.Error).Render("통계를 불러오지 못했습니다.")
	case w.stats == nil:
		body = lipgloss.NewStyle().Foreground(t.Muted).Render("통계 로딩 중...")
	default:
		body = detailGrid([][2]string{
			{"전체 사용자", formatInt(w.stats.TotalUsers)},
			{"전체 ETF", formatInt(w.stats.TotalEtfs)},
			{"전체 관심종목", formatInt(w.stats.TotalWatchLists)},
		})
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Info).
		Padding(0, 1).
		Render(sectionTitle("서비스 통계") + "\n" + body)
}
