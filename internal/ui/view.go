package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/theme"
)

// Lines reserved for the nav bar and help footer around the viewport.
const chromeHeight = 5

func (m Model) View() string {
	if !m.ready {
		return "\n  로딩 중..."
	}

	t := theme.Default
	page := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Background(t.Base)

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.navView(),
		"",
		m.viewport.View(),
		"",
		m.helpView(),
	)
	return page.Render(body)
}

func (m Model) pageView() string {
	pad := lipgloss.NewStyle().Padding(0, 2)

	var content string
	switch m.page {
	case pageDashboard:
		content = m.dashboard.view(m.width, m.spin.View())
	case pageRankings:
		content = m.rankings.view(m.width, m.spin.View())
	case pageSearch:
		content = m.search.view(m.width, m.spin.View())
	case pageThemes:
		content = m.themes.view(m.width, m.spin.View())
	case pageWatchlist:
		content = m.watchlist.view(m.width, m.spin.View())
	case pageLogin:
		content = m.login.view(m.width, m.spin.View())
	case pageDetail:
		content = m.detail.view(m.width, m.spin.View())
	}
	return pad.Render(content)
}

var navItems = []struct {
	page  page
	label string
}{
	{pageDashboard, "1 대시보드"},
	{pageRankings, "2 랭킹"},
	{pageSearch, "3 검색"},
	{pageThemes, "4 테마별"},
	{pageWatchlist, "5 관심종목"},
}

func (m Model) navView() string {
	t := theme.Default

	items := make([]string, 0, len(navItems))
	for _, item := range navItems {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(t.Subtext)
		active := m.page == item.page ||
			(m.page == pageDetail && m.prevPage == item.page)
		if active {
			style = style.Foreground(t.Base).Background(t.Primary).Bold(true)
		}
		items = append(items, style.Render(item.label))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, items...)

	var right string
	if state := m.sess.Current(); state.LoggedIn && state.User != nil {
		right = lipgloss.NewStyle().Foreground(t.Success).
			Render("안녕하세요, "+state.User.Username+"님") +
			lipgloss.NewStyle().Foreground(t.Muted).Render("  x 로그아웃")
	} else {
		right = lipgloss.NewStyle().Foreground(t.Muted).Render("l 로그인")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) helpView() string {
	t := theme.Default

	var hints []string
	switch m.page {
	case pageRankings:
		hints = []string{"←/→ 탭", "↑/↓ 이동", "enter 상세", "r 다시 시도", "q 종료"}
	case pageSearch:
		hints = []string{"입력하면 자동 검색", "enter 검색/상세", "esc 뒤로"}
	case pageThemes:
		hints = []string{"↑/↓ 이동", "enter 테마 검색", "q 종료"}
	case pageWatchlist:
		hints = []string{"tab 섹션", "↑/↓ 이동", "enter 상세", "d 삭제", "s 통계", "q 종료"}
	case pageLogin:
		hints = []string{"tab 다음 항목", "enter 제출", "ctrl+t 전환", "esc 뒤로"}
	case pageDetail:
		hints = []string{"a 관심종목 추가", "r 다시 시도", "esc 뒤로"}
	default:
		hints = []string{"1-5 페이지 이동", "pgup/pgdn 스크롤", "q 종료"}
	}

	return lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 2).
		Render(strings.Join(hints, " · "))
}

// loadingView is the shared in-page loading indicator.
func loadingView(spin, text string) string {
	t := theme.Default
	return spin + " " + lipgloss.NewStyle().Foreground(t.Subtext).Render(text)
}

// errorView is the shared in-page failure banner with the retry hint.
func errorView(title, text string) string {
	t := theme.Default
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render(title),
		lipgloss.NewStyle().Foreground(t.Text).Render(text),
		lipgloss.NewStyle().Foreground(t.Muted).Render("r 키를 눌러 다시 시도하세요"),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(0, 1).
		Render(body)
}
