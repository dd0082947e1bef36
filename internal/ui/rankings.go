package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/api"
	"etfdash/internal/theme"
)

type rankingTab struct {
	key   api.RankingType
	label string
}

var rankingTabs = []rankingTab{
	{api.RankGainers, "등락률 상위"},
	{api.RankLosers, "등락률 하위"},
	{api.RankVolume, "거래량 상위"},
	{api.RankAmount, "거래대금 상위"},
	{api.RankAsset, "순자산총액 상위"},
}

type rankingsModel struct {
	state   pageState
	gen     int
	tab     int
	list    []api.EtfInfo
	title   string
	count   int
	cursor  int
	errText string
}

type rankingsMsg struct {
	gen  int
	resp api.RankingsResponse
	err  error
}

func (r rankingsModel) load(c *api.Client) (rankingsModel, tea.Cmd) {
	r.gen++
	r.state = stateLoading
	r.cursor = 0
	gen := r.gen
	rankType := rankingTabs[r.tab].key
	return r, func() tea.Msg {
		resp, err := c.Rankings(context.Background(), rankType)
		return rankingsMsg{gen: gen, resp: resp, err: err}
	}
}

func (r rankingsModel) switchTab(delta int, c *api.Client) (rankingsModel, tea.Cmd) {
	r.tab = (r.tab + delta + len(rankingTabs)) % len(rankingTabs)
	return r.load(c)
}

func (r rankingsModel) update(msg rankingsMsg) rankingsModel {
	if msg.gen != r.gen {
		return r
	}
	if msg.err != nil {
		r.state = stateError
		r.errText = genericError
		return r
	}
	if !msg.resp.Success {
		r.state = stateError
		r.errText = messageOr(msg.resp.Message, genericError)
		return r
	}
	r.list = msg.resp.Data
	r.title = msg.resp.Title
	r.count = msg.resp.Count
	r.cursor = 0
	r.state = stateSuccess
	return r
}

func (r rankingsModel) moveCursor(delta int) rankingsModel {
	if len(r.list) == 0 {
		return r
	}
	r.cursor += delta
	if r.cursor < 0 {
		r.cursor = 0
	}
	if r.cursor >= len(r.list) {
		r.cursor = len(r.list) - 1
	}
	return r
}

func (r rankingsModel) selected() *api.EtfInfo {
	if r.cursor < 0 || r.cursor >= len(r.list) {
		return nil
	}
	return &r.list[r.cursor]
}

// typeValue renders the column the current tab ranks by.
func (r rankingsModel) typeValue(etf api.EtfInfo) string {
	switch rankingTabs[r.tab].key {
	case api.RankGainers, api.RankLosers:
		return percent(etf.FltRt)
	case api.RankVolume:
		return intOr(etf.TradeVolume, dash)
	case api.RankAmount:
		return billionsOr(etf.TradePrice, dash)
	case api.RankAsset:
		return billionsOr(etf.NetAssetTotalAmt, dash)
	}
	return dash
}

func (r rankingsModel) view(width int, spin string) string {
	t := theme.Default

	tabs := make([]string, 0, len(rankingTabs))
	for i, tab := range rankingTabs {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(t.Subtext)
		if i == r.tab {
			style = style.Foreground(t.Base).Background(t.Primary).Bold(true)
		}
		tabs = append(tabs, style.Render(tab.label))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	switch r.state {
	case stateLoading:
		return header + "\n\n" + loadingView(spin, "랭킹 데이터를 불러오는 중...")
	case stateError:
		return header + "\n\n" + errorView("랭킹 로딩 실패", r.errText)
	}

	badge := lipgloss.NewStyle().Foreground(t.Base).Background(t.Info).Padding(0, 1).
		Render(formatInt(int64(r.count)) + "개")
	title := sectionTitle(messageOr(r.title, rankingTabs[r.tab].label))

	lines := []string{header, "", title + " " + badge, ""}

	if len(r.list) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("  데이터가 없습니다. 데이터 동기화가 필요합니다"))
		return strings.Join(lines, "\n")
	}

	for i, etf := range r.list {
		rank := fmt.Sprintf("%2d.", i+1)
		name := etf.ItmsNm
		code := lipgloss.NewStyle().Foreground(t.Muted).Render(etf.SrtnCd)
		price := wonOr(etf.ClosePrice, dash)
		change := lipgloss.NewStyle().Foreground(priceColor(etf.FltRt)).Render(percent(etf.FltRt))
		category := categoryBadge(etf.Category)

		row := fmt.Sprintf("%s %s %s  %s  %s  %s  %s", rank, name, code, price, change, r.typeValue(etf), category)
		if i == r.cursor {
			row = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Bold(true).Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

func categoryBadge(category string) string {
	t := theme.Default
	if category == "" {
		return lipgloss.NewStyle().Foreground(t.Muted).Render("[-]")
	}
	return lipgloss.NewStyle().Foreground(t.Accent).Render("[" + category + "]")
}
