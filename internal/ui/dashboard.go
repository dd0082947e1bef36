package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"etfdash/internal/api"
	"etfdash/internal/theme"
)

type dashboardModel struct {
	state   pageState
	gen     int
	stats   *api.MarketStats
	gainers []api.EtfInfo
	volume  []api.EtfInfo
	errText string
}

type dashboardMsg struct {
	gen  int
	resp api.DashboardResponse
	err  error
}

func (d dashboardModel) load(c *api.Client) (dashboardModel, tea.Cmd) {
	d.gen++
	d.state = stateLoading
	gen := d.gen
	return d, func() tea.Msg {
		resp, err := c.Dashboard(context.Background())
		return dashboardMsg{gen: gen, resp: resp, err: err}
	}
}

func (d dashboardModel) update(msg dashboardMsg) dashboardModel {
	if msg.gen != d.gen {
		// Response from a superseded load; newer state wins.
		return d
	}
	if msg.err != nil {
		d.state = stateError
		d.errText = genericError
		return d
	}
	if !msg.resp.Success {
		d.state = stateError
		d.errText = messageOr(msg.resp.Message, genericError)
		return d
	}
	d.stats = msg.resp.MarketStats
	d.gainers = msg.resp.TopGainers
	d.volume = msg.resp.MostTradedVolume
	d.state = stateSuccess
	return d
}

func (d dashboardModel) view(width int, spin string) string {
	t := theme.Default

	switch d.state {
	case stateLoading:
		return loadingView(spin, "대시보드 데이터를 불러오는 중...")
	case stateError:
		return errorView("대시보드 로딩 실패", d.errText)
	}

	banner := lipgloss.NewStyle().Foreground(t.Primary).
		Render(strings.Join(figure.NewFigure("ETF DASH", "", false).Slicify(), "\n"))
	subtitle := lipgloss.NewStyle().Foreground(t.Subtext).
		Render("실시간 ETF 시장 현황과 주요 지표를 확인하세요")

	sections := []string{banner, subtitle, ""}

	if d.stats != nil {
		cards := lipgloss.JoinHorizontal(lipgloss.Top,
			statCard("전체 ETF", formatInt(int64(d.stats.TotalCount)), t.Text),
			statCard("상승", formatInt(int64(d.stats.RisingCount)), t.Up),
			statCard("하락", formatInt(int64(d.stats.FallingCount)), t.Down),
			statCard("보합", formatInt(int64(d.stats.StableCount)), t.Muted),
		)
		sections = append(sections, cards, "")
	}

	gainers := topList("등락률 상위 Top 5", d.gainers, func(e api.EtfInfo) string {
		return lipgloss.NewStyle().Foreground(priceColor(e.FltRt)).Render(percent(e.FltRt))
	})
	volume := topList("거래량 상위 Top 5", d.volume, func(e api.EtfInfo) string {
		return formatInt(e.TradeVolume) + " 거래량"
	})
	sections = append(sections, gainers, "", volume)

	return strings.Join(sections, "\n")
}

func statCard(label, value string, color lipgloss.Color) string {
	t := theme.Default
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(value),
		lipgloss.NewStyle().Foreground(t.Muted).Render(label),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2).
		MarginRight(1).
		Render(body)
}

func topList(title string, items []api.EtfInfo, value func(api.EtfInfo) string) string {
	t := theme.Default
	lines := []string{sectionTitle(title)}

	if len(items) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("  데이터 동기화가 필요합니다"))
		return strings.Join(lines, "\n")
	}

	for i, etf := range items {
		rank := lipgloss.NewStyle().Foreground(t.Warning).Render(fmt.Sprintf("%2d.", i+1))
		name := lipgloss.NewStyle().Foreground(t.Text).Render(etf.ItmsNm)
		code := lipgloss.NewStyle().Foreground(t.Muted).Render(etf.SrtnCd)
		price := wonOr(etf.ClosePrice, dash)
		lines = append(lines, fmt.Sprintf("  %s %s %s  %s  %s", rank, name, code, price, value(etf)))
	}
	return strings.Join(lines, "\n")
}

func sectionTitle(title string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Default.Info).
		Bold(true).
		Render(title)
}
