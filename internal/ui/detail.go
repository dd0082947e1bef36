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

type detailModel struct {
	state   pageState
	gen     int
	isin    string
	etf     *api.EtfInfo
	errText string
}

type detailMsg struct {
	gen  int
	resp api.EtfDetailResponse
	err  error
}

// load fetches one instrument. An empty ISIN never hits the network;
// the page goes straight to its error state.
func (d detailModel) load(isin string, c *api.Client) (detailModel, tea.Cmd) {
	d.isin = isin
	if isin == "" {
		d.state = stateError
		d.errText = "잘못된 종목 코드입니다."
		return d, nil
	}
	d.gen++
	d.state = stateLoading
	gen := d.gen
	return d, func() tea.Msg {
		resp, err := c.EtfDetail(context.Background(), isin)
		return detailMsg{gen: gen, resp: resp, err: err}
	}
}

func (d detailModel) retry(c *api.Client) (detailModel, tea.Cmd) {
	return d.load(d.isin, c)
}

func (d detailModel) update(msg detailMsg) detailModel {
	if msg.gen != d.gen {
		return d
	}
	if msg.err != nil {
		d.state = stateError
		d.errText = genericError
		return d
	}
	if !msg.resp.Success || msg.resp.Data == nil {
		d.state = stateError
		d.errText = messageOr(msg.resp.Message, "해당 ETF를 찾을 수 없습니다.")
		return d
	}
	d.etf = msg.resp.Data
	d.state = stateSuccess
	return d
}

func (d detailModel) view(width int, spin string) string {
	t := theme.Default

	switch d.state {
	case stateLoading:
		return loadingView(spin, "종목 정보를 불러오는 중...")
	case stateError:
		return errorView("종목 조회 실패", d.errText)
	}
	if d.etf == nil {
		return ""
	}
	etf := *d.etf

	name := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(etf.ItmsNm)
	code := lipgloss.NewStyle().Foreground(t.Muted).Render(etf.SrtnCd + " / " + etf.IsinCd)
	lines := []string{name, code, ""}

	if etf.ClosePrice <= 0 {
		warn := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Warning).
			Foreground(t.Warning).
			Padding(0, 1).
			Render("시세 정보가 아직 수집되지 않았습니다. 데이터 동기화 후 다시 확인해주세요.")
		lines = append(lines, warn, "")
	} else {
		price := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(formatNumber(etf.ClosePrice) + "원")
		change := lipgloss.NewStyle().Foreground(priceColor(etf.FltRt)).Bold(true).
			Render(fmt.Sprintf("%s (%s)", percent(etf.FltRt), signedOr(etf.Vs)))
		lines = append(lines, price+"  "+change, "")
	}

	lines = append(lines,
		sectionTitle("시세 정보"),
		detailGrid([][2]string{
			{"시가", wonOr(etf.OpenPrice, noData)},
			{"고가", wonOr(etf.HighPrice, noData)},
			{"저가", wonOr(etf.LowPrice, noData)},
			{"NAV", numberOr(etf.Nav, noData)},
			{"거래량", intOr(etf.TradeVolume, noData)},
			{"거래대금", billionsOr(etf.TradePrice, noData)},
		}),
		"",
		sectionTitle("기본 정보"),
		detailGrid([][2]string{
			{"카테고리", textOr(etf.Category, noData)},
			{"기초지수", textOr(etf.BaseIndexName, noData)},
			{"기초지수 종가", numberOr(etf.BaseIndexClosePrice, noData)},
			{"시가총액", billionsOr(etf.MarketTotalAmt, noData)},
			{"순자산총액", billionsOr(etf.NetAssetTotalAmt, noData)},
			{"상장좌수", intOr(etf.StLstgCnt, noData)},
			{"기준일", textOr(etf.BaseDate, noData)},
		}),
	)

	return strings.Join(lines, "\n")
}

func detailGrid(rows [][2]string) string {
	t := theme.Default
	label := lipgloss.NewStyle().Foreground(t.Subtext).Width(14)
	value := lipgloss.NewStyle().Foreground(t.Text)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, "  "+label.Render(row[0])+value.Render(row[1]))
	}
	return strings.Join(lines, "\n")
}

func textOr(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// signedOr renders an absolute change with its sign, falling back to a
// dash for flat values.
func signedOr(v float64) string {
	if v == 0 {
		return dash
	}
	if v > 0 {
		return "+" + formatNumber(v)
	}
	return formatNumber(v)
}
