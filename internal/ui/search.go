package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/api"
	"etfdash/internal/theme"
)

const searchDebounce = 500 * time.Millisecond

var recommendedKeywords = []string{"반도체", "2차전지", "배당", "미국", "채권", "금"}

type searchModel struct {
	input   textinput.Model
	deb     debouncer
	state   pageState
	gen     int
	keyword string
	results []api.EtfInfo
	count   int
	cursor  int
	errText string
}

type searchMsg struct {
	gen  int
	resp api.SearchResponse
	err  error
}

func newSearchModel() searchModel {
	in := textinput.New()
	in.Placeholder = "ETF 이름 또는 종목코드를 입력하세요"
	in.CharLimit = 50
	in.Width = 40
	in.Focus()
	return searchModel{
		input: in,
		deb:   debouncer{delay: searchDebounce},
	}
}

// mount resets the page, optionally seeding a keyword for an immediate
// search (theme card selection lands here).
func (s searchModel) mount(keyword string, c *api.Client) (searchModel, tea.Cmd) {
	s.input.SetValue(keyword)
	s.input.CursorEnd()
	s.deb.cancel()
	s.results = nil
	s.cursor = 0
	if keyword == "" {
		s.state = stateIdle
		return s, textinput.Blink
	}
	s, cmd := s.search(keyword, c)
	return s, tea.Batch(textinput.Blink, cmd)
}

// onInput is called after every keystroke reaches the text input. The
// actual request only fires once the input has been quiet for the
// debounce window.
func (s searchModel) onInput() (searchModel, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		s.deb.cancel()
		s.state = stateIdle
		s.results = nil
		s.keyword = ""
		return s, nil
	}
	return s, s.deb.next()
}

func (s searchModel) onDebounce(msg debounceMsg, c *api.Client) (searchModel, tea.Cmd) {
	if !s.deb.fires(msg) {
		return s, nil
	}
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		return s, nil
	}
	return s.search(value, c)
}

// submit runs the search immediately, cancelling any pending debounce.
func (s searchModel) submit(c *api.Client) (searchModel, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())
	if value == "" {
		return s, nil
	}
	s.deb.cancel()
	return s.search(value, c)
}

func (s searchModel) search(keyword string, c *api.Client) (searchModel, tea.Cmd) {
	s.gen++
	s.state = stateLoading
	s.keyword = keyword
	s.cursor = 0
	gen := s.gen
	return s, func() tea.Msg {
		resp, err := c.Search(context.Background(), keyword)
		return searchMsg{gen: gen, resp: resp, err: err}
	}
}

func (s searchModel) retry(c *api.Client) (searchModel, tea.Cmd) {
	if s.keyword == "" {
		return s, nil
	}
	return s.search(s.keyword, c)
}

func (s searchModel) update(msg searchMsg) searchModel {
	if msg.gen != s.gen {
		return s
	}
	if msg.err != nil {
		s.state = stateError
		s.errText = genericError
		return s
	}
	if !msg.resp.Success {
		s.state = stateError
		s.errText = messageOr(msg.resp.Message, genericError)
		return s
	}
	s.results = msg.resp.Data
	s.count = msg.resp.Count
	s.cursor = 0
	s.state = stateSuccess
	return s
}

func (s searchModel) moveCursor(delta int) searchModel {
	if len(s.results) == 0 {
		return s
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.results) {
		s.cursor = len(s.results) - 1
	}
	return s
}

func (s searchModel) selected() *api.EtfInfo {
	if s.cursor < 0 || s.cursor >= len(s.results) {
		return nil
	}
	return &s.results[s.cursor]
}

func (s searchModel) view(width int, spin string) string {
	t := theme.Default

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Render(s.input.View())

	lines := []string{sectionTitle("ETF 검색"), box, ""}

	switch s.state {
	case stateIdle:
		lines = append(lines,
			lipgloss.NewStyle().Foreground(t.Subtext).Render("추천 검색어"),
			"  "+strings.Join(recommendedKeywords, "  "),
		)
	case stateLoading:
		lines = append(lines, loadingView(spin, fmt.Sprintf("'%s' 검색 중...", s.keyword)))
	case stateError:
		lines = append(lines, errorView("검색 실패", s.errText))
	case stateSuccess:
		if len(s.results) == 0 {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(t.Muted).
					Render(fmt.Sprintf("'%s'에 대한 검색 결과가 없습니다.", s.keyword)))
			break
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(t.Subtext).
				Render(fmt.Sprintf("'%s' 검색 결과 %s건", s.keyword, formatInt(int64(s.count)))),
			"")
		for i, etf := range s.results {
			name := etf.ItmsNm
			code := lipgloss.NewStyle().Foreground(t.Muted).Render(etf.SrtnCd)
			price := wonOr(etf.ClosePrice, dash)
			change := lipgloss.NewStyle().Foreground(priceColor(etf.FltRt)).Render(percent(etf.FltRt))
			row := fmt.Sprintf("%s %s  %s  %s  %s", name, code, price, change, categoryBadge(etf.Category))
			if i == s.cursor {
				row = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Bold(true).Render("> " + row)
			} else {
				row = "  " + row
			}
			lines = append(lines, row)
		}
	}

	return strings.Join(lines, "\n")
}
