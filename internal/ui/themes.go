package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/api"
	"etfdash/internal/theme"
)

// Brand themes pinned above the category list.
var mainThemes = []string{"KODEX", "TIGER", "ACE"}

type themeEntry struct {
	name  string
	count int
}

type themesModel struct {
	state      pageState
	gen        int
	brands     []themeEntry
	categories []themeEntry
	cursor     int
	errText    string
}

type themesMsg struct {
	gen  int
	resp api.ThemesResponse
	err  error
}

func (m themesModel) load(c *api.Client) (themesModel, tea.Cmd) {
	m.gen++
	m.state = stateLoading
	m.cursor = 0
	gen := m.gen
	return m, func() tea.Msg {
		resp, err := c.Themes(context.Background())
		return themesMsg{gen: gen, resp: resp, err: err}
	}
}

func (m themesModel) update(msg themesMsg) themesModel {
	if msg.gen != m.gen {
		return m
	}
	if msg.err != nil {
		m.state = stateError
		m.errText = genericError
		return m
	}
	if !msg.resp.Success {
		m.state = stateError
		m.errText = messageOr(msg.resp.Message, genericError)
		return m
	}

	m.brands = m.brands[:0]
	for _, name := range mainThemes {
		m.brands = append(m.brands, themeEntry{name: name, count: msg.resp.ThemeCounts[name]})
	}

	m.categories = m.categories[:0]
	for name, group := range msg.resp.CategoryGroups {
		if name == "" {
			continue
		}
		m.categories = append(m.categories, themeEntry{name: name, count: len(group)})
	}
	sort.Slice(m.categories, func(i, j int) bool {
		if m.categories[i].count != m.categories[j].count {
			return m.categories[i].count > m.categories[j].count
		}
		return m.categories[i].name < m.categories[j].name
	})

	m.cursor = 0
	m.state = stateSuccess
	return m
}

// entries flattens brand cards and categories into one selectable list.
func (m themesModel) entries() []themeEntry {
	all := make([]themeEntry, 0, len(m.brands)+len(m.categories))
	all = append(all, m.brands...)
	all = append(all, m.categories...)
	return all
}

func (m themesModel) moveCursor(delta int) themesModel {
	n := len(m.entries())
	if n == 0 {
		return m
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	return m
}

// selected returns the keyword the highlighted entry searches for.
func (m themesModel) selected() string {
	all := m.entries()
	if m.cursor < 0 || m.cursor >= len(all) {
		return ""
	}
	return all[m.cursor].name
}

func (m themesModel) view(width int, spin string) string {
	t := theme.Default

	switch m.state {
	case stateLoading:
		return loadingView(spin, "테마 데이터를 불러오는 중...")
	case stateError:
		return errorView("테마 로딩 실패", m.errText)
	}

	lines := []string{sectionTitle("주요 운용사"), ""}

	cards := make([]string, 0, len(m.brands))
	for i, b := range m.brands {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2).
			MarginRight(1)
		if i == m.cursor {
			style = style.BorderForeground(t.Primary)
		}
		body := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(b.name),
			lipgloss.NewStyle().Foreground(t.Muted).Render(formatInt(int64(b.count))+"개 종목"),
		)
		cards = append(cards, style.Render(body))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...), "")

	lines = append(lines, sectionTitle("카테고리별"), "")
	if len(m.categories) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("  데이터 동기화가 필요합니다"))
		return strings.Join(lines, "\n")
	}

	for i, cat := range m.categories {
		idx := len(m.brands) + i
		count := lipgloss.NewStyle().Foreground(t.Muted).Render(formatInt(int64(cat.count)) + "개")
		row := fmt.Sprintf("%s  %s", cat.name, count)
		if idx == m.cursor {
			row = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Bold(true).Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}
