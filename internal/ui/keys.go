package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Back   key.Binding
	Retry  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	Dashboard key.Binding
	Rankings  key.Binding
	Search    key.Binding
	Themes    key.Binding
	Watchlist key.Binding
	Login     key.Binding
	Logout    key.Binding

	PrevTab key.Binding
	NextTab key.Binding

	Add        key.Binding
	Remove     key.Binding
	Stats      key.Binding
	Section    key.Binding
	SwitchForm key.Binding
	NextField  key.Binding
	PrevField  key.Binding

	PageUp   key.Binding
	PageDown key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "종료")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "뒤로")),
	Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "다시 시도")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "위로")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "아래로")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "선택")),

	Dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "대시보드")),
	Rankings:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "랭킹")),
	Search:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "검색")),
	Themes:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "테마별")),
	Watchlist: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "관심종목")),
	Login:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "로그인")),
	Logout:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "로그아웃")),

	PrevTab: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "이전 탭")),
	NextTab: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "다음 탭")),

	Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "관심종목 추가")),
	Remove:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "삭제")),
	Stats:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "통계")),
	Section:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "섹션 전환")),
	SwitchForm: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "로그인/회원가입 전환")),
	NextField:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "다음 항목")),
	PrevField:  key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "이전 항목")),

	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "스크롤 ↑")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "스크롤 ↓")),
}
