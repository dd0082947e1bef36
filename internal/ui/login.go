package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"etfdash/internal/api"
	"etfdash/internal/theme"
)

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

type loginModel struct {
	mode    authMode
	fields  []textinput.Model
	labels  []string
	focus   int
	gen     int
	busy    bool
	alert   string
	errText string
}

type loginMsg struct {
	gen  int
	resp api.UserResponse
	err  error
}

type registerMsg struct {
	gen  int
	resp api.UserResponse
	err  error
}

func newLoginModel() loginModel {
	m := loginModel{}
	return m.setMode(modeLogin)
}

func (m loginModel) setMode(mode authMode) loginModel {
	m.mode = mode
	m.focus = 0
	m.errText = ""

	var labels []string
	if mode == modeLogin {
		labels = []string{"사용자명 또는 이메일", "비밀번호"}
	} else {
		labels = []string{"사용자명", "이메일", "이름 (선택)", "비밀번호", "비밀번호 확인"}
	}

	fields := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 100
		in.Width = 32
		if strings.HasPrefix(label, "비밀번호") {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		fields[i] = in
	}
	fields[0].Focus()

	m.labels = labels
	m.fields = fields
	return m
}

func (m loginModel) toggleMode() (loginModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if m.mode == modeLogin {
		m = m.setMode(modeRegister)
	} else {
		m = m.setMode(modeLogin)
	}
	m.alert = ""
	return m, textinput.Blink
}

func (m loginModel) cycleFocus(delta int) loginModel {
	m.fields[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].Focus()
	return m
}

func (m loginModel) updateFields(msg tea.Msg) (loginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.fields))
	for i := range m.fields {
		m.fields[i], cmds[i] = m.fields[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m loginModel) value(i int) string {
	return strings.TrimSpace(m.fields[i].Value())
}

// submit validates the visible form and fires the matching request.
// Validation failures never hit the network.
func (m loginModel) submit(c *api.Client) (loginModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.alert = ""

	if m.mode == modeLogin {
		account, password := m.value(0), m.value(1)
		if account == "" || password == "" {
			m.errText = "사용자명과 비밀번호를 입력해주세요."
			return m, nil
		}
		m.gen++
		m.busy = true
		m.errText = ""
		gen := m.gen
		return m, func() tea.Msg {
			resp, err := c.Login(context.Background(), account, password)
			return loginMsg{gen: gen, resp: resp, err: err}
		}
	}

	username, email := m.value(0), m.value(1)
	fullName := m.value(2)
	password, confirm := m.value(3), m.value(4)
	switch {
	case username == "" || email == "" || password == "":
		m.errText = "모든 필수 항목을 입력해주세요."
		return m, nil
	case !strings.Contains(email, "@"):
		m.errText = "올바른 이메일 주소를 입력해주세요."
		return m, nil
	case password != confirm:
		m.errText = "비밀번호가 일치하지 않습니다."
		return m, nil
	}
	m.gen++
	m.busy = true
	m.errText = ""
	gen := m.gen
	return m, func() tea.Msg {
		resp, err := c.Register(context.Background(), username, email, fullName, password)
		return registerMsg{gen: gen, resp: resp, err: err}
	}
}

// updateLogin applies a login response. On success it returns the
// authenticated account for the root model to store.
func (m loginModel) updateLogin(msg loginMsg) (loginModel, *api.User) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.busy = false
	if msg.err != nil {
		m.errText = genericError
		return m, nil
	}
	account := msg.resp.Account()
	if !msg.resp.Success || account == nil {
		m.errText = messageOr(msg.resp.Message, "로그인에 실패했습니다. 입력 정보를 확인해주세요.")
		return m, nil
	}
	m.errText = ""
	return m, account
}

// updateRegister applies a register response. Success flips the page
// back to the login form.
func (m loginModel) updateRegister(msg registerMsg) loginModel {
	if msg.gen != m.gen {
		return m
	}
	m.busy = false
	if msg.err != nil {
		m.errText = genericError
		return m
	}
	if !msg.resp.Success {
		m.errText = messageOr(msg.resp.Message, "회원가입에 실패했습니다.")
		return m
	}
	m = m.setMode(modeLogin)
	m.alert = "회원가입이 완료되었습니다! 로그인해주세요."
	return m
}

func (m loginModel) view(width int, spin string) string {
	t := theme.Default

	title := "로그인"
	switchHint := "ctrl+t 회원가입"
	if m.mode == modeRegister {
		title = "회원가입"
		switchHint = "ctrl+t 로그인"
	}

	lines := []string{
		sectionTitle(title) + "  " + lipgloss.NewStyle().Foreground(t.Muted).Render(switchHint),
		"",
	}

	if m.alert != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Success).Render(m.alert), "")
	}

	label := lipgloss.NewStyle().Foreground(t.Subtext)
	for i, in := range m.fields {
		lines = append(lines, label.Render(m.labels[i]), in.View(), "")
	}

	if m.busy {
		lines = append(lines, loadingView(spin, "처리 중..."))
	} else if m.errText != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Error).Render(m.errText))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render("enter 제출 · tab 다음 항목"))
	}

	form := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(form)
}
