package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etfdash/internal/api"
)

func TestLogin_SubmitEmptyFieldsNeverHitsNetwork(t *testing.T) {
	m := newLoginModel()

	m, cmd := m.submit(nil)
	assert.Nil(t, cmd)
	assert.Equal(t, "사용자명과 비밀번호를 입력해주세요.", m.errText)
	assert.False(t, m.busy)
}

func TestLogin_SubmitFiresRequest(t *testing.T) {
	m := newLoginModel()
	m.fields[0].SetValue("hong")
	m.fields[1].SetValue("secret")

	m, cmd := m.submit(nil)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Empty(t, m.errText)
}

func TestLogin_SuccessReturnsAccount(t *testing.T) {
	m := newLoginModel()
	m.fields[0].SetValue("hong")
	m.fields[1].SetValue("secret")
	m, _ = m.submit(nil)

	m, account := m.updateLogin(loginMsg{gen: m.gen, resp: api.UserResponse{
		Success: true,
		User:    &api.User{ID: 7, Username: "hong"},
	}})

	require.NotNil(t, account)
	assert.Equal(t, int64(7), account.ID)
	assert.False(t, m.busy)
}

func TestLogin_FailureEnvelopeShowsMessage(t *testing.T) {
	m := newLoginModel()
	m.fields[0].SetValue("hong")
	m.fields[1].SetValue("wrong")
	m, _ = m.submit(nil)

	m, account := m.updateLogin(loginMsg{gen: m.gen, resp: api.UserResponse{
		Success: false,
		Message: "비밀번호가 올바르지 않습니다.",
	}})

	assert.Nil(t, account)
	assert.Equal(t, "비밀번호가 올바르지 않습니다.", m.errText)
}

func TestLogin_SuccessWithoutUserRecordIsRejected(t *testing.T) {
	m := newLoginModel()
	m.fields[0].SetValue("hong")
	m.fields[1].SetValue("secret")
	m, _ = m.submit(nil)

	// A success flag with no account payload must not log the user in.
	m, account := m.updateLogin(loginMsg{gen: m.gen, resp: api.UserResponse{Success: true}})
	assert.Nil(t, account)
	assert.NotEmpty(t, m.errText)
}

func TestLogin_StaleResponseDiscarded(t *testing.T) {
	m := newLoginModel()
	m.fields[0].SetValue("hong")
	m.fields[1].SetValue("secret")
	m, _ = m.submit(nil)
	staleGen := m.gen
	m, _ = m.submit(nil)

	m, account := m.updateLogin(loginMsg{gen: staleGen, resp: api.UserResponse{
		Success: true,
		User:    &api.User{ID: 7},
	}})
	assert.Nil(t, account)
	assert.True(t, m.busy)
}

func TestRegister_ValidationBeforeRequest(t *testing.T) {
	m := newLoginModel()
	m, _ = m.toggleMode()
	require.Equal(t, modeRegister, m.mode)

	m, cmd := m.submit(nil)
	assert.Nil(t, cmd)
	assert.Equal(t, "모든 필수 항목을 입력해주세요.", m.errText)

	m.fields[0].SetValue("lee")
	m.fields[1].SetValue("not-an-email")
	m.fields[3].SetValue("pw")
	m.fields[4].SetValue("pw")
	m, cmd = m.submit(nil)
	assert.Nil(t, cmd)
	assert.Equal(t, "올바른 이메일 주소를 입력해주세요.", m.errText)

	m.fields[1].SetValue("lee@example.com")
	m.fields[4].SetValue("other")
	m, cmd = m.submit(nil)
	assert.Nil(t, cmd)
	assert.Equal(t, "비밀번호가 일치하지 않습니다.", m.errText)

	m.fields[4].SetValue("pw")
	m, cmd = m.submit(nil)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
}

func TestRegister_SuccessFlipsToLoginWithAlert(t *testing.T) {
	m := newLoginModel()
	m, _ = m.toggleMode()
	m.fields[0].SetValue("lee")
	m.fields[1].SetValue("lee@example.com")
	m.fields[3].SetValue("pw")
	m.fields[4].SetValue("pw")
	m, _ = m.submit(nil)

	m = m.updateRegister(registerMsg{gen: m.gen, resp: api.UserResponse{Success: true}})

	assert.Equal(t, modeLogin, m.mode)
	assert.Equal(t, "회원가입이 완료되었습니다! 로그인해주세요.", m.alert)
	assert.Len(t, m.fields, 2)
}

func TestRegister_FailureStaysOnForm(t *testing.T) {
	m := newLoginModel()
	m, _ = m.toggleMode()
	m.fields[0].SetValue("lee")
	m.fields[1].SetValue("lee@example.com")
	m.fields[3].SetValue("pw")
	m.fields[4].SetValue("pw")
	m, _ = m.submit(nil)

	m = m.updateRegister(registerMsg{gen: m.gen, resp: api.UserResponse{
		Success: false,
		Message: "이미 사용 중인 사용자명입니다.",
	}})

	assert.Equal(t, modeRegister, m.mode)
	assert.Equal(t, "이미 사용 중인 사용자명입니다.", m.errText)
}

func TestLogin_CycleFocusWraps(t *testing.T) {
	m := newLoginModel()
	assert.Equal(t, 0, m.focus)

	m = m.cycleFocus(1)
	assert.Equal(t, 1, m.focus)
	m = m.cycleFocus(1)
	assert.Equal(t, 0, m.focus)
	m = m.cycleFocus(-1)
	assert.Equal(t, 1, m.focus)
}

func TestLogin_ViewShowsModeAndHint(t *testing.T) {
	m := newLoginModel()
	out := ansi.Strip(m.view(120, ""))
	assert.Contains(t, out, "로그인")
	assert.Contains(t, out, "ctrl+t 회원가입")

	m, _ = m.toggleMode()
	out = ansi.Strip(m.view(120, ""))
	assert.Contains(t, out, "회원가입")
	assert.Contains(t, out, "비밀번호 확인")
}
