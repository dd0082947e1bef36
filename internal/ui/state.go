package ui

// pageState is the lifecycle of every view: idle is only meaningful for
// pages whose load depends on user input (search).
type pageState int

const (
	stateIdle pageState = iota
	stateLoading
	stateSuccess
	stateError
)

const genericError = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// messageOr prefers the envelope message when the backend sent one.
func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
