package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg fires when a scheduled quiet period elapses.
type debounceMsg struct {
	seq int
}

// debouncer schedules a call after a quiet period. Every next() call
// supersedes the pending one, so only the message carrying the latest
// sequence number still fires; cancel() invalidates whatever is
// pending.
type debouncer struct {
	seq   int
	delay time.Duration
}

func (d *debouncer) next() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// fires reports whether msg is the latest scheduled call.
func (d *debouncer) fires(msg debounceMsg) bool {
	return msg.seq == d.seq
}

func (d *debouncer) cancel() {
	d.seq++
}
