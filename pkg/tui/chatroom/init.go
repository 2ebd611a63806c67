package chatroom

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcodez811/youtubegpt/pkg/chat"
	"github.com/Marcodez811/youtubegpt/pkg/tui/status"
)

func (m Model) Init() tea.Cmd {
	session := m.session
	return tea.Batch(
		textarea.Blink,
		func() tea.Msg {
			return status.StartMsg{State: status.StateLoading}
		},
		func() tea.Msg {
			session.Load(m.submitCtx())
			return nil
		},
		waitForSessionEvent(session.Events()),
		waitForPlayerTime(m.player.Times()),
	)
}

// waitForSessionEvent blocks on the session's event channel and resurfaces
// the next event as a tea message. Re-issued after every event.
func waitForSessionEvent(events <-chan chat.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return sessionClosedMsg{}
		}
		return sessionEventMsg(ev)
	}
}

// waitForPlayerTime blocks on the player's time subscription.
func waitForPlayerTime(times <-chan float64) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-times
		if !ok {
			return playerClosedMsg{}
		}
		return playerTimeMsg(t)
	}
}
