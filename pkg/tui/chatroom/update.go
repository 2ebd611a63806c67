package chatroom

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcodez811/youtubegpt/pkg/api"
	"github.com/Marcodez811/youtubegpt/pkg/chat"
	"github.com/Marcodez811/youtubegpt/pkg/transcript"
	"github.com/Marcodez811/youtubegpt/pkg/tui/status"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg.Width, msg.Height)
		m.statusBar, _ = m.statusBar.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case sessionEventMsg:
		return m.handleSessionEvent(chat.Event(msg))

	case sessionClosedMsg:
		return m, nil

	case playerTimeMsg:
		m.currentTime = float64(msg)
		m.updateActiveSegment()
		m.updateSidePane()
		return m, waitForPlayerTime(m.player.Times())

	case playerClosedMsg:
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Copy failed"
		} else {
			m.notice = "Copied"
		}
		return m, nil

	default:
		var statusCmd tea.Cmd
		m.statusBar, statusCmd = m.statusBar.Update(msg)
		cmds = append(cmds, statusCmd)

		var tiCmd tea.Cmd
		m.textarea, tiCmd = m.textarea.Update(msg)
		cmds = append(cmds, tiCmd)

		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleSessionEvent(ev chat.Event) (tea.Model, tea.Cmd) {
	wait := waitForSessionEvent(m.session.Events())

	switch ev.Type {
	case chat.EventLoaded:
		m.updateViewportContent()
		m.updateSidePane()
		m.viewport.GotoBottom()
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(status.StopMsg{})
		return m, tea.Batch(cmd, wait)

	case chat.EventLoadFailed:
		m.notice = "Failed to load chatroom data"
		if errors.Is(ev.Err, api.ErrNotFound) {
			m.notice = "Chatroom not found"
		}
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(status.StopMsg{})
		return m, tea.Batch(cmd, wait)

	case chat.EventUpdated:
		// First content flips the bar from thinking to receiving.
		var cmd tea.Cmd
		if last, ok := m.session.Log().Last(); ok && last.SentBy == chat.SenderBot && last.Content != "" {
			m.statusBar, cmd = m.statusBar.Update(status.SetStateMsg{State: status.StateReceiving})
		}
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, tea.Batch(cmd, wait)

	case chat.EventQueryDone:
		m.updateViewportContent()
		m.viewport.GotoBottom()
		var cmd tea.Cmd
		m.statusBar, cmd = m.statusBar.Update(status.StopMsg{})
		return m, tea.Batch(cmd, wait)
	}

	return m, wait
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		return m, func() tea.Msg { return BackMsg{} }

	case tea.KeyCtrlT:
		if m.focus == FocusTranscript {
			m.focus = FocusInput
			m.textarea.Focus()
		} else {
			m.focus = FocusTranscript
			m.tab = TabTranscript
			m.textarea.Blur()
			m.updateSidePane()
		}
		return m, nil

	case tea.KeyTab:
		m.tab = (m.tab + 1) % 3
		if m.tab != TabTranscript && m.focus == FocusTranscript {
			m.focus = FocusInput
			m.textarea.Focus()
		}
		m.updateSidePane()
		return m, nil

	case tea.KeyCtrlY:
		return m, m.copySelectedMessage()

	case tea.KeyUp, tea.KeyDown:
		if msg.Alt {
			return m.moveMessageCursor(msg.Type == tea.KeyDown), nil
		}
		if m.focus == FocusTranscript {
			return m.moveTranscriptCursor(msg.Type == tea.KeyDown), nil
		}

	case tea.KeyEnter:
		if msg.Alt {
			break // Alt+Enter adds a newline
		}
		if m.focus == FocusTranscript {
			return m.seekToSelectedSegment(), nil
		}
		return m.submit(m.textarea.Value())
	}

	// Alt+digit submits a prompt suggestion while the log is empty.
	if msg.Alt && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
		suggestions := m.session.Suggestions()
		idx := int(msg.Runes[0] - '1')
		if idx < len(suggestions) {
			return m.submit(suggestions[idx].Content)
		}
		return m, nil
	}

	if m.focus == FocusTranscript {
		switch msg.String() {
		case "j":
			return m.moveTranscriptCursor(true), nil
		case "k":
			return m.moveTranscriptCursor(false), nil
		case " ":
			if p, ok := m.player.(interface {
				Play()
				Pause()
				Playing() bool
			}); ok {
				if p.Playing() {
					p.Pause()
				} else {
					p.Play()
				}
			}
			return m, nil
		}
		return m, nil
	}

	// Let the textarea handle the key
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	newHeight := m.calculateTextAreaHeight()
	if m.textarea.Height() != newHeight {
		m.textarea.SetHeight(newHeight)
		m.updateViewportHeight()
	}

	return m, cmd
}

// submit hands the query to the session. The send affordance is advisory:
// the session's pending gate is the real guard against double submission.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	if chat.IsBlank(text) || m.session.Pending() {
		return m, nil
	}

	m.session.SubmitQuery(m.submitCtx(), text)
	m.textarea.Reset()
	m.textarea.SetHeight(1)
	m.updateViewportHeight()
	m.notice = ""

	var cmd tea.Cmd
	m.statusBar, cmd = m.statusBar.Update(status.StartMsg{State: status.StateThinking})
	return m, cmd
}

// copySelectedMessage copies the selected message's literal content. With no
// explicit selection the newest message is copied.
func (m Model) copySelectedMessage() tea.Cmd {
	selected, ok := m.selectedMessage()
	if !ok {
		return nil
	}
	content := selected.Content
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(content)}
	}
}

func (m Model) selectedMessage() (api.Message, bool) {
	msgs := m.session.Messages(m.windowLimit)
	if len(msgs) == 0 {
		return api.Message{}, false
	}
	if m.messageCursor >= 0 && m.messageCursor < len(msgs) {
		return msgs[m.messageCursor], true
	}
	return msgs[len(msgs)-1], true
}

// moveMessageCursor walks the selection through the rendered window. Moving
// down past the newest message resumes following it.
func (m Model) moveMessageCursor(down bool) Model {
	msgs := m.session.Messages(m.windowLimit)
	if len(msgs) == 0 {
		return m
	}

	cur := m.messageCursor
	if cur < 0 || cur >= len(msgs) {
		cur = len(msgs) - 1
	}
	if down {
		if cur < len(msgs)-1 {
			cur++
		}
		if cur == len(msgs)-1 {
			cur = -1
		}
	} else if cur > 0 {
		cur--
	}
	m.messageCursor = cur
	m.updateViewportContent()
	return m
}

func (m Model) moveTranscriptCursor(down bool) Model {
	info := m.session.Info()
	if info == nil || len(info.TranscriptWTS) == 0 {
		return m
	}
	if down && m.transcriptCursor < len(info.TranscriptWTS)-1 {
		m.transcriptCursor++
	} else if !down && m.transcriptCursor > 0 {
		m.transcriptCursor--
	}
	m.updateSidePane()
	return m
}

// seekToSelectedSegment delegates the seek to the video collaborator; the
// transcript pane never touches playback state itself.
func (m Model) seekToSelectedSegment() Model {
	info := m.session.Info()
	if info == nil || m.transcriptCursor >= len(info.TranscriptWTS) {
		return m
	}
	m.player.Seek(info.TranscriptWTS[m.transcriptCursor].Start)
	return m
}

func (m *Model) updateActiveSegment() {
	info := m.session.Info()
	if info == nil {
		m.activeSegment = -1
		return
	}
	m.activeSegment = transcript.ActiveIndex(info.TranscriptWTS, m.currentTime)
}
