package chatroom

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Marcodez811/youtubegpt/pkg/chat"
	"github.com/Marcodez811/youtubegpt/pkg/player"
	"github.com/Marcodez811/youtubegpt/pkg/tui/status"
	"github.com/Marcodez811/youtubegpt/pkg/tui/theme"
)

// SideTab selects which pane of video metadata is shown next to the chat.
type SideTab int

const (
	TabInfo SideTab = iota
	TabTranscript
	TabSummary
)

func (t SideTab) Title() string {
	switch t {
	case TabInfo:
		return "Video Info"
	case TabTranscript:
		return "Transcript"
	case TabSummary:
		return "Summary"
	default:
		return ""
	}
}

// Focus selects which half of the screen receives navigation keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusTranscript
)

// Model is the chatroom view: message log on the right, video metadata panes
// on the left, input at the bottom.
type Model struct {
	session *chat.Session
	player  player.Player

	viewport  viewport.Model
	sidePane  viewport.Model
	textarea  textarea.Model
	statusBar status.Model
	styles    *theme.Styles

	tab              SideTab
	focus            Focus
	transcriptCursor int
	// messageCursor selects a message in the rendered window for copying;
	// -1 follows the newest message.
	messageCursor    int
	currentTime      float64
	activeSegment    int
	windowLimit      int
	notice           string
	width            int
	height           int
}

// New builds a chatroom model around a session. The session is not loaded
// yet; Init kicks that off.
func New(session *chat.Session, p player.Player, windowLimit int) Model {
	ta := textarea.New()
	ta.Focus()
	ta.Placeholder = "Ask about the video content..."
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline.SetEnabled(true)

	if windowLimit <= 0 {
		windowLimit = 50
	}

	return Model{
		session:       session,
		player:        p,
		textarea:      ta,
		viewport:      viewport.New(80, 20),
		sidePane:      viewport.New(40, 20),
		statusBar:     status.New(),
		styles:        theme.DefaultStyles(),
		activeSegment: -1,
		messageCursor: -1,
		windowLimit:   windowLimit,
	}
}

// Session exposes the backing session, used by the root model for teardown.
func (m Model) Session() *chat.Session {
	return m.session
}

// submitCtx is the lifetime of streamed queries. Streams are cancelled
// through the session's own handle, so background context is right here.
func (m Model) submitCtx() context.Context {
	return context.Background()
}
