package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcodez811/youtubegpt/pkg/api"
	"github.com/Marcodez811/youtubegpt/pkg/chat"
	"github.com/Marcodez811/youtubegpt/pkg/logger"
	"github.com/Marcodez811/youtubegpt/pkg/player"
	"github.com/Marcodez811/youtubegpt/pkg/tui/chatroom"
	"github.com/Marcodez811/youtubegpt/pkg/tui/views"
)

// RootModel switches between the chatroom directory and an open session.
// Opening a session owns its teardown: the session's stream and the player's
// time subscription are both released when the user navigates back.
type RootModel struct {
	client       *api.Client
	windowLimit  int
	tickInterval time.Duration

	directory views.View
	current   views.View

	session *chat.Session
	player  player.Player

	width  int
	height int
}

func NewRootModel(client *api.Client, windowLimit int, tickInterval time.Duration) RootModel {
	directory := views.NewDirectory(client)
	return RootModel{
		client:       client,
		windowLimit:  windowLimit,
		tickInterval: tickInterval,
		directory:    directory,
		current:      directory,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.current.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.closeSession()
			return m, tea.Quit
		}

	case views.OpenRoomMsg:
		return m.openRoom(msg.RoomID)

	case chatroom.BackMsg:
		return m.backToDirectory()
	}

	model, cmd := m.current.Update(msg)
	if view, ok := model.(views.View); ok {
		m.current = view
	}
	return m, cmd
}

func (m RootModel) View() string {
	return m.current.View()
}

func (m RootModel) openRoom(roomID string) (tea.Model, tea.Cmd) {
	m.closeSession()

	m.session = chat.NewSession(m.client, roomID)
	m.player = player.NewStubPlayer(m.tickInterval)
	view := views.NewChatroomView(m.session, m.player, m.windowLimit)
	m.current = view
	logger.Debug("Switched to view %s (%s)", view.Name(), view.Description())

	cmds := []tea.Cmd{view.Init()}
	if m.width > 0 {
		cmds = append(cmds, func() tea.Msg {
			return tea.WindowSizeMsg{Width: m.width, Height: m.height}
		})
	}
	return m, tea.Batch(cmds...)
}

func (m RootModel) backToDirectory() (tea.Model, tea.Cmd) {
	m.closeSession()

	directory := views.NewDirectory(m.client)
	m.directory = directory
	m.current = directory
	logger.Debug("Switched to view %s (%s)", directory.Name(), directory.Description())

	cmds := []tea.Cmd{directory.Init()}
	if m.width > 0 {
		cmds = append(cmds, func() tea.Msg {
			return tea.WindowSizeMsg{Width: m.width, Height: m.height}
		})
	}
	return m, tea.Batch(cmds...)
}

// closeSession cancels any in-flight stream and stops the player's time
// subscription. Safe to call with nothing open.
func (m *RootModel) closeSession() {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}
}
