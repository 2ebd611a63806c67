package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcodez811/youtubegpt/pkg/chat"
	"github.com/Marcodez811/youtubegpt/pkg/player"
	"github.com/Marcodez811/youtubegpt/pkg/tui/chatroom"
)

// ChatroomView wraps the chatroom model to implement the View interface.
type ChatroomView struct {
	model tea.Model
	name  string
}

// NewChatroomView creates a session view for one chatroom.
func NewChatroomView(session *chat.Session, p player.Player, windowLimit int) ChatroomView {
	return ChatroomView{
		model: chatroom.New(session, p, windowLimit),
		name:  session.RoomID(),
	}
}

func (v ChatroomView) Init() tea.Cmd {
	return v.model.Init()
}

func (v ChatroomView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := v.model.Update(msg)
	v.model = model
	return v, cmd
}

func (v ChatroomView) View() string {
	return v.model.View()
}

func (v ChatroomView) Name() string { return v.name }

func (v ChatroomView) Description() string { return "Chatroom session" }
