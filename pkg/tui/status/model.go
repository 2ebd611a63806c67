package status

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/Marcodez811/youtubegpt/pkg/tui/theme"
)

// Model is the one-line status bar shown while a chatroom is loading or a
// query is streaming.
type Model struct {
	spinner   spinner.Model
	state     ProcessState
	timer     time.Duration
	startTime time.Time
	isActive  bool
	width     int
}

func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorPurple)

	return Model{
		spinner: s,
	}
}

// Active reports whether the bar is currently shown.
func (m Model) Active() bool {
	return m.isActive
}
