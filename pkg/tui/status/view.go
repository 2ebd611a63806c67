package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Marcodez811/youtubegpt/pkg/tui/theme"
)

func (m Model) View() string {
	// Hide the entire status bar when not active
	if !m.isActive || m.width == 0 {
		return ""
	}

	var components []string

	components = append(components, m.spinner.View())

	if name := m.state.DisplayName(); name != "" {
		style := lipgloss.NewStyle().Foreground(theme.ColorBase05)
		components = append(components, style.Render(name))
	}

	if m.timer > 0 {
		minutes := int(m.timer.Minutes())
		seconds := int(m.timer.Seconds()) % 60
		style := lipgloss.NewStyle().Foreground(theme.ColorBase04)
		components = append(components, style.Render(fmt.Sprintf("%02d:%02d", minutes, seconds)))
	}

	if icon := m.state.Icon(); icon != "" {
		style := lipgloss.NewStyle().Foreground(theme.ColorOrange)
		components = append(components, style.Render(icon))
	}

	separator := lipgloss.NewStyle().Foreground(theme.ColorBase03).Render(" | ")
	statusLine := ""
	for i, component := range components {
		if i > 0 {
			statusLine += separator
		}
		statusLine += component
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Background(theme.ColorBase01).
		Padding(0, 1).
		Render(statusLine)
}
