package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcodez811/youtubegpt/pkg/api"
	"github.com/Marcodez811/youtubegpt/pkg/config"
)

// StartApp wires the backend client from config and runs the TUI program.
func StartApp() error {
	cfg := config.Get()

	client := api.NewClientWithTimeout(cfg.Server.URL, cfg.Server.Timeout)
	root := NewRootModel(client, cfg.Chat.Window, cfg.Player.TickInterval)

	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
