package chatroom

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const maxTextAreaHeight = 6

// calculateTextAreaHeight determines the visual height of the textarea based
// on its content and wrapping, mirroring the web UI's auto-growing input.
func (m *Model) calculateTextAreaHeight() int {
	content := m.textarea.Value()
	if content == "" {
		return 1
	}

	textWidth := m.textarea.Width()
	if textWidth <= 0 {
		textWidth = m.chatPaneWidth() - 4
		if textWidth <= 0 {
			textWidth = 80 // fallback
		}
	}

	totalVisualLines := 0
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			totalVisualLines++
			continue
		}
		lineWidth := runewidth.StringWidth(line)
		visualLines := (lineWidth + textWidth - 1) / textWidth
		if visualLines < 1 {
			visualLines = 1
		}
		totalVisualLines += visualLines
	}

	if totalVisualLines > maxTextAreaHeight {
		return maxTextAreaHeight
	}
	if totalVisualLines < 1 {
		return 1
	}
	return totalVisualLines
}

// chatPaneWidth is the right-hand chat column; the side pane takes the rest.
func (m *Model) chatPaneWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - m.sidePaneWidth() - 1
}

func (m *Model) sidePaneWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width * 2 / 5
	if w < 24 {
		w = 24
	}
	return w
}

// updateViewportHeight adjusts the message viewport after textarea growth.
func (m *Model) updateViewportHeight() {
	if m.height > 0 {
		m.viewport.Height = m.height - m.calculateTextAreaHeight() - 4
	}
}

// handleWindowResize updates all dimensions when window size changes.
func (m *Model) handleWindowResize(width, height int) {
	m.width = width
	m.height = height

	m.textarea.SetWidth(m.chatPaneWidth() - 2)
	textAreaHeight := m.calculateTextAreaHeight()
	m.textarea.SetHeight(textAreaHeight)

	m.viewport.Width = m.chatPaneWidth()
	m.viewport.Height = height - textAreaHeight - 4

	m.sidePane.Width = m.sidePaneWidth()
	m.sidePane.Height = height - 4

	m.updateViewportContent()
	m.updateSidePane()
}
