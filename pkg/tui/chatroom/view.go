package chatroom

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Marcodez811/youtubegpt/pkg/api"
	"github.com/Marcodez811/youtubegpt/pkg/chat"
	"github.com/Marcodez811/youtubegpt/pkg/transcript"
	"github.com/Marcodez811/youtubegpt/pkg/videourl"
)

func (m Model) View() string {
	side := m.renderSidePane()
	chatPane := m.renderChatPane()

	body := lipgloss.JoinHorizontal(lipgloss.Top, side, " ", chatPane)

	footer := m.statusBar.View()
	if footer == "" {
		footer = m.renderFooter()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderChatPane() string {
	var sections []string
	sections = append(sections, m.viewport.View())

	if suggestions := m.session.Suggestions(); len(suggestions) > 0 {
		sections = append(sections, m.renderSuggestions(suggestions))
	}

	sections = append(sections, "", m.textarea.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFooter() string {
	if m.notice != "" {
		return m.styles.Notice.Render(m.notice)
	}
	help := "enter send · tab panes · ctrl+t transcript · alt+↑/↓ select · ctrl+y copy · esc back"
	if m.session.Pending() {
		help = "waiting for answer..."
	}
	return m.styles.Help.Render(help)
}

func (m Model) renderSuggestions(suggestions []api.PromptSuggestion) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Suggested questions"))
	b.WriteString("\n")
	for i, s := range suggestions {
		if i >= 9 {
			break
		}
		b.WriteString(m.styles.Suggestion.Render(fmt.Sprintf("  alt+%d  %s", i+1, s.Content)))
		b.WriteString("\n")
	}
	return b.String()
}

// updateViewportContent re-renders the message log into the viewport. Called
// on every log mutation: streamed content is a full replace, so rendering
// from the snapshot is always correct.
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(m.renderLog()))
}

// renderLog renders the windowed message log, newest last, marking the
// message selected for copying.
func (m *Model) renderLog() string {
	messages := m.session.Messages(m.windowLimit)
	if len(messages) == 0 {
		return m.styles.Help.Render("No messages yet.")
	}

	rendered := make([]string, 0, len(messages))
	for i, msg := range messages {
		rendered = append(rendered, m.renderMessage(msg, i == m.messageCursor))
	}
	return strings.Join(rendered, "\n\n")
}

func (m *Model) renderMessage(msg api.Message, selected bool) string {
	var senderStyle lipgloss.Style
	var sender string
	switch msg.SentBy {
	case chat.SenderUser:
		senderStyle = m.styles.UserMessage
		sender = "You"
	case chat.SenderBot:
		senderStyle = m.styles.BotMessage
		sender = "AI"
	default:
		senderStyle = m.styles.SystemMessage
		sender = "System"
	}

	ts := m.styles.Timestamp.Render(msg.CreatedAt.Format("15:04"))
	header := senderStyle.Render(sender) + " " + ts
	if selected {
		header = m.styles.SegmentSelected.Render(header + " ⎘")
	}

	content := msg.Content
	if content == "" {
		content = m.styles.Help.Render("...")
	}
	if msg.Error != "" {
		content = m.styles.ErrorMessage.Render(content)
	}

	return header + "\n" + content
}

func (m *Model) updateSidePane() {
	info := m.session.Info()
	if info == nil {
		m.sidePane.SetContent(m.styles.Help.Render("Loading video..."))
		return
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case TabInfo:
		b.WriteString(m.styles.Title.Render(info.Title))
		b.WriteString("\n")
		if id := videourl.VideoID(info.URL); id != "" {
			b.WriteString(m.styles.Help.Render(videourl.ThumbnailURL(id)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if info.Description != "" {
			b.WriteString(info.Description)
		} else {
			b.WriteString(m.styles.Help.Render("No description available."))
		}

	case TabTranscript:
		b.WriteString(m.renderTranscript(info))

	case TabSummary:
		b.WriteString(m.styles.Title.Render("Overview"))
		b.WriteString("\n\n")
		if info.Summary != "" {
			b.WriteString(info.Summary)
		} else {
			// Degrade to a placeholder rather than blocking the pane.
			b.WriteString(m.styles.Help.Render("No summary available."))
		}
	}

	m.sidePane.SetContent(lipgloss.NewStyle().Width(m.sidePane.Width).Render(b.String()))
}

func (m *Model) renderTabBar() string {
	tabs := make([]string, 0, 3)
	for _, t := range []SideTab{TabInfo, TabTranscript, TabSummary} {
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(t.Title()))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(t.Title()))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m *Model) renderTranscript(info *api.ChatRoomInfo) string {
	if len(info.TranscriptWTS) == 0 {
		// No timestamped segments; fall back to the flat transcript text.
		if info.Transcript != "" {
			return info.Transcript
		}
		return m.styles.Help.Render("No transcript available.")
	}

	var b strings.Builder
	for i, seg := range info.TranscriptWTS {
		line := m.styles.SegmentTime.Render(transcript.FormatStart(seg.Start)) + " " + seg.Text
		if i == m.activeSegment {
			line = m.styles.SegmentActive.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		if m.focus == FocusTranscript && i == m.transcriptCursor {
			line = m.styles.SegmentSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSidePane() string {
	return m.sidePane.View()
}
