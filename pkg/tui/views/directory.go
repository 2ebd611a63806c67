package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Marcodez811/youtubegpt/pkg/api"
	"github.com/Marcodez811/youtubegpt/pkg/logger"
	"github.com/Marcodez811/youtubegpt/pkg/tui/theme"
	"github.com/Marcodez811/youtubegpt/pkg/videourl"
)

// titleDebounce is how long typing must pause before the title preview is
// fetched.
const titleDebounce = 400 * time.Millisecond

// Directory is the chatroom listing: open, create, and delete chatrooms.
type Directory struct {
	client *api.Client

	rooms   []api.ChatRoom
	cursor  int
	loading bool
	notice  string

	// delete-in-flight state: the entry stays listed, visually pending,
	// until the backend confirms.
	pendingDelete string

	// new-chatroom prompt
	creating     bool
	urlInput     textinput.Model
	titlePreview string

	styles *theme.Styles
	width  int
	height int
}

func NewDirectory(client *api.Client) Directory {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.CharLimit = 0
	ti.Width = 60

	return Directory{
		client:   client,
		loading:  true,
		urlInput: ti,
		styles:   theme.DefaultStyles(),
	}
}

func (d Directory) Init() tea.Cmd {
	return d.fetchRooms()
}

func (d Directory) fetchRooms() tea.Cmd {
	client := d.client
	return func() tea.Msg {
		rooms, err := client.ListChatRooms(context.Background())
		return roomsLoadedMsg{rooms: rooms, err: err}
	}
}

func (d Directory) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil

	case roomsLoadedMsg:
		d.loading = false
		if msg.err != nil {
			logger.Error("Failed to load chatrooms: %v", msg.err)
			d.notice = "Failed to load chatrooms"
			return d, nil
		}
		d.rooms = msg.rooms
		if d.cursor >= len(d.rooms) {
			d.cursor = len(d.rooms) - 1
		}
		if d.cursor < 0 {
			d.cursor = 0
		}
		return d, nil

	case deleteResultMsg:
		return d.handleDeleteResult(msg)

	case titleDebounceMsg:
		return d, d.fetchTitlePreview(msg)

	case titlePreviewMsg:
		// Stale previews for an edited URL are ignored.
		if d.creating && msg.url == d.urlInput.Value() && msg.err == nil {
			d.titlePreview = msg.title
		}
		return d, nil

	case roomCreatedMsg:
		if msg.err != nil {
			logger.Error("Failed to create chatroom: %v", msg.err)
			d.notice = "Failed to create chatroom"
			return d, nil
		}
		d.creating = false
		d.urlInput.Reset()
		d.titlePreview = ""
		return d, func() tea.Msg { return OpenRoomMsg{RoomID: msg.room.ID} }

	case tea.KeyMsg:
		if d.creating {
			return d.handleCreateKey(msg)
		}
		return d.handleListKey(msg)
	}

	return d, nil
}

// handleDeleteResult applies optimistic-after-confirmation removal: the
// entry leaves the list only once the backend has confirmed, and a failure
// leaves the listing untouched.
func (d Directory) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	d.pendingDelete = ""
	if msg.err != nil {
		logger.Error("Failed to delete chatroom %s: %v", msg.roomID, msg.err)
		d.notice = "Failed to delete chatroom"
		return d, nil
	}

	kept := d.rooms[:0:0]
	for _, room := range d.rooms {
		if room.ID != msg.roomID {
			kept = append(kept, room)
		}
	}
	d.rooms = kept
	if d.cursor >= len(d.rooms) && d.cursor > 0 {
		d.cursor--
	}
	d.notice = "Chatroom deleted"
	return d, nil
}

func (d Directory) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.rooms)-1 {
			d.cursor++
		}
	case "enter":
		if d.cursor < len(d.rooms) {
			roomID := d.rooms[d.cursor].ID
			return d, func() tea.Msg { return OpenRoomMsg{RoomID: roomID} }
		}
	case "r":
		d.loading = true
		d.notice = ""
		return d, d.fetchRooms()
	case "n":
		d.creating = true
		d.notice = ""
		d.urlInput.Focus()
		return d, textinput.Blink
	case "d":
		return d.startDelete()
	case "q":
		return d, tea.Quit
	}
	return d, nil
}

func (d Directory) startDelete() (tea.Model, tea.Cmd) {
	if d.cursor >= len(d.rooms) || d.pendingDelete != "" {
		return d, nil
	}
	roomID := d.rooms[d.cursor].ID
	d.pendingDelete = roomID
	d.notice = ""

	client := d.client
	return d, func() tea.Msg {
		err := client.DeleteChatRoom(context.Background(), roomID)
		return deleteResultMsg{roomID: roomID, err: err}
	}
}

func (d Directory) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		d.creating = false
		d.urlInput.Reset()
		d.titlePreview = ""
		return d, nil

	case tea.KeyEnter:
		url := strings.TrimSpace(d.urlInput.Value())
		if !videourl.Validate(url) {
			d.notice = "Not a valid YouTube video URL"
			return d, nil
		}
		client := d.client
		return d, func() tea.Msg {
			room, err := client.CreateChatRoom(context.Background(), url)
			return roomCreatedMsg{room: room, err: err}
		}
	}

	var cmd tea.Cmd
	d.urlInput, cmd = d.urlInput.Update(msg)

	// Preview the video title once the URL looks valid. The fetch is
	// debounced: every keystroke schedules a tick, and only the tick whose
	// URL still matches the input fires a request.
	url := strings.TrimSpace(d.urlInput.Value())
	if videourl.Validate(url) {
		return d, tea.Batch(cmd, tea.Tick(titleDebounce, func(time.Time) tea.Msg {
			return titleDebounceMsg{url: url}
		}))
	}
	d.titlePreview = ""
	return d, cmd
}

// fetchTitlePreview resolves the debounced URL, unless the input has moved on.
func (d Directory) fetchTitlePreview(msg titleDebounceMsg) tea.Cmd {
	if !d.creating || msg.url != strings.TrimSpace(d.urlInput.Value()) {
		return nil
	}
	client := d.client
	url := msg.url
	return func() tea.Msg {
		title, err := client.FetchTitle(context.Background(), url)
		return titlePreviewMsg{url: url, title: title, err: err}
	}
}

func (d Directory) View() string {
	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Current Video Chatrooms"))
	b.WriteString("\n\n")

	switch {
	case d.creating:
		b.WriteString("Paste the URL of a YouTube video you'd like to discuss\n\n")
		b.WriteString(d.urlInput.View())
		b.WriteString("\n")
		if d.titlePreview != "" {
			b.WriteString(d.styles.Suggestion.Render("▸ " + d.titlePreview))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(d.styles.Help.Render("enter create · esc cancel"))

	case d.loading:
		b.WriteString(d.styles.Help.Render("Loading chatrooms..."))

	case len(d.rooms) == 0:
		b.WriteString(d.styles.Help.Render("No chatrooms yet. Press n to create one."))

	default:
		for i, room := range d.rooms {
			line := room.Title
			if line == "" {
				line = room.ID
			}
			switch {
			case room.ID == d.pendingDelete:
				line = d.styles.ListPending.Render(line + " (deleting...)")
			case i == d.cursor:
				line = d.styles.ListSelected.Render("> " + line)
			default:
				line = d.styles.ListItem.Render("  " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if d.notice != "" {
		b.WriteString(d.styles.Notice.Render(d.notice))
	} else if !d.creating {
		b.WriteString(d.styles.Help.Render("enter open · n new · d delete · r refresh · q quit"))
	}

	if d.width > 0 {
		return lipgloss.NewStyle().Padding(1, 2).Width(d.width).Render(b.String())
	}
	return b.String()
}

func (d Directory) Name() string { return "Chatrooms" }

func (d Directory) Description() string {
	return fmt.Sprintf("%d chatrooms", len(d.rooms))
}
