package views

import "github.com/Marcodez811/youtubegpt/pkg/api"

// OpenRoomMsg asks the root model to open a chatroom session view.
type OpenRoomMsg struct {
	RoomID string
}

// roomsLoadedMsg carries the chatroom directory listing.
type roomsLoadedMsg struct {
	rooms []api.ChatRoom
	err   error
}

// deleteResultMsg reports the backend's answer to a delete.
type deleteResultMsg struct {
	roomID string
	err    error
}

// titleDebounceMsg fires after typing pauses; a preview is fetched only when
// the URL it carries is still what the input holds.
type titleDebounceMsg struct {
	url string
}

// titlePreviewMsg carries the pre-submission title lookup for a pasted URL.
type titlePreviewMsg struct {
	url   string
	title string
	err   error
}

// roomCreatedMsg reports chatroom creation for a submitted video URL.
type roomCreatedMsg struct {
	room *api.ChatRoom
	err  error
}
