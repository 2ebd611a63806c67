package chatroom

import (
	"github.com/Marcodez811/youtubegpt/pkg/chat"
)

// BackMsg asks the root model to return to the chatroom directory.
type BackMsg struct{}

// sessionEventMsg wraps one event from the session's channel.
type sessionEventMsg chat.Event

// sessionClosedMsg signals the session event channel is exhausted.
type sessionClosedMsg struct{}

// playerTimeMsg carries the current playback time from the video
// collaborator's subscription.
type playerTimeMsg float64

// playerClosedMsg signals the time subscription is closed.
type playerClosedMsg struct{}

// copiedMsg reports the result of a copy-to-clipboard action.
type copiedMsg struct {
	err error
}
