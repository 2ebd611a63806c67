package status

import "time"

// ProcessState represents the current query state.
type ProcessState string

const (
	StateIdle      ProcessState = ""
	StateLoading   ProcessState = "loading"
	StateThinking  ProcessState = "thinking"
	StateReceiving ProcessState = "receiving"
)

func (s ProcessState) DisplayName() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateThinking:
		return "Thinking"
	case StateReceiving:
		return "Receiving"
	default:
		return ""
	}
}

func (s ProcessState) Icon() string {
	switch s {
	case StateLoading:
		return "…"
	case StateThinking:
		return "↑"
	case StateReceiving:
		return "↓"
	default:
		return ""
	}
}

// StartMsg activates the status bar in the given state.
type StartMsg struct {
	State ProcessState
}

// SetStateMsg changes the state while active.
type SetStateMsg struct {
	State ProcessState
}

// StopMsg deactivates the status bar.
type StopMsg struct{}

// TickMsg updates the elapsed timer.
type TickMsg time.Time
