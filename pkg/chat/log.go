package chat

import (
	"fmt"
	"sync"

	"github.com/Marcodez811/youtubegpt/pkg/api"
)

// MessageLog is the ordered message sequence for one chatroom. It is
// append-only, except that the single message currently open for streaming
// may have its content replaced until it is closed. Insertion order is
// chronological and senders never change after creation.
type MessageLog struct {
	mu       sync.RWMutex
	messages []api.Message
	ids      map[string]int // id -> index
	openID   string         // id of the message open for streaming mutation
}

func NewMessageLog() *MessageLog {
	return &MessageLog{
		ids: make(map[string]int),
	}
}

// Replace swaps the entire log contents, used when loading a chatroom's
// history. The swap is atomic with respect to readers. Any open streaming
// target is forgotten.
func (l *MessageLog) Replace(messages []api.Message) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = make([]api.Message, len(messages))
	copy(l.messages, messages)
	l.ids = make(map[string]int, len(messages))
	for i, msg := range messages {
		l.ids[msg.ID] = i
	}
	l.openID = ""
}

// Append adds a message to the tail of the log. Ids must be unique within
// the log.
func (l *MessageLog) Append(msg api.Message) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.ids[msg.ID]; exists {
		return fmt.Errorf("duplicate message id %q", msg.ID)
	}
	l.ids[msg.ID] = len(l.messages)
	l.messages = append(l.messages, msg)
	return nil
}

// Open marks a message as the streaming mutation target. Only one message
// may be open at a time.
func (l *MessageLog) Open(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.openID != "" && l.openID != id {
		return fmt.Errorf("message %q is already open for streaming", l.openID)
	}
	if _, exists := l.ids[id]; !exists {
		return fmt.Errorf("unknown message id %q", id)
	}
	l.openID = id
	return nil
}

// SetContent replaces the content of the open streaming target with the full
// accumulated text. This is a full replace, not an append: the caller's
// accumulator is authoritative.
func (l *MessageLog) SetContent(id, content string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.openID != id {
		return fmt.Errorf("message %q is not open for streaming", id)
	}
	l.messages[l.ids[id]].Content = content
	return nil
}

// Close finalizes the open streaming target with its final content. The
// message is immutable afterwards.
func (l *MessageLog) Close(id, content string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.openID != id {
		return fmt.Errorf("message %q is not open for streaming", id)
	}
	l.messages[l.ids[id]].Content = content
	l.openID = ""
	return nil
}

// Fail finalizes the open streaming target with the error sentinel and
// records the failure detail. The message is immutable afterwards.
func (l *MessageLog) Fail(id, detail string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.openID != id {
		return fmt.Errorf("message %q is not open for streaming", id)
	}
	idx := l.ids[id]
	l.messages[idx].Content = ErrorSentinel
	l.messages[idx].Error = detail
	l.openID = ""
	return nil
}

// Messages returns a snapshot of the full log.
func (l *MessageLog) Messages() []api.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]api.Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Window returns the newest limit messages in chronological order. Older
// messages are elided from the view, never removed from the log.
func (l *MessageLog) Window(limit int) []api.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	msgs := l.messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]api.Message, len(msgs))
	copy(out, msgs)
	return out
}

func (l *MessageLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// Get returns a message by id.
func (l *MessageLog) Get(id string) (api.Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, exists := l.ids[id]
	if !exists {
		return api.Message{}, false
	}
	return l.messages[idx], true
}

// Last returns the newest message.
func (l *MessageLog) Last() (api.Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.messages) == 0 {
		return api.Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
