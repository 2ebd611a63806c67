package chat

import (
	"context"
	"sync"

	"github.com/Marcodez811/youtubegpt/pkg/api"
	"github.com/Marcodez811/youtubegpt/pkg/logger"
	"github.com/Marcodez811/youtubegpt/pkg/transcript"
)

// Backend is the slice of the API client a session needs.
type Backend interface {
	GetChatRoom(ctx context.Context, id string) (*api.ChatRoomDetail, error)
	PromptSuggestions(ctx context.Context, id string) ([]api.PromptSuggestion, error)
	StreamQuery(ctx context.Context, id, query string) (<-chan api.QueryChunk, error)
}

// EventType classifies session events.
type EventType int

const (
	// EventUpdated signals the message log changed and should be re-rendered.
	EventUpdated EventType = iota
	// EventLoaded signals chatroom info and history finished loading.
	EventLoaded
	// EventLoadFailed signals the chatroom could not be loaded.
	EventLoadFailed
	// EventQueryDone signals the in-flight query finished, normally or not.
	EventQueryDone
)

// Event is a coarse notification from a session to its renderer.
type Event struct {
	Type EventType
	Err  error
}

// LoadState tracks chatroom loading.
type LoadState int

const (
	LoadPending LoadState = iota
	LoadReady
	LoadFailed
)

// Session is the state container for one viewed chatroom: loaded video
// metadata, the ordered message log, and the in-flight streaming query.
// All mutation goes through it, so the log's single-mutable-tail and
// atomic-replace invariants hold regardless of which view is attached.
type Session struct {
	mu          sync.Mutex
	backend     Backend
	roomID      string
	info        *api.ChatRoomInfo
	log         *MessageLog
	suggestions []api.PromptSuggestion
	loadState   LoadState
	loadErr     error
	pending     bool
	cancel      context.CancelFunc
	events      chan Event
}

func NewSession(backend Backend, roomID string) *Session {
	return &Session{
		backend: backend,
		roomID:  roomID,
		log:     NewMessageLog(),
		events:  make(chan Event, 64),
	}
}

// Events is the channel a renderer listens on. Intermediate log updates may
// be coalesced; the renderer reads fresh snapshots, so no update is lost.
// Terminal events (loaded, load-failed, query-done) are always delivered,
// even if the renderer fell behind during streaming.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Load fetches the chatroom's info and message history and replaces both
// atomically. On failure the session stays in an explicit failed state; the
// error is reported through the event channel, never thrown at the renderer.
func (s *Session) Load(ctx context.Context) {
	detail, err := s.backend.GetChatRoom(ctx, s.roomID)
	if err != nil {
		logger.Error("Failed to load chatroom %s: %v", s.roomID, err)
		s.mu.Lock()
		s.loadState = LoadFailed
		s.loadErr = err
		s.mu.Unlock()
		s.emitTerminal(Event{Type: EventLoadFailed, Err: err})
		return
	}

	s.mu.Lock()
	info := detail.VidChat
	if info.Transcript == "" {
		info.Transcript = transcript.Join(info.TranscriptWTS)
	}
	s.info = &info
	s.log.Replace(detail.Messages)
	s.loadState = LoadReady
	s.loadErr = nil
	s.suggestions = nil
	s.mu.Unlock()

	// Suggestions exist only for a chatroom that has never been spoken in.
	if len(detail.Messages) == 0 {
		if suggestions, err := s.backend.PromptSuggestions(ctx, s.roomID); err != nil {
			logger.Warn("Failed to fetch prompt suggestions: %v", err)
		} else {
			s.mu.Lock()
			s.suggestions = suggestions
			s.mu.Unlock()
		}
	}

	s.emitTerminal(Event{Type: EventLoaded})
}

// SubmitQuery issues a question against the chatroom and reconciles the
// streamed answer into the message log. Blank text and an unloaded room are
// silent no-ops. Re-entry while a query is pending is rejected; the send
// affordance should already be disabled, this makes the gate real.
//
// Two messages are appended immediately: the user's question and an empty
// bot placeholder. The placeholder's content is then replaced with the full
// accumulated answer on every chunk, so the renderer can treat it as
// authoritative. On any transport, HTTP, or stream error the placeholder
// becomes the fixed sentinel with the detail on Message.Error; the user
// message is never removed.
func (s *Session) SubmitQuery(ctx context.Context, text string) {
	if IsBlank(text) {
		return
	}

	s.mu.Lock()
	if s.loadState != LoadReady || s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = true
	s.suggestions = nil

	userMsg := NewUserMessage(s.roomID, text)
	botMsg := NewBotPlaceholder(s.roomID)
	if err := s.log.Append(userMsg); err != nil {
		// Unreachable with uuid ids, but never leave pending stuck.
		s.pending = false
		s.mu.Unlock()
		logger.Error("Failed to append user message: %v", err)
		return
	}
	_ = s.log.Append(botMsg)
	_ = s.log.Open(botMsg.ID)

	streamCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.emit(Event{Type: EventUpdated})

	go s.runQuery(streamCtx, cancel, botMsg.ID, text)
}

// runQuery drives the read loop for one streamed answer. Chunk application
// is strictly sequential and in arrival order; cancel is released on every
// exit path so no network handle dangles.
func (s *Session) runQuery(ctx context.Context, cancel context.CancelFunc, botID, query string) {
	defer cancel()
	defer func() {
		s.mu.Lock()
		s.pending = false
		s.cancel = nil
		s.mu.Unlock()
	}()

	chunks, err := s.backend.StreamQuery(ctx, s.roomID, query)
	if err != nil {
		logger.Error("Query failed before streaming: %v", err)
		_ = s.log.Fail(botID, err.Error())
		s.emitTerminal(Event{Type: EventQueryDone, Err: err})
		return
	}

	var accumulated string
	for chunk := range chunks {
		if chunk.Err != nil {
			logger.Error("Query stream failed: %v", chunk.Err)
			_ = s.log.Fail(botID, chunk.Err.Error())
			s.emitTerminal(Event{Type: EventQueryDone, Err: chunk.Err})
			return
		}
		if chunk.Done {
			break
		}
		if chunk.Content == "" {
			continue
		}
		accumulated += chunk.Content
		_ = s.log.SetContent(botID, accumulated)
		s.emit(Event{Type: EventUpdated})
	}

	_ = s.log.Close(botID, accumulated)
	s.emitTerminal(Event{Type: EventQueryDone})
}

// CancelQuery aborts any in-flight query. Safe to call at any time.
func (s *Session) CancelQuery() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Close tears the session down, cancelling any in-flight stream. Called when
// the active chatroom changes or the view unmounts.
func (s *Session) Close() {
	s.CancelQuery()
}

func (s *Session) RoomID() string {
	return s.roomID
}

// Info returns the loaded chatroom metadata, nil until Load succeeds.
func (s *Session) Info() *api.ChatRoomInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

func (s *Session) State() (LoadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadState, s.loadErr
}

// Pending reports whether a query is in flight. The send affordance is
// disabled while true.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Suggestions returns the prompt suggestions, present only while the log has
// never held a message since the last load.
func (s *Session) Suggestions() []api.PromptSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log.Len() > 0 {
		return nil
	}
	return s.suggestions
}

// Messages returns the newest limit messages, chronological.
func (s *Session) Messages(limit int) []api.Message {
	return s.log.Window(limit)
}

// Log exposes the underlying message log.
func (s *Session) Log() *MessageLog {
	return s.log
}

// emit delivers an event without ever blocking the streaming loop. If the
// renderer is behind, coalescing is fine: it re-reads the log on each event.
func (s *Session) emit(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// emitTerminal delivers an event that must not be lost. When the buffer is
// full the oldest queued event is evicted to make room: intermediate updates
// are re-derivable from log snapshots, a lost terminal event would leave the
// renderer waiting forever. The session is the only sender, so the
// evict-then-retry loop terminates.
func (s *Session) emitTerminal(ev Event) {
	for {
		select {
		case s.events <- ev:
			return
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}
