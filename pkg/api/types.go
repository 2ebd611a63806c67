package api

import "time"

// ChatRoom is a directory entry for one video-backed conversation.
type ChatRoom struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChatRoomInfo is the full video metadata for a chatroom. Immutable once
// loaded; the id doubles as the video id.
type ChatRoomInfo struct {
	ID            string              `json:"id"`
	URL           string              `json:"url"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Summary       string              `json:"summary"`
	Transcript    string              `json:"transcript"`
	TranscriptWTS []TranscriptSegment `json:"transcript_wts"`
}

// TranscriptSegment is one timestamped slice of the video transcript.
// Segments are ordered by Start.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Message is one entry in a chatroom's conversation.
type Message struct {
	ID        string    `json:"id"`
	VidID     string    `json:"vid_id"`
	SentBy    string    `json:"sent_by"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Error     string    `json:"error,omitempty"`
}

// ChatRoomDetail is the GET /api/chatrooms/{id} payload.
type ChatRoomDetail struct {
	VidChat  ChatRoomInfo `json:"vid_chat"`
	Messages []Message    `json:"messages"`
}

// PromptSuggestion is a starter question offered while a chatroom is empty.
type PromptSuggestion struct {
	Intent  string `json:"intent"`
	Content string `json:"content"`
}

// QueryChunk is a single increment of a streamed answer. Content holds the
// bytes received since the previous chunk; a chunk with Done set carries no
// content and closes the stream, with Err recording how it ended.
type QueryChunk struct {
	Content   string
	Done      bool
	Err       error
	Timestamp time.Time
}
