package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Marcodez811/youtubegpt/pkg/api"
)

const (
	SenderUser   = "user"
	SenderBot    = "bot"
	SenderSystem = "system"
)

// ErrorSentinel is the fixed user-facing content a bot message takes when its
// answer stream fails. The underlying detail goes in Message.Error.
const ErrorSentinel = "Error processing request"

// NewUserMessage builds a user message for a chatroom. Ids are role-prefixed
// uuids so rapid submissions never collide.
func NewUserMessage(vidID, content string) api.Message {
	return api.Message{
		ID:        "user_" + uuid.NewString(),
		VidID:     vidID,
		SentBy:    SenderUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewBotPlaceholder builds the empty bot message that a streamed answer is
// reconciled into.
func NewBotPlaceholder(vidID string) api.Message {
	return api.Message{
		ID:        "bot_" + uuid.NewString(),
		VidID:     vidID,
		SentBy:    SenderBot,
		Content:   "",
		CreatedAt: time.Now(),
	}
}

func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
