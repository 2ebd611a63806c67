package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserMessage(t *testing.T) {
	t.Run("should build a user message with a unique id", func(t *testing.T) {
		msg := NewUserMessage("vid1", "What happens at 2:30?")
		assert.True(t, strings.HasPrefix(msg.ID, "user_"))
		assert.Equal(t, "vid1", msg.VidID)
		assert.Equal(t, SenderUser, msg.SentBy)
		assert.Equal(t, "What happens at 2:30?", msg.Content)
		assert.False(t, msg.CreatedAt.IsZero())

		other := NewUserMessage("vid1", "What happens at 2:30?")
		assert.NotEqual(t, msg.ID, other.ID)
	})
}

func TestNewBotPlaceholder(t *testing.T) {
	t.Run("should build an empty bot message", func(t *testing.T) {
		msg := NewBotPlaceholder("vid1")
		assert.True(t, strings.HasPrefix(msg.ID, "bot_"))
		assert.Equal(t, SenderBot, msg.SentBy)
		assert.Empty(t, msg.Content)
		assert.Empty(t, msg.Error)
	})
}

func TestIsBlank(t *testing.T) {
	t.Run("should detect blank content", func(t *testing.T) {
		assert.True(t, IsBlank(""))
		assert.True(t, IsBlank("   "))
		assert.True(t, IsBlank("\t\n"))
		assert.False(t, IsBlank("hello"))
		assert.False(t, IsBlank("  hello  "))
	})
}
