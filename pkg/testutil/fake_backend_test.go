package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcodez811/youtubegpt/pkg/api"
)

func drain(t *testing.T, chunks <-chan api.QueryChunk) (string, api.QueryChunk) {
	t.Helper()

	var content string
	for chunk := range chunks {
		if chunk.Done {
			return content, chunk
		}
		content += chunk.Content
	}
	t.Fatal("stream closed without a terminal chunk")
	return "", api.QueryChunk{}
}

func TestFakeBackend(t *testing.T) {
	t.Run("should stream the response in chunks", func(t *testing.T) {
		backend := NewFakeBackend("Hello, this is a fake answer.")
		backend.SetChunkSize(4)

		chunks, err := backend.StreamQuery(context.Background(), "vid1", "Hi")
		require.NoError(t, err)

		content, terminal := drain(t, chunks)
		assert.Equal(t, "Hello, this is a fake answer.", content)
		assert.NoError(t, terminal.Err)
		assert.Equal(t, []string{"Hi"}, backend.Queries())
	})

	t.Run("should fail after the configured chunk count", func(t *testing.T) {
		backend := NewFakeBackend("A fairly long response body")
		backend.SetChunkSize(3)
		backend.SetFailAfter(2, "simulated failure")

		chunks, err := backend.StreamQuery(context.Background(), "vid1", "Hi")
		require.NoError(t, err)

		content, terminal := drain(t, chunks)
		assert.Equal(t, "A fai", content)
		require.Error(t, terminal.Err)
		assert.Contains(t, terminal.Err.Error(), "simulated failure")
	})

	t.Run("should stop on context cancellation", func(t *testing.T) {
		backend := NewFakeBackend("A response streamed very slowly over many chunks")
		backend.SetChunkSize(2)
		backend.SetChunkDelay(20 * time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		chunks, err := backend.StreamQuery(ctx, "vid1", "Hi")
		require.NoError(t, err)

		<-chunks
		cancel()

		var terminal api.QueryChunk
		for chunk := range chunks {
			if chunk.Done {
				terminal = chunk
			}
		}
		assert.ErrorIs(t, terminal.Err, context.Canceled)
	})

	t.Run("should return the configured stream error up front", func(t *testing.T) {
		backend := NewFakeBackend("never sent")
		backend.SetStreamError(assert.AnError)

		chunks, err := backend.StreamQuery(context.Background(), "vid1", "Hi")
		assert.Nil(t, chunks)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should serve the configured chatroom detail", func(t *testing.T) {
		backend := NewFakeBackend("answer")
		detail, err := backend.GetChatRoom(context.Background(), "vid1")
		require.NoError(t, err)
		assert.Equal(t, "Test Video", detail.VidChat.Title)

		backend.Detail = nil
		_, err = backend.GetChatRoom(context.Background(), "vid1")
		assert.ErrorIs(t, err, api.ErrNotFound)
	})
}
