// Package testutil provides fakes for the backend HTTP contract.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Marcodez811/youtubegpt/pkg/api"
)

// FakeBackend implements the session's backend interface in memory, with a
// configurable streamed answer: chunk size, per-chunk delay, and an optional
// failure after N chunks.
type FakeBackend struct {
	mu sync.Mutex

	Detail      *api.ChatRoomDetail
	DetailErr   error
	Suggestions []api.PromptSuggestion

	response     string
	chunkSize    int
	chunkDelay   time.Duration
	failAfter    int // fail after N chunks (0 = no failure)
	errorMessage string
	streamErr    error // returned before any chunk is sent

	queries []string
}

func NewFakeBackend(response string) *FakeBackend {
	return &FakeBackend{
		response:  response,
		chunkSize: 5,
		Detail: &api.ChatRoomDetail{
			VidChat: api.ChatRoomInfo{ID: "vid1", Title: "Test Video"},
		},
	}
}

// SetChunkSize sets the number of bytes per chunk.
func (b *FakeBackend) SetChunkSize(size int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chunkSize = size
}

// SetChunkDelay sets the delay between chunks.
func (b *FakeBackend) SetChunkDelay(delay time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chunkDelay = delay
}

// SetFailAfter configures the stream to fail after N chunks.
func (b *FakeBackend) SetFailAfter(chunks int, errorMessage string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failAfter = chunks
	b.errorMessage = errorMessage
}

// SetStreamError makes StreamQuery fail before streaming starts, as a
// refused connection or non-2xx status would.
func (b *FakeBackend) SetStreamError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.streamErr = err
}

// Queries returns every query text received, in order.
func (b *FakeBackend) Queries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.queries))
	copy(out, b.queries)
	return out
}

func (b *FakeBackend) GetChatRoom(ctx context.Context, id string) (*api.ChatRoomDetail, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.DetailErr != nil {
		return nil, b.DetailErr
	}
	if b.Detail == nil {
		return nil, api.ErrNotFound
	}
	return b.Detail, nil
}

func (b *FakeBackend) PromptSuggestions(ctx context.Context, id string) ([]api.PromptSuggestion, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Suggestions, nil
}

func (b *FakeBackend) StreamQuery(ctx context.Context, id, query string) (<-chan api.QueryChunk, error) {
	b.mu.Lock()
	b.queries = append(b.queries, query)
	response := b.response
	chunkSize := b.chunkSize
	chunkDelay := b.chunkDelay
	failAfter := b.failAfter
	errorMessage := b.errorMessage
	streamErr := b.streamErr
	b.mu.Unlock()

	if streamErr != nil {
		return nil, streamErr
	}

	chunks := make(chan api.QueryChunk, 64)

	go func() {
		defer close(chunks)

		chunkCount := 0
		for i := 0; i < len(response); i += chunkSize {
			chunkCount++
			if failAfter > 0 && chunkCount > failAfter {
				msg := errorMessage
				if msg == "" {
					msg = "simulated streaming error"
				}
				chunks <- api.QueryChunk{Done: true, Err: fmt.Errorf("%s", msg), Timestamp: time.Now()}
				return
			}

			end := i + chunkSize
			if end > len(response) {
				end = len(response)
			}

			if chunkDelay > 0 {
				select {
				case <-time.After(chunkDelay):
				case <-ctx.Done():
					chunks <- api.QueryChunk{Done: true, Err: ctx.Err(), Timestamp: time.Now()}
					return
				}
			}

			select {
			case chunks <- api.QueryChunk{Content: response[i:end], Timestamp: time.Now()}:
			case <-ctx.Done():
				chunks <- api.QueryChunk{Done: true, Err: ctx.Err(), Timestamp: time.Now()}
				return
			}
		}

		chunks <- api.QueryChunk{Done: true, Timestamp: time.Now()}
	}()

	return chunks, nil
}
