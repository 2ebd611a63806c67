package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListChatRooms(t *testing.T) {
	t.Run("should list chatrooms", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/chatrooms", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"abc","title":"First Video"},{"id":"def","title":"Second Video"}]`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		rooms, err := client.ListChatRooms(context.Background())
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "abc", rooms[0].ID)
		assert.Equal(t, "First Video", rooms[0].Title)
		assert.Equal(t, "def", rooms[1].ID)
	})

	t.Run("should return empty directory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		rooms, err := client.ListChatRooms(context.Background())
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})
}

func TestGetChatRoom(t *testing.T) {
	t.Run("should return chatroom detail with history", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chatrooms/abc", r.URL.Path)
			w.Write([]byte(`{
				"vid_chat": {
					"id": "abc",
					"url": "https://www.youtube.com/watch?v=abc",
					"title": "Test Video",
					"summary": "A summary.",
					"transcript_wts": [{"text": "hello", "start": 0, "duration": 5}]
				},
				"messages": [
					{"id": "m1", "vid_id": "abc", "sent_by": "user", "content": "Hi"},
					{"id": "m2", "vid_id": "abc", "sent_by": "bot", "content": "Hello!"}
				]
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		detail, err := client.GetChatRoom(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "Test Video", detail.VidChat.Title)
		require.Len(t, detail.VidChat.TranscriptWTS, 1)
		assert.Equal(t, 5.0, detail.VidChat.TranscriptWTS[0].Duration)
		require.Len(t, detail.Messages, 2)
		assert.Equal(t, "user", detail.Messages[0].SentBy)
		assert.Equal(t, "bot", detail.Messages[1].SentBy)
	})

	t.Run("should map 404 to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		detail, err := client.GetChatRoom(context.Background(), "missing")
		assert.Nil(t, detail)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateChatRoom(t *testing.T) {
	t.Run("should post the video url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/chatrooms", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.Write([]byte(`{"id":"new1","title":"Created"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		room, err := client.CreateChatRoom(context.Background(), "https://www.youtube.com/watch?v=new1")
		require.NoError(t, err)
		assert.Equal(t, "new1", room.ID)
		assert.Equal(t, "Created", room.Title)
	})

	t.Run("should surface backend error detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid video url"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.CreateChatRoom(context.Background(), "garbage")
		require.Error(t, err)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		assert.Equal(t, "invalid video url", httpErr.Detail)
	})
}

func TestDeleteChatRoom(t *testing.T) {
	t.Run("should delete chatroom", func(t *testing.T) {
		var method, path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.DeleteChatRoom(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, method)
		assert.Equal(t, "/api/chatrooms/abc", path)
	})

	t.Run("should map 404 to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		err := client.DeleteChatRoom(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPromptSuggestions(t *testing.T) {
	t.Run("should fetch suggestions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/chatrooms/abc/prompt-suggestions", r.URL.Path)
			w.Write([]byte(`[{"intent":"summarize","content":"Summarize this video"}]`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		suggestions, err := client.PromptSuggestions(context.Background(), "abc")
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "summarize", suggestions[0].Intent)
		assert.Equal(t, "Summarize this video", suggestions[0].Content)
	})
}

func TestFetchTitle(t *testing.T) {
	t.Run("should resolve url to title", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/get-title", r.URL.Path)
			assert.Equal(t, "https://www.youtube.com/watch?v=abc", r.URL.Query().Get("url"))
			w.Write([]byte(`{"title":"Resolved Title"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		title, err := client.FetchTitle(context.Background(), "https://www.youtube.com/watch?v=abc")
		require.NoError(t, err)
		assert.Equal(t, "Resolved Title", title)
	})
}

func TestHTTPError(t *testing.T) {
	t.Run("should format with detail", func(t *testing.T) {
		err := &HTTPError{StatusCode: 500, Detail: "boom"}
		assert.Equal(t, "request failed with status 500: boom", err.Error())
	})

	t.Run("should format without detail", func(t *testing.T) {
		err := &HTTPError{StatusCode: 502}
		assert.Equal(t, "request failed with status 502", err.Error())
	})

	t.Run("should read plain text error bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("something broke\n"))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.ListChatRooms(context.Background())
		require.Error(t, err)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "something broke", httpErr.Detail)
	})
}

func TestNewClientWithTimeout(t *testing.T) {
	t.Run("should apply timeout", func(t *testing.T) {
		client := NewClientWithTimeout("http://localhost:8000", 5*time.Second)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})
}
