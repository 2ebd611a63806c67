package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when the backend reports no chatroom for an id.
var ErrNotFound = errors.New("chatroom not found")

// HTTPError is a non-2xx response from the backend.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the chatroom backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, 30*time.Second)
}

func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListChatRooms returns the chatroom directory.
func (c *Client) ListChatRooms(ctx context.Context) ([]ChatRoom, error) {
	var rooms []ChatRoom
	if err := c.getJSON(ctx, "/api/chatrooms", &rooms); err != nil {
		return nil, fmt.Errorf("failed to list chatrooms: %w", err)
	}
	return rooms, nil
}

// GetChatRoom returns a chatroom's video metadata and message history.
func (c *Client) GetChatRoom(ctx context.Context, id string) (*ChatRoomDetail, error) {
	var detail ChatRoomDetail
	if err := c.getJSON(ctx, "/api/chatrooms/"+url.PathEscape(id), &detail); err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chatroom %s: %w", id, err)
	}
	return &detail, nil
}

// CreateChatRoom submits a video URL and returns the created chatroom.
func (c *Client) CreateChatRoom(ctx context.Context, videoURL string) (*ChatRoom, error) {
	reqBody, err := json.Marshal(map[string]string{"url": videoURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chatrooms", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create chatroom: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, readHTTPError(resp)
	}

	var room ChatRoom
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("failed to decode chatroom response: %w", err)
	}
	return &room, nil
}

// DeleteChatRoom removes a chatroom on the backend.
func (c *Client) DeleteChatRoom(ctx context.Context, id string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/chatrooms/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to delete chatroom %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		return readHTTPError(resp)
	}
	return nil
}

// PromptSuggestions returns starter questions for an empty chatroom.
func (c *Client) PromptSuggestions(ctx context.Context, id string) ([]PromptSuggestion, error) {
	var suggestions []PromptSuggestion
	path := "/api/chatrooms/" + url.PathEscape(id) + "/prompt-suggestions"
	if err := c.getJSON(ctx, path, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to get prompt suggestions: %w", err)
	}
	return suggestions, nil
}

// FetchTitle resolves a video URL to its title for pre-submission preview.
func (c *Client) FetchTitle(ctx context.Context, videoURL string) (string, error) {
	var payload struct {
		Title string `json:"title"`
	}
	path := "/get-title?" + url.Values{"url": {videoURL}}.Encode()
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return "", fmt.Errorf("failed to fetch title: %w", err)
	}
	return payload.Title, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readHTTPError drains the body for error detail. Backends respond with
// either {"error": "..."} or plain text.
func readHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return &HTTPError{StatusCode: resp.StatusCode}
	}

	var errorResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errorResp) == nil && errorResp.Error != "" {
		return &HTTPError{StatusCode: resp.StatusCode, Detail: errorResp.Error}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Detail: string(bytes.TrimSpace(body))}
}
