package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const streamReadBufferSize = 4096

// StreamQuery posts a question to a chatroom and returns a channel of answer
// increments. The response body is an opaque growing text blob, not line or
// event delimited: each read of the body yields one QueryChunk, in arrival
// order. The channel is closed after a terminal chunk (Done set); Err on that
// chunk distinguishes normal completion from a mid-stream failure. The stream
// is cancellable through ctx.
func (c *Client) StreamQuery(ctx context.Context, id, query string) (<-chan QueryChunk, error) {
	reqBody, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	endpoint := c.baseURL + "/api/chatrooms/" + url.PathEscape(id) + "/query"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// The query endpoint blocks until the backend closes the stream, so the
	// client-wide timeout must not apply here. Lifetime is bounded by ctx.
	streamClient := &http.Client{Transport: c.httpClient.Transport}

	resp, err := streamClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("query request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := readHTTPError(resp)
		resp.Body.Close()
		return nil, err
	}

	chunks := make(chan QueryChunk, 64)
	go readAnswerStream(ctx, resp.Body, chunks)
	return chunks, nil
}

// readAnswerStream pulls raw bytes off the response body and forwards them as
// chunks. Reads are strictly sequential; a chunk boundary may fall inside a
// UTF-8 rune, so consumers must concatenate before display.
func readAnswerStream(ctx context.Context, body io.ReadCloser, chunks chan<- QueryChunk) {
	defer close(chunks)
	defer body.Close()

	buf := make([]byte, streamReadBufferSize)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			chunk := QueryChunk{
				Content:   string(buf[:n]),
				Timestamp: time.Now(),
			}
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				chunks <- QueryChunk{Done: true, Err: ctx.Err(), Timestamp: time.Now()}
				return
			}
		}

		if err != nil {
			terminal := QueryChunk{Done: true, Timestamp: time.Now()}
			if err != io.EOF {
				if ctxErr := ctx.Err(); ctxErr != nil {
					terminal.Err = ctxErr
				} else {
					terminal.Err = fmt.Errorf("stream reading error: %w", err)
				}
			}
			chunks <- terminal
			return
		}
	}
}
