package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Msg string `json:"msg"`
}

// APIError is the normalized form of any server rejection. Transport
// failures never reach callers raw; they are wrapped into this type at the
// client boundary.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

// Error prefers the field-error list, comma-joined in order, so validation
// failures surface every field instead of just the first.
func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, 0, len(e.Errors))
		for _, fe := range e.Errors {
			msgs = append(msgs, fe.Msg)
		}
		return strings.Join(msgs, ", ")
	}
	if e.Message != "" {
		return e.Message
	}
	return "something went wrong"
}

// APIClient is the HTTP collaborator the machine talks to. Payloads come
// back as raw JSON already unwrapped from the response envelope.
type APIClient interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
	SetToken(token string)
}

// Client talks to the NutriFit API over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Message: "network error, please try again"}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "failed to read response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string       `json:"message"`
			Errors  []FieldError `json:"errors"`
		}
		if json.Unmarshal(respBytes, &payload) == nil {
			apiErr.Message = payload.Message
			apiErr.Errors = payload.Errors
		}
		return nil, apiErr
	}

	return unwrap(respBytes), nil
}

// unwrap digs the payload out of the response envelope. Endpoints wrap the
// payload under "data" (sometimes twice over); older ones return it at the
// top level.
func unwrap(body []byte) json.RawMessage {
	out := json.RawMessage(body)
	for i := 0; i < 2; i++ {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(out, &env); err != nil || len(env.Data) == 0 {
			break
		}
		out = env.Data
	}
	return out
}
