// Package llm talks to a locally hosted, Ollama-compatible model
// endpoint over HTTP.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/swipeai/deskassist/internal/config"
)

// ErrUnrecognizedSchema is returned when the endpoint's JSON reply
// matches none of the known response layouts.
var ErrUnrecognizedSchema = errors.New("unrecognized model response schema")

// Message is one turn in a chat exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatOptions tune a single chat call. Zero-valued fields are omitted
// from the request.
type ChatOptions struct {
	Temperature float64
	TopP        float64
	NumPredict  int
}

// Client is an HTTP client for one model endpoint. Calls carry no
// timeout: a hung endpoint hangs the calling run, not the process.
type Client struct {
	baseURL string
	model   string
	httpc   *http.Client
}

// NewClient builds a client for the configured endpoint.
func NewClient(cfg config.ModelConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL(),
		model:   cfg.Model,
		httpc:   &http.Client{},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Chat sends a message list to the chat endpoint with streaming
// disabled and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	options := map[string]any{}
	if opts.Temperature != 0 {
		options["temperature"] = opts.Temperature
	}
	if opts.TopP != 0 {
		options["top_p"] = opts.TopP
	}
	if opts.NumPredict != 0 {
		options["num_predict"] = opts.NumPredict
	}

	body := map[string]any{
		"model":    c.model,
		"messages": messages,
		"stream":   false,
		"options":  options,
	}

	raw, err := c.post(ctx, "/api/chat", body)
	if err != nil {
		return "", err
	}
	return decodeChatReply(raw)
}

// Complete sends an OpenAI-style completion request and returns the
// completion text.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body := map[string]any{
		"model":      c.model,
		"prompt":     prompt,
		"max_tokens": maxTokens,
	}

	raw, err := c.post(ctx, "/v1/completions", body)
	if err != nil {
		return "", err
	}
	return decodeCompletionReply(raw)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("model endpoint returned %s: %s", resp.Status, snippet(raw))
	}
	return raw, nil
}

// decodeChatReply tries the known chat response layouts in order:
// message.content (Ollama chat), choices[0].message.content
// (OpenAI-style chat), then a top-level response string (Ollama
// generate). Anything else is an explicit schema error instead of a
// stringified payload.
func decodeChatReply(raw []byte) (string, error) {
	var env struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Response *string `json:"response"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedSchema, snippet(raw))
	}

	switch {
	case env.Message != nil:
		return env.Message.Content, nil
	case len(env.Choices) > 0:
		return env.Choices[0].Message.Content, nil
	case env.Response != nil:
		return *env.Response, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnrecognizedSchema, snippet(raw))
}

// decodeCompletionReply tries the known completion layouts in order:
// a top-level completion string, choices[0].text, then a top-level
// response string.
func decodeCompletionReply(raw []byte) (string, error) {
	var env struct {
		Completion *string `json:"completion"`
		Choices    []struct {
			Text string `json:"text"`
		} `json:"choices"`
		Response *string `json:"response"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedSchema, snippet(raw))
	}

	switch {
	case env.Completion != nil:
		return *env.Completion, nil
	case len(env.Choices) > 0:
		return env.Choices[0].Text, nil
	case env.Response != nil:
		return *env.Response, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnrecognizedSchema, snippet(raw))
}

func snippet(raw []byte) string {
	const max = 200
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
