package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// #region completer
// Completer is the single operation the pipeline needs from a chat model.
// jsonMode asks the service to bias toward a strict single-JSON-object reply;
// callers still tolerate surrounding prose.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float32, jsonMode bool) (string, error)
}

// #endregion completer

// #region config
// Config holds connection settings for the chat service.
// BaseURL points at any OpenAI-compatible gateway (GigaChat, proxy, vLLM).
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// #endregion config

// #region client
// Client wraps an OpenAI-compatible chat completions API with a bounded
// per-call timeout. Implements Completer.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Client. An empty BaseURL keeps the library default.
func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Complete performs a single system+user chat completion.
// A timeout counts as a plain error; callers decide the fail-open path.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int, temperature float32, jsonMode bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// #endregion client
