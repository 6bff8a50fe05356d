package llm

import (
	"context"
	"errors"
)

// Client abstracts the chat-completion provider.
type Client interface {
	Chat(ctx context.Context, input ChatInput) (ChatResult, error)
}

// ChatInput is one system-plus-user chat exchange.
type ChatInput struct {
	SystemPrompt string
	UserMessage  string
	Temperature  float32
	MaxTokens    int
}

// ChatResult carries the first completion's content and token usage.
type ChatResult struct {
	Content string
	Usage   *Usage
}

// Usage mirrors the provider's token accounting. It is passed through to
// API responses when present.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Provider failures collapse into these categories so handlers can map
// them to user-facing messages without leaking provider internals.
var (
	ErrAuth        = errors.New("provider rejected credentials")
	ErrRateLimited = errors.New("provider rate limited")
	ErrBadResponse = errors.New("provider response malformed")
	ErrUnavailable = errors.New("provider unavailable")
)
