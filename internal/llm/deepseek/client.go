package deepseek

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"match-backend/internal/llm"
	"match-backend/internal/shared/telemetry"
)

// Client implements llm.Client against the DeepSeek chat-completions API,
// which speaks the OpenAI wire protocol.
type Client struct {
	model  string
	client *openai.Client
}

// NewClient constructs a DeepSeek client. baseURL defaults to the public
// endpoint when empty.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("DEEPSEEK_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.deepseek.com"
	}

	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("DEEPSEEK_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}, nil
}

// Chat issues a single non-streaming completion and returns the first
// choice's content. One call per request, no retries.
func (c *Client) Chat(ctx context.Context, input llm.ChatInput) (llm.ChatResult, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: input.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input.UserMessage},
		},
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
		Stream:      false,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return llm.ChatResult{}, classify(err)
	}

	if len(resp.Choices) == 0 {
		return llm.ChatResult{}, fmt.Errorf("missing choices: %w", llm.ErrBadResponse)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return llm.ChatResult{}, fmt.Errorf("empty content: %w", llm.ErrBadResponse)
	}

	usage := &llm.Usage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	logUsage(c.model, usage)

	return llm.ChatResult{Content: content, Usage: usage}, nil
}

// classify maps provider failures onto the llm error categories while
// keeping the original error in the chain for logs.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("deepseek: %v: %w", apiErr.Message, llm.ErrAuth)
		case http.StatusTooManyRequests:
			return fmt.Errorf("deepseek: %v: %w", apiErr.Message, llm.ErrRateLimited)
		default:
			return fmt.Errorf("deepseek: status %d: %v: %w", apiErr.HTTPStatusCode, apiErr.Message, llm.ErrUnavailable)
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("deepseek: %w", llm.ErrAuth)
		case http.StatusTooManyRequests:
			return fmt.Errorf("deepseek: %w", llm.ErrRateLimited)
		}
	}
	return fmt.Errorf("deepseek: %v: %w", err, llm.ErrUnavailable)
}

func logUsage(model string, usage *llm.Usage) {
	telemetry.Info("llm.response", map[string]any{
		"model":             model,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	})
}

var _ llm.Client = (*Client)(nil)
