package beautify

import (
	"context"
	"strings"

	"match-backend/internal/llm"
	"match-backend/internal/reports"
)

const (
	// Character-count threshold for a usable resume.
	MinResumeLen = 100

	// Low temperature keeps the HTML output format stable.
	temperature = 0.3
	maxTokens   = 8192
)

// Service runs the beautify prompt and persists the result. It is the
// only proxy with a persistence side effect at the API boundary.
type Service struct {
	LLM     llm.Client
	Store   *reports.Store
	BaseURL string
}

// Result is the outcome of one beautify call.
type Result struct {
	HTMLContent string
	ResumeID    string
	ResumeURL   string
	Title       string
	Usage       *llm.Usage
}

// Beautify converts the resume into a styled HTML document and saves it
// as a beautified report reachable by a shareable URL. The provider
// output is passed through whole; only a wrapping code fence is stripped.
func (s *Service) Beautify(ctx context.Context, resume string) (Result, error) {
	chat, err := s.LLM.Chat(ctx, llm.ChatInput{
		SystemPrompt: llm.BeautifySystemPrompt,
		UserMessage:  llm.BuildBeautifyUserMessage(resume),
		Temperature:  temperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return Result{}, err
	}

	html := StripCodeFence(chat.Content)
	title := reports.ExtractResumeTitle(resume)

	saved, err := s.Store.Save(ctx, reports.Draft{
		Type:        reports.TypeBeautifiedHTML,
		Title:       title,
		Resume:      resume,
		HTMLContent: html,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		HTMLContent: html,
		ResumeID:    saved.ID,
		ResumeURL:   s.BaseURL + "/resume/" + saved.ID,
		Title:       title,
		Usage:       chat.Usage,
	}, nil
}

// StripCodeFence removes a wrapping markdown code-fence marker if the
// provider wrapped its HTML in one. The document itself is never altered.
func StripCodeFence(raw string) string {
	out := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(out, "```html"); ok {
		out = strings.TrimLeft(rest, " \t\r\n")
	}
	if rest, ok := strings.CutSuffix(out, "```"); ok {
		out = rest
	}
	return strings.TrimSpace(out)
}
