package analyze

import (
	"context"

	"match-backend/internal/llm"
)

const (
	// Character-count thresholds for usable inputs, matched by the UI.
	MinJobDescriptionLen = 50
	MinResumeLen         = 100

	temperature = 0.7
	maxTokens   = 8192
)

// Service runs the match-analysis prompt against the provider. It is a
// pure proxy: one upstream call per request, no retries, no persistence.
type Service struct {
	LLM llm.Client
}

// Analyze sends both inputs verbatim inside the fixed prompt wrapper and
// returns the provider's markdown analysis.
func (s *Service) Analyze(ctx context.Context, jobDescription, resume string) (string, *llm.Usage, error) {
	result, err := s.LLM.Chat(ctx, llm.ChatInput{
		SystemPrompt: llm.AnalysisSystemPrompt,
		UserMessage:  llm.BuildAnalysisUserMessage(jobDescription, resume),
		Temperature:  temperature,
		MaxTokens:    maxTokens,
	})
	if err != nil {
		return "", nil, err
	}
	return result.Content, result.Usage, nil
}
