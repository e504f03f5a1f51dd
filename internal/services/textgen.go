package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ErrTextServiceNotConfigured is returned by the remote path when no API
// key was provided; callers fall back to template content.
var ErrTextServiceNotConfigured = errors.New("text service is not configured")

const remoteCallTimeout = 30 * time.Second

// TextService generates task names and descriptions through a chat
// completion API. Every remote failure (missing credential, timeout,
// non-success response, empty output) degrades to the deterministic local
// fallback, so callers never see an error.
type TextService struct {
	client *openai.Client
}

// NewTextService creates a TextService. An empty API key yields a service
// that always answers from the local fallback.
func NewTextService(apiKey string) *TextService {
	if apiKey == "" {
		return &TextService{}
	}
	return &TextService{client: openai.NewClient(apiKey)}
}

// TaskName generates a task name for the given department and project.
func (s *TextService) TaskName(ctx context.Context, department, projectName string) string {
	prompt := fmt.Sprintf(`Generate a realistic task name for a %s project called "%s".

The task name should:
- Be specific and actionable (e.g., "Implement OAuth authentication" not "Work on auth")
- Follow patterns typical of %s tasks
- Be 5-12 words long
- NOT include generic phrases like "Task 1" or placeholder text

Generate ONLY the task name, no explanation:`, department, projectName, department)

	text, err := s.generate(ctx, prompt, 0.9)
	if err != nil {
		return FallbackContent(prompt)
	}
	return text
}

// TaskDescription generates a description for an existing task name.
func (s *TextService) TaskDescription(ctx context.Context, taskName string, detailed bool) string {
	detailLevel := "brief (1-3 sentences)"
	if detailed {
		detailLevel = "detailed with bullet points"
	}
	prompt := fmt.Sprintf(`Generate a realistic task description for: "%s"

Requirements:
- %s
- Include specific technical details or requirements
- Use realistic formatting (bullet points if detailed)
- Sound like it was written by a real person planning work

Generate ONLY the description:`, taskName, detailLevel)

	text, err := s.generate(ctx, prompt, 0.8)
	if err != nil {
		return FallbackContent(prompt)
	}
	return text
}

func (s *TextService) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if s.client == nil {
		return "", ErrTextServiceNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, remoteCallTimeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: temperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from model")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

var fallbackPools = map[string][]string{
	"task name": {
		"Implement feature",
		"Fix bug in module",
		"Review pull request",
		"Update documentation",
		"Design new component",
	},
	"description": {
		"Task description with relevant details and context.",
	},
	"comment": {
		"Status update on this task.",
	},
}

// FallbackContent returns deterministic local content keyed by coarse
// prompt-category keywords. The same prompt always yields the same text.
func FallbackContent(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, category := range []string{"task name", "description", "comment"} {
		if strings.Contains(lower, category) {
			pool := fallbackPools[category]
			return pool[len(prompt)%len(pool)]
		}
	}
	return "Generated content"
}
