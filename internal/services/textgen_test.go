package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackContentCategories(t *testing.T) {
	name := FallbackContent("Generate a realistic task name for an Engineering project")
	assert.Contains(t, fallbackPools["task name"], name)

	desc := FallbackContent("Generate a realistic task description for: \"Fix login bug\"")
	assert.Equal(t, "Task description with relevant details and context.", desc)

	comment := FallbackContent("Write a short comment about progress")
	assert.Equal(t, "Status update on this task.", comment)

	assert.Equal(t, "Generated content", FallbackContent("something unrecognized"))
}

func TestFallbackContentIsDeterministic(t *testing.T) {
	prompt := "Generate a realistic task name for a Sales project"
	first := FallbackContent(prompt)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FallbackContent(prompt))
	}
}

func TestTaskNameWithoutAPIKeyUsesFallback(t *testing.T) {
	svc := NewTextService("")

	name := svc.TaskName(context.Background(), "Engineering", "API v2.0 Migration")
	assert.Contains(t, fallbackPools["task name"], name)
}

func TestTaskDescriptionWithoutAPIKeyUsesFallback(t *testing.T) {
	svc := NewTextService("")

	desc := svc.TaskDescription(context.Background(), "Implement OAuth authentication", true)
	assert.NotEmpty(t, desc)
	assert.False(t, strings.Contains(desc, "Generate"), "fallback must not echo the prompt")
}

func TestGenerateWithoutClientReturnsSentinel(t *testing.T) {
	svc := NewTextService("")

	_, err := svc.generate(context.Background(), "any prompt", 0.9)
	assert.ErrorIs(t, err, ErrTextServiceNotConfigured)
}
