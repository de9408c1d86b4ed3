package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"mindwell-be/pkg/completion"
	"mindwell-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaStructuredCompletion(t *testing.T) {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		t.Skip("Skipping integration test: OLLAMA_BASE_URL not set")
	}
	model := os.Getenv("OLLAMA_MODEL")
	if model == "" {
		model = "llama3.2"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	requestor := completion.NewRequestor(ollama.NewOllamaProvider(baseURL, model))
	result, err := requestor.Complete(ctx, completion.Request{
		UserMessage:  "I can't sleep before exams.",
		SystemPrompt: "You are a supportive listener.",
		Redirectable: true,
		Topics:       []string{"Anxiety Support", "Sleep"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Message)
	t.Logf("message=%q redirect=%q", result.Message, result.RedirectToOtherCategory)
}
