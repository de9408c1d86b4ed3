package completion

import (
	"context"
	"errors"
	"testing"

	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/pkg/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccess(t *testing.T) {
	provider := llmtest.Returning(`{"message":"Take a breath.","redirectToOtherCategory":"Anxiety Support"}`)
	r := NewRequestor(provider)

	result, err := r.Complete(context.Background(), Request{
		UserMessage:  "I feel anxious",
		SystemPrompt: "You listen.",
		Redirectable: true,
		Topics:       []string{"Anxiety Support"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Take a breath.", result.Message)
	assert.Equal(t, "Anxiety Support", result.RedirectToOtherCategory)
	assert.Len(t, provider.Requests(), 1)
}

func TestCompleteFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *llmtest.Provider
		want     apperror.Kind
	}{
		{name: "provider error", provider: llmtest.Failing(errors.New("quota exceeded")), want: apperror.KindCompletionUnavailable},
		{name: "no candidates", provider: llmtest.Empty(), want: apperror.KindCompletionUnavailable},
		{name: "non json", provider: llmtest.Returning("sorry, I cannot do JSON"), want: apperror.KindMalformedCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequestor(tt.provider).Complete(context.Background(), Request{UserMessage: "hi"})
			require.Error(t, err)
			assert.Equal(t, tt.want, apperror.KindOf(err))
			assert.Len(t, tt.provider.Requests(), 1)
		})
	}
}
