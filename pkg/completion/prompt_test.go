package completion

import (
	"testing"

	"mindwell-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptKeepsHistoryOrder(t *testing.T) {
	req := Request{
		History: []Turn{
			{Role: "user", Text: "first"},
			{Role: "model", Text: "second"},
		},
		UserMessage:  "third",
		SystemPrompt: "You listen.",
	}

	prompt := BuildPrompt(req)

	require.Len(t, prompt.History, 3)
	assert.Equal(t, llm.Message{Role: "user", Content: "first"}, prompt.History[0])
	assert.Equal(t, llm.Message{Role: "model", Content: "second"}, prompt.History[1])
	assert.Equal(t, llm.Message{Role: "user", Content: "third"}, prompt.History[2])
	assert.Equal(t, "You listen.", prompt.System)
	assert.NotContains(t, prompt.Schema.Properties, "redirectToOtherCategory")
	assert.Equal(t, []string{"message"}, prompt.Schema.Required)
}

func TestBuildPromptRedirectable(t *testing.T) {
	req := Request{
		UserMessage:  "hi",
		SystemPrompt: "You listen.",
		Redirectable: true,
		Topics:       []string{"Anxiety Support", "Sleep"},
	}

	prompt := BuildPrompt(req)

	assert.Equal(t, "You listen.\n\nRedirect to other category options. The topic should be from one of the following topics:\n\nTopics: Anxiety Support, Sleep", prompt.System)
	require.Contains(t, prompt.Schema.Properties, "redirectToOtherCategory")
	assert.Equal(t, []string{"Anxiety Support", "Sleep"}, prompt.Schema.Properties["redirectToOtherCategory"].Enum)
	assert.Equal(t, []string{"message"}, prompt.Schema.Required)
}

func TestParseResult(t *testing.T) {
	redirectable := Request{Redirectable: true, Topics: []string{"Anxiety Support", "Sleep"}}

	tests := []struct {
		name         string
		text         string
		req          Request
		wantMessage  string
		wantRedirect string
		wantErr      bool
	}{
		{name: "plain", text: `{"message":"hello"}`, wantMessage: "hello"},
		{name: "fenced", text: "```json\n{\"message\":\"hello\"}\n```", wantMessage: "hello"},
		{name: "redirect kept", text: `{"message":"m","redirectToOtherCategory":"Anxiety Support"}`, req: redirectable, wantMessage: "m", wantRedirect: "Anxiety Support"},
		{name: "redirect normalised", text: `{"message":"m","redirectToOtherCategory":" sleep "}`, req: redirectable, wantMessage: "m", wantRedirect: "Sleep"},
		{name: "redirect unknown topic", text: `{"message":"m","redirectToOtherCategory":"Cooking"}`, req: redirectable, wantMessage: "m"},
		{name: "redirect not allowed", text: `{"message":"m","redirectToOtherCategory":"Sleep"}`, req: Request{Topics: []string{"Sleep"}}, wantMessage: "m"},
		{name: "not json", text: "I am fine, thanks", wantErr: true},
		{name: "missing message", text: `{"redirectToOtherCategory":"Sleep"}`, req: redirectable, wantErr: true},
		{name: "empty message", text: `{"message":""}`, wantErr: true},
		{name: "blank message", text: `{"message":"   "}`, wantErr: true},
		{name: "message wrong type", text: `{"message":42}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResult(tt.text, tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantRedirect, got.RedirectToOtherCategory)
		})
	}
}
