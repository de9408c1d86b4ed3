package completion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mindwell-be/pkg/llm"
)

const (
	fieldMessage  = "message"
	fieldRedirect = "redirectToOtherCategory"

	redirectInstruction = "\n\nRedirect to other category options. The topic should be from one of the following topics:\n\nTopics: "
)

var errEmptyMessage = errors.New("completion: message is missing or empty")

// Turn is one stored message of the conversation so far.
type Turn struct {
	Role string
	Text string
}

type Request struct {
	History      []Turn
	UserMessage  string
	SystemPrompt string
	Redirectable bool
	Topics       []string
}

type Result struct {
	Message                 string `json:"message"`
	RedirectToOtherCategory string `json:"redirectToOtherCategory,omitempty"`
}

// BuildPrompt turns a Request into the provider-neutral structured request:
// stored history in order followed by the new user message.
func BuildPrompt(req Request) llm.StructuredRequest {
	history := make([]llm.Message, 0, len(req.History)+1)
	for _, turn := range req.History {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Text})
	}
	history = append(history, llm.Message{Role: llm.RoleUser, Content: req.UserMessage})

	return llm.StructuredRequest{
		System:  SystemInstruction(req),
		History: history,
		Schema:  OutputSchema(req),
	}
}

func SystemInstruction(req Request) string {
	if !req.Redirectable {
		return req.SystemPrompt
	}
	return req.SystemPrompt + redirectInstruction + strings.Join(req.Topics, ", ")
}

// OutputSchema requires a message and, for redirectable categories only,
// allows a redirect target restricted to the supplied topics.
func OutputSchema(req Request) *llm.Schema {
	schema := &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			fieldMessage: {Type: llm.TypeString},
		},
		Required: []string{fieldMessage},
	}
	if req.Redirectable {
		redirect := &llm.Schema{
			Type:        llm.TypeString,
			Description: "Name of another conversation topic to suggest, when the user would be better served there.",
		}
		if len(req.Topics) > 0 {
			redirect.Enum = append([]string(nil), req.Topics...)
		}
		schema.Properties[fieldRedirect] = redirect
	}
	return schema
}

// ParseResult decodes a candidate text. A redirect is kept only when the
// request allowed one and it names a supplied topic.
func ParseResult(text string, req Request) (*Result, error) {
	raw := stripFences([]byte(text))

	var parsed struct {
		Message  *string `json:"message"`
		Redirect *string `json:"redirectToOtherCategory"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("completion: decode candidate: %w", err)
	}
	if parsed.Message == nil || strings.TrimSpace(*parsed.Message) == "" {
		return nil, errEmptyMessage
	}

	result := &Result{Message: *parsed.Message}
	if req.Redirectable && parsed.Redirect != nil {
		result.RedirectToOtherCategory = matchTopic(*parsed.Redirect, req.Topics)
	}
	return result, nil
}

func matchTopic(name string, topics []string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	for _, topic := range topics {
		if strings.EqualFold(topic, name) {
			return topic
		}
	}
	return ""
}

func stripFences(b []byte) []byte {
	b = bytes.TrimSpace(b)
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}
