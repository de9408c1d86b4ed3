package llm

import (
	"context"
	"errors"
)

// ErrNoCandidates is returned when the backend answered without any candidate.
var ErrNoCandidates = errors.New("llm: response has no candidates")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user" or "model"
	Content string
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func ApplyOptions(opts ...Option) *Options {
	options := &Options{Temperature: 0.7}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// StructuredRequest asks for a reply whose text is JSON matching Schema.
type StructuredRequest struct {
	System  string
	History []Message
	Schema  *Schema
}

// StructuredResponse holds the raw text of every candidate, in the order the
// backend returned them.
type StructuredResponse struct {
	Candidates []string
}

// StructuredProvider defines the contract for any backend able to constrain
// its output to a JSON schema.
type StructuredProvider interface {
	Name() string
	GenerateStructured(ctx context.Context, req StructuredRequest, opts ...Option) (*StructuredResponse, error)
}
