// Package llmtest provides a scripted llm.StructuredProvider for tests.
package llmtest

import (
	"context"
	"sync"

	"mindwell-be/pkg/llm"
)

type Provider struct {
	mu       sync.Mutex
	reply    func(req llm.StructuredRequest) (*llm.StructuredResponse, error)
	requests []llm.StructuredRequest
}

var _ llm.StructuredProvider = &Provider{}

// Returning answers every request with a single candidate holding text.
func Returning(text string) *Provider {
	return &Provider{reply: func(llm.StructuredRequest) (*llm.StructuredResponse, error) {
		return &llm.StructuredResponse{Candidates: []string{text}}, nil
	}}
}

func Failing(err error) *Provider {
	return &Provider{reply: func(llm.StructuredRequest) (*llm.StructuredResponse, error) {
		return nil, err
	}}
}

func Empty() *Provider {
	return &Provider{reply: func(llm.StructuredRequest) (*llm.StructuredResponse, error) {
		return &llm.StructuredResponse{}, nil
	}}
}

// Set replaces the reply for subsequent requests.
func (p *Provider) Set(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reply = func(llm.StructuredRequest) (*llm.StructuredResponse, error) {
		return &llm.StructuredResponse{Candidates: []string{text}}, nil
	}
}

func (p *Provider) Name() string {
	return "fake"
}

func (p *Provider) GenerateStructured(_ context.Context, req llm.StructuredRequest, _ ...llm.Option) (*llm.StructuredResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	return p.reply(req)
}

func (p *Provider) Requests() []llm.StructuredRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]llm.StructuredRequest(nil), p.requests...)
}

func (p *Provider) LastRequest() (llm.StructuredRequest, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return llm.StructuredRequest{}, false
	}
	return p.requests[len(p.requests)-1], true
}
