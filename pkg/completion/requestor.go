package completion

import (
	"context"

	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/pkg/llm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "mindwell-be/pkg/completion"

// Completer is the orchestrator's view of the Requestor.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Result, error)
}

// Requestor issues exactly one structured completion per call. It never
// retries.
type Requestor struct {
	provider llm.StructuredProvider
	options  []llm.Option
	tracer   trace.Tracer
}

func NewRequestor(provider llm.StructuredProvider, options ...llm.Option) *Requestor {
	return &Requestor{
		provider: provider,
		options:  options,
		tracer:   otel.Tracer(tracerName),
	}
}

// Complete fails with CompletionUnavailable when the provider errors or returns
// no candidate, and with MalformedCompletion when the first candidate does not
// decode to a non-empty message.
func (r *Requestor) Complete(ctx context.Context, req Request) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "completion.request", trace.WithAttributes(
		attribute.String("llm.provider", r.provider.Name()),
		attribute.Int("completion.history_length", len(req.History)),
		attribute.Bool("completion.redirectable", req.Redirectable),
	))
	defer span.End()

	resp, err := r.provider.GenerateStructured(ctx, BuildPrompt(req), r.options...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider error")
		return nil, apperror.CompletionUnavailable(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		span.SetStatus(codes.Error, "no candidates")
		return nil, apperror.CompletionUnavailable(llm.ErrNoCandidates)
	}

	result, err := ParseResult(resp.Candidates[0], req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed completion")
		return nil, apperror.MalformedCompletion(err)
	}

	if result.RedirectToOtherCategory != "" {
		span.SetAttributes(attribute.String("completion.redirect", result.RedirectToOtherCategory))
	}
	return result, nil
}
