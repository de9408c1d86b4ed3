package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"unauthenticated", Unauthenticated("Access denied"), http.StatusUnauthorized},
		{"invalid credential", InvalidCredential("Invalid token"), http.StatusUnauthorized},
		{"admin required", AdminRequired(), http.StatusForbidden},
		{"not found", NotFound("Session not found"), http.StatusNotFound},
		{"session not found", SessionNotFound(), http.StatusNotFound},
		{"invalid request", InvalidRequest("Missing sessionId or userMessage"), http.StatusBadRequest},
		{"invalid category", InvalidCategory(), http.StatusBadRequest},
		{"duplicate name", DuplicateName("Anxiety Support"), http.StatusConflict},
		{"too many attempts", TooManyAttempts(), http.StatusTooManyRequests},
		{"malformed completion", MalformedCompletion(errors.New("bad json")), http.StatusBadGateway},
		{"completion unavailable", CompletionUnavailable(errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"server", Server("boom", nil), http.StatusInternalServerError},
		{"unknown kind", New(Kind("WHATEVER"), "x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestKindOfWrappedChain(t *testing.T) {
	base := MalformedCompletion(errors.New("unexpected end of JSON input"))
	wrapped := fmt.Errorf("send message: %w", base)

	assert.Equal(t, KindMalformedCompletion, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindMalformedCompletion))
	assert.False(t, Is(wrapped, KindCompletionUnavailable))
	assert.Equal(t, KindServerError, KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindServerError))
}

func TestErrorMessageKeepsCause(t *testing.T) {
	err := CompletionUnavailable(errors.New("connection refused"))

	assert.Equal(t, "Completion service unavailable: connection refused", err.Error())
	assert.Equal(t, "Completion service unavailable", err.Message)
	assert.EqualError(t, errors.Unwrap(err), "connection refused")
}
