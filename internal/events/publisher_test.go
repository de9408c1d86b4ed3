package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mindwell-be/internal/constant"
	"mindwell-be/internal/pkg/logger"
	pkgEvents "mindwell-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBus struct {
	mu     sync.Mutex
	events []pkgEvents.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, e pkgEvents.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return b.err
}

func TestBusPublisherPayloads(t *testing.T) {
	bus := &recordingBus{}
	p := NewBusPublisher(bus, logger.NewNopLogger())
	userId, sessionId, logId := uuid.New(), uuid.New(), uuid.New()

	p.PublishChatTurnCompleted(context.Background(), userId, sessionId, logId, "Anxiety Support")
	p.PublishChatTurnFailed(context.Background(), userId, sessionId, "MalformedCompletion")

	require.Len(t, bus.events, 2)
	assert.Equal(t, constant.EventChatTurnCompleted, bus.events[0].EventType())
	assert.Equal(t, "Anxiety Support", bus.events[0].Payload()["redirect_to_other_category"])
	assert.Equal(t, sessionId.String(), bus.events[0].Payload()["session_id"])
	assert.Equal(t, constant.EventChatTurnFailed, bus.events[1].EventType())
	assert.Equal(t, "MalformedCompletion", bus.events[1].Payload()["reason"])
}

func TestBusPublisherSwallowsErrors(t *testing.T) {
	bus := &recordingBus{err: errors.New("bus down")}
	p := NewBusPublisher(bus, logger.NewNopLogger())

	assert.NotPanics(t, func() {
		p.PublishUserRegistered(context.Background(), uuid.New(), "a@x.com")
	})
	assert.Len(t, bus.events, 1)
}

func TestBusPublisherWithoutBus(t *testing.T) {
	p := NewBusPublisher(nil, logger.NewNopLogger())
	assert.NotPanics(t, func() {
		p.PublishCategoryChanged(context.Background(), uuid.New(), "created")
	})
}
