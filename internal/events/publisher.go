package events

import (
	"context"
	"time"

	"mindwell-be/internal/constant"
	"mindwell-be/internal/pkg/logger"
	pkgEvents "mindwell-be/pkg/events"

	"github.com/google/uuid"
)

const publishTimeout = 3 * time.Second

// Publisher emits the domain events of the chat backend. Publishing never
// fails the operation that triggered it.
type Publisher interface {
	PublishUserRegistered(ctx context.Context, userId uuid.UUID, email string)
	PublishChatTurnCompleted(ctx context.Context, userId, sessionId, chatLogId uuid.UUID, redirectTo string)
	PublishChatTurnFailed(ctx context.Context, userId, sessionId uuid.UUID, reason string)
	PublishSessionCategoryChanged(ctx context.Context, userId, sessionId, oldCategoryId, newCategoryId uuid.UUID)
	PublishCategoryChanged(ctx context.Context, categoryId uuid.UUID, action string)
}

type BusPublisher struct {
	bus    pkgEvents.Publisher
	logger logger.ILogger
}

// NewBusPublisher accepts a nil bus, in which case every publish is a no-op.
func NewBusPublisher(bus pkgEvents.Publisher, logger logger.ILogger) *BusPublisher {
	return &BusPublisher{bus: bus, logger: logger}
}

func (p *BusPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.bus == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.bus.Publish(ctx, pkgEvents.New(eventType, data)); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *BusPublisher) PublishUserRegistered(ctx context.Context, userId uuid.UUID, email string) {
	p.publish(ctx, constant.EventUserRegistered, map[string]interface{}{
		"user_id":     userId.String(),
		"email":       email,
		"entity_type": "user",
		"entity_id":   userId.String(),
	})
}

func (p *BusPublisher) PublishChatTurnCompleted(ctx context.Context, userId, sessionId, chatLogId uuid.UUID, redirectTo string) {
	data := map[string]interface{}{
		"user_id":     userId.String(),
		"session_id":  sessionId.String(),
		"chat_log_id": chatLogId.String(),
		"entity_type": "session",
		"entity_id":   sessionId.String(),
	}
	if redirectTo != "" {
		data["redirect_to_other_category"] = redirectTo
	}
	p.publish(ctx, constant.EventChatTurnCompleted, data)
}

func (p *BusPublisher) PublishChatTurnFailed(ctx context.Context, userId, sessionId uuid.UUID, reason string) {
	p.publish(ctx, constant.EventChatTurnFailed, map[string]interface{}{
		"user_id":     userId.String(),
		"session_id":  sessionId.String(),
		"reason":      reason,
		"entity_type": "session",
		"entity_id":   sessionId.String(),
	})
}

func (p *BusPublisher) PublishSessionCategoryChanged(ctx context.Context, userId, sessionId, oldCategoryId, newCategoryId uuid.UUID) {
	p.publish(ctx, constant.EventSessionCategoryChanged, map[string]interface{}{
		"user_id":         userId.String(),
		"session_id":      sessionId.String(),
		"old_category_id": oldCategoryId.String(),
		"new_category_id": newCategoryId.String(),
		"entity_type":     "session",
		"entity_id":       sessionId.String(),
	})
}

func (p *BusPublisher) PublishCategoryChanged(ctx context.Context, categoryId uuid.UUID, action string) {
	p.publish(ctx, constant.EventCategoryChanged, map[string]interface{}{
		"category_id": categoryId.String(),
		"action":      action,
		"entity_type": "conversation_category",
		"entity_id":   categoryId.String(),
	})
}
