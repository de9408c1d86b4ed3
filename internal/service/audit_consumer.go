package service

import (
	"context"

	"mindwell-be/internal/pkg/logger"
	pkgEvents "mindwell-be/pkg/events"
)

// AuditConsumer writes every domain event to the audit log.
type AuditConsumer struct {
	audit logger.ILogger
}

func NewAuditConsumer(audit logger.ILogger) *AuditConsumer {
	return &AuditConsumer{audit: audit}
}

func (c *AuditConsumer) Handle(_ context.Context, event pkgEvents.Event) error {
	details := make(map[string]interface{}, len(event.Payload())+2)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["event_type"] = event.EventType()
	details["occurred_at"] = event.Timestamp()

	c.audit.Info("AUDIT", event.EventType(), details)
	return nil
}
