package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatLogRepository interface {
	// FindOrCreate returns the single log for the (user, session) pair,
	// creating an empty one when none exists yet.
	FindOrCreate(ctx context.Context, userId, sessionId uuid.UUID) (*entity.ChatLog, error)
	// Append stores msg at the next position and returns every message of the
	// log in order.
	Append(ctx context.Context, chatLogId uuid.UUID, msg entity.Message) ([]entity.Message, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error)
	DeleteBySession(ctx context.Context, sessionId uuid.UUID) error
}
