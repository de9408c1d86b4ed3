package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session.Conversation is nil when the referenced category no longer exists.
type Session struct {
	Id                     uuid.UUID
	UserId                 uuid.UUID
	ConversationCategoryId uuid.UUID
	Conversation           *ConversationCategory
	Summary                string
	NMinusTenSummary       string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
