package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser  MessageRole = "user"
	MessageRoleModel MessageRole = "model"
)

func (r MessageRole) Valid() bool {
	return r == MessageRoleUser || r == MessageRoleModel
}

type Message struct {
	Id        uuid.UUID
	Position  int
	Role      MessageRole
	Content   string
	Metadata  map[string]interface{}
	Timestamp time.Time
}

type ChatLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId uuid.UUID
	Session   *Session
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}
