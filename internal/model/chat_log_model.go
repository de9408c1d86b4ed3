package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_logs_user_session"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_logs_user_session"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}

func (c *ChatLog) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}

type ChatLogMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatLogId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_log_messages_position"`
	Position  int       `gorm:"not null;uniqueIndex:idx_chat_log_messages_position"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	Metadata  datatypes.JSONMap
	Timestamp time.Time `gorm:"not null"`
}

func (ChatLogMessage) TableName() string {
	return "chat_log_messages"
}

func (m *ChatLogMessage) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return nil
}
