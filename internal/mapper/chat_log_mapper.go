package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatLogMapper struct{}

func NewChatLogMapper() *ChatLogMapper {
	return &ChatLogMapper{}
}

func (m *ChatLogMapper) ChatLogToEntity(c *model.ChatLog, messages []*model.ChatLogMessage) *entity.ChatLog {
	if c == nil {
		return nil
	}
	out := &entity.ChatLog{
		Id:        c.Id,
		UserId:    c.UserId,
		SessionId: c.SessionId,
		Messages:  make([]entity.Message, 0, len(messages)),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, msg := range messages {
		out.Messages = append(out.Messages, m.MessageToEntity(msg))
	}
	return out
}

func (m *ChatLogMapper) MessageToEntity(msg *model.ChatLogMessage) entity.Message {
	var metadata map[string]interface{}
	if len(msg.Metadata) > 0 {
		metadata = map[string]interface{}(msg.Metadata)
	}
	return entity.Message{
		Id:        msg.Id,
		Position:  msg.Position,
		Role:      entity.MessageRole(msg.Role),
		Content:   msg.Content,
		Metadata:  metadata,
		Timestamp: msg.Timestamp,
	}
}

func (m *ChatLogMapper) MessageToModel(chatLogId uuid.UUID, msg entity.Message) *model.ChatLogMessage {
	var metadata datatypes.JSONMap
	if len(msg.Metadata) > 0 {
		metadata = datatypes.JSONMap(msg.Metadata)
	}
	return &model.ChatLogMessage{
		Id:        msg.Id,
		ChatLogId: chatLogId,
		Position:  msg.Position,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Metadata:  metadata,
		Timestamp: msg.Timestamp,
	}
}
