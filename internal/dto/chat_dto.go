package dto

import (
	"time"

	"mindwell-be/internal/entity"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	SessionId   string `json:"sessionId" validate:"required"`
	UserMessage string `json:"userMessage" validate:"required"`
}

type ChangeCategoryRequest struct {
	SessionId     string `json:"sessionId" validate:"required"`
	NewCategoryId string `json:"newCategoryId" validate:"required"`
}

type MessageResponse struct {
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type ChatLogResponse struct {
	Id        uuid.UUID         `json:"id"`
	UserId    uuid.UUID         `json:"userId"`
	SessionId uuid.UUID         `json:"sessionId"`
	Session   *SessionResponse  `json:"session,omitempty"`
	Messages  []MessageResponse `json:"messages"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type SendMessageResponse struct {
	ChatLog                 *ChatLogResponse `json:"chatLog"`
	Session                 *SessionResponse `json:"session"`
	RedirectToOtherCategory string           `json:"redirectToOtherCategory,omitempty"`
	RedirectCategoryId      *uuid.UUID       `json:"redirectCategoryId,omitempty"`
}

func NewChatLogResponse(c *entity.ChatLog) *ChatLogResponse {
	if c == nil {
		return nil
	}
	messages := make([]MessageResponse, 0, len(c.Messages))
	for _, m := range c.Messages {
		messages = append(messages, MessageResponse{
			Role:      string(m.Role),
			Content:   m.Content,
			Metadata:  m.Metadata,
			Timestamp: m.Timestamp,
		})
	}
	return &ChatLogResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		SessionId: c.SessionId,
		Session:   NewSessionResponse(c.Session),
		Messages:  messages,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
