package dto

import (
	"time"

	"mindwell-be/internal/entity"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	ConversationCategoryId string `json:"conversationCategoryId" validate:"required"`
	Summary                string `json:"summary"`
	NMinusTenSummary       string `json:"nMinusTenSummary"`
}

type UpdateSessionRequest struct {
	ConversationCategoryId *string `json:"conversationCategoryId"`
	Summary                *string `json:"summary"`
	NMinusTenSummary       *string `json:"nMinusTenSummary"`
}

// SessionResponse.Conversation is null when the category was deleted.
type SessionResponse struct {
	Id                     uuid.UUID         `json:"id"`
	UserId                 uuid.UUID         `json:"userId"`
	ConversationCategoryId uuid.UUID         `json:"conversationCategoryId"`
	Conversation           *CategoryResponse `json:"conversation"`
	Summary                string            `json:"summary"`
	NMinusTenSummary       string            `json:"nMinusTenSummary"`
	CreatedAt              time.Time         `json:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt"`
}

func NewSessionResponse(s *entity.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		Id:                     s.Id,
		UserId:                 s.UserId,
		ConversationCategoryId: s.ConversationCategoryId,
		Conversation:           NewCategoryResponse(s.Conversation),
		Summary:                s.Summary,
		NMinusTenSummary:       s.NMinusTenSummary,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}
